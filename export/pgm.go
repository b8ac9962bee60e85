package export

import (
	"bufio"
	"fmt"
	"image"
	"io"

	"github.com/klauspost/compress/zstd"
)

// WritePGM writes img as a binary ("P5") netpbm graymap. 16 bit images are written big endian with a
// maximum value of 65535.
// http://netpbm.sourceforge.net/doc/pgm.html
func WritePGM(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)

	var maxValue, bytesPerPixel int
	var pix []byte
	var stride int
	switch gray := toGray(img).(type) {
	case *image.Gray:
		maxValue, bytesPerPixel, pix, stride = 0xFF, 1, gray.Pix, gray.Stride
	case *image.Gray16:
		maxValue, bytesPerPixel, pix, stride = 0xFFFF, 2, gray.Pix, gray.Stride
	}

	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	if _, err := fmt.Fprintf(bw, "P5\n%d %d\n%d\n", width, height, maxValue); err != nil {
		return err
	}
	for y := 0; y < height; y++ {
		row := pix[y*stride : y*stride+width*bytesPerPixel]
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WritePGMZstd writes the same bytes as WritePGM through a zstd encoder.
func WritePGMZstd(w io.Writer, img image.Image) error {
	encoder, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err := WritePGM(encoder, img); err != nil {
		encoder.Close()
		return err
	}
	return encoder.Close()
}
