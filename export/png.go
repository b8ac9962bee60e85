package export

import (
	"image"
	"image/png"
	"io"
)

func WritePNG(w io.Writer, img image.Image) error {
	encoder := png.Encoder{CompressionLevel: png.BestSpeed}
	return encoder.Encode(w, toGray(img))
}
