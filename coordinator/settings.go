package coordinator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/bytedance/sonic"

	"ParallelMandelbrot/export"
	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/misc"
)

var (
	ErrInvalidDepth         = errors.New("invalid depth")
	ErrInvalidSuperSampling = errors.New("invalid super sampling")
)

const (
	DefaultDepth         = 8
	DefaultOutput        = "mandelbrot.png"
	MaximumSuperSampling = 16
	settingsBackupName   = "settings.json"
)

type Settings struct {
	logger bslogger.Logger

	Depth              int
	MandelbrotSettings mandelbrot.Settings
	Output             string
	RunName            string
	SavePath           string
	SuperSampling      int
	WorkerCount        int
}

// NewSettings reads settingsFile when one is given and verifies the result. Without a file every value starts
// out at its default.
func NewSettings(settingsFile string) (Settings, error) {
	s, err := LoadSettings(settingsFile)
	if err != nil {
		return s, err
	}
	if err := s.Verify(); err != nil {
		return s, err
	}
	return s, nil
}

// LoadSettings decodes settingsFile without verifying it, so callers can override values before Verify fills in
// the defaults. An empty file name returns empty settings.
func LoadSettings(settingsFile string) (Settings, error) {
	s := Settings{
		logger: bslogger.NewLogger("CoordinatorSettings", bslogger.Normal, nil),
	}
	if settingsFile == "" {
		return s, nil
	}
	fileBytes, err := misc.ReadFile(settingsFile)
	if err != nil {
		return s, err
	}
	if err := sonic.Unmarshal(fileBytes, &s); err != nil {
		return s, fmt.Errorf("unable to decode %s - %w", settingsFile, err)
	}
	return s, nil
}

func (s *Settings) String() string {
	output := "\nCoordinator settings\n"
	output += fmt.Sprintf("Depth: %d\n", s.Depth)
	output += fmt.Sprintf("Output: %s\n", s.Output)
	output += fmt.Sprintf("Run Name: %s\n", s.RunName)
	output += fmt.Sprintf("Save Path: %s\n", s.SavePath)
	output += fmt.Sprintf("Super Sampling: %d\n", s.SuperSampling)
	output += fmt.Sprintf("Worker Count: %d", s.WorkerCount)
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("CoordinatorSettings", bslogger.Normal, nil)

	if err := s.MandelbrotSettings.Verify(); err != nil {
		return err
	}
	if s.Depth == 0 {
		s.Depth = DefaultDepth
	}
	if s.Depth != 8 && s.Depth != 16 {
		return fmt.Errorf("%w: %d, must be 8 or 16", ErrInvalidDepth, s.Depth)
	}
	if s.Output == "" {
		s.Output = DefaultOutput
	}
	if _, err := export.FormatOf(s.Output); err != nil {
		return err
	}
	if s.RunName == "" {
		s.RunName = "run_" + time.Now().Format("2006_01_02-03_04_05")
	}
	if s.SavePath == "" {
		s.SavePath, _ = os.Getwd()
	}
	if s.SuperSampling < 1 {
		s.SuperSampling = 1
	}
	if s.SuperSampling > MaximumSuperSampling {
		s.logger.Warningf("Limiting SuperSampling from %d to %d", s.SuperSampling, MaximumSuperSampling)
		s.SuperSampling = MaximumSuperSampling
	}
	if s.WorkerCount < 0 {
		return fmt.Errorf("%w: %d, must be positive", ErrInvalidWorkerCount, s.WorkerCount)
	}
	if s.WorkerCount == 0 {
		s.WorkerCount = runtime.NumCPU()
	}

	s.logger.Debug(s.String())
	return nil
}

// RunDirectory is where the output image and the settings backup of this run are written.
func (s *Settings) RunDirectory() string {
	return filepath.Join(s.SavePath, s.RunName)
}

func (s *Settings) OutputPath() string {
	return filepath.Join(s.RunDirectory(), filepath.Base(s.Output))
}

// Backup copies the settings into the run directory so the run can be duplicated in the future.
func (s *Settings) Backup() (string, error) {
	fileBytes, err := sonic.ConfigStd.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("unable to encode settings - %w", err)
	}
	path := filepath.Join(s.RunDirectory(), settingsBackupName)
	bytesWritten, err := misc.WriteFile(path, fileBytes)
	if err != nil {
		return "", err
	}
	if bytesWritten == 0 {
		return "", fmt.Errorf("unable to make a backup copy of settings at %s", path)
	}
	return path, nil
}
