package coordinator

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/bytedance/sonic"

	"ParallelMandelbrot/export"
	"ParallelMandelbrot/mandelbrot"
)

func TestNewSettingsWithoutFile(t *testing.T) {
	s, err := NewSettings("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Depth != DefaultDepth {
		t.Errorf("Depth: expected %d, actual %d", DefaultDepth, s.Depth)
	}
	if s.Output != DefaultOutput {
		t.Errorf("Output: expected %s, actual %s", DefaultOutput, s.Output)
	}
	if s.SuperSampling != 1 {
		t.Errorf("SuperSampling: expected 1, actual %d", s.SuperSampling)
	}
	if s.WorkerCount != runtime.NumCPU() {
		t.Errorf("WorkerCount: expected %d, actual %d", runtime.NumCPU(), s.WorkerCount)
	}
	if s.RunName == "" || s.SavePath == "" {
		t.Errorf("expected a run name and save path, actual %q %q", s.RunName, s.SavePath)
	}
}

func TestNewSettingsFromFile(t *testing.T) {
	// given
	file := filepath.Join(t.TempDir(), "settings.json")
	contents := `{
		"Depth": 16,
		"Output": "seahorse.pgm.zst",
		"SuperSampling": 40,
		"WorkerCount": 3,
		"MandelbrotSettings": {
			"EscapeLimit": 500,
			"Resolution": {"Width": 64, "Height": 48},
			"Viewport": {"UpperLeft": [-1, 0.5], "LowerRight": [0, -0.5]}
		}
	}`
	if err := os.WriteFile(file, []byte(contents), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// when
	s, err := NewSettings(file)

	// then
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Depth != 16 || s.WorkerCount != 3 || s.Output != "seahorse.pgm.zst" {
		t.Errorf("unexpected settings: %s", s.String())
	}
	if s.SuperSampling != MaximumSuperSampling {
		t.Errorf("SuperSampling: expected %d, actual %d", MaximumSuperSampling, s.SuperSampling)
	}
	m := s.MandelbrotSettings
	if m.EscapeLimit != 500 || m.Resolution != (mandelbrot.Resolution{Width: 64, Height: 48}) {
		t.Errorf("unexpected mandelbrot settings: %s", m.String())
	}
	if m.Viewport != (mandelbrot.Viewport{UpperLeft: complex(-1, 0.5), LowerRight: complex(0, -0.5)}) {
		t.Errorf("Viewport: actual %s", m.Viewport)
	}
}

func TestNewSettingsMissingFile(t *testing.T) {
	if _, err := NewSettings(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error")
	}
}

func TestSettingsVerifyRejects(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		expected error
	}{
		{"depth", Settings{Depth: 12}, ErrInvalidDepth},
		{"output", Settings{Output: "mandelbrot.gif"}, export.ErrUnknownFormat},
		{"workers", Settings{WorkerCount: -1}, ErrInvalidWorkerCount},
		{"region", Settings{MandelbrotSettings: mandelbrot.Settings{Region: "nowhere"}}, mandelbrot.ErrInvalidViewport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.settings.Verify(); !errors.Is(err, tt.expected) {
				t.Fatalf("expected %v, got: %v", tt.expected, err)
			}
		})
	}
}

func TestSettingsBackup(t *testing.T) {
	s := Settings{SavePath: t.TempDir(), RunName: "backup", WorkerCount: 2}
	if err := s.Verify(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path, err := s.Backup()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	restored, err := NewSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restored.WorkerCount != 2 || restored.RunName != "backup" {
		t.Errorf("restored settings differ: %s", restored.String())
	}
	if restored.MandelbrotSettings.Viewport != s.MandelbrotSettings.Viewport {
		t.Errorf("Viewport: expected %s, actual %s", s.MandelbrotSettings.Viewport, restored.MandelbrotSettings.Viewport)
	}

	fileBytes, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	if err := sonic.Unmarshal(fileBytes, &decoded); err != nil {
		t.Fatalf("backup is not valid json: %v", err)
	}
}
