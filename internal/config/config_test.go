// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/voxedit/restore"
)

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.json")} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) error = %v", path, err)
		}
		if cfg.SampleRate != 24000 {
			t.Errorf("SampleRate = %d, want 24000", cfg.SampleRate)
		}
		if cfg.Gate != restore.DefaultGateSettings {
			t.Errorf("Gate = %+v", cfg.Gate)
		}
		if _, ok := cfg.Preset("auto"); !ok {
			t.Error("auto preset missing")
		}
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"sample_rate": 16000,
		"gate": {"threshold_db": -50, "duration_seconds": 0.2, "reduction_percent": 60},
		"presets": {"podcast": {"threshold_db": -42, "min_silence_seconds": 0.4, "reduction_percent": 50}}
	}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000", cfg.SampleRate)
	}
	// keys missing from the file keep their defaults
	if cfg.Gate.ThresholdDB != -50 || cfg.Gate.MaxSeconds != restore.DefaultGateSettings.MaxSeconds {
		t.Errorf("Gate = %+v", cfg.Gate)
	}
	if cfg.Silence != restore.DefaultSilenceSettings {
		t.Errorf("Silence = %+v", cfg.Silence)
	}
	p, ok := cfg.Preset("podcast")
	if !ok || p.MinSilenceSeconds != 0.4 {
		t.Errorf("Preset(podcast) = %+v, %v", p, ok)
	}
	if _, ok := cfg.Preset("auto"); !ok {
		t.Error("built-in presets were dropped")
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want error
	}{
		{name: "bad rate", data: `{"sample_rate": -1}`, want: ErrInvalidConfig},
		{name: "bad gate", data: `{"gate": {"reduction_percent": 150}}`, want: ErrInvalidConfig},
		{name: "bad preset", data: `{"presets": {"x": {"floor_seconds": -1}}}`, want: ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.data), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.json")
		if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load() accepted malformed JSON")
		}
	})
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := Default()
	cfg.SampleRate = 48000
	cfg.Silence.Crossfade = true

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.SampleRate != 48000 || !got.Silence.Crossfade {
		t.Errorf("Load() = %+v", got)
	}
}
