package handler

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/philipp01105/ulog/core"
)

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	applyDefaults(&cfg)

	if cfg.Level != core.InfoLevel {
		t.Errorf("Level = %v, want INFO", cfg.Level)
	}
	if cfg.Colorful == nil || !*cfg.Colorful {
		t.Error("Colorful should default to true")
	}
	if cfg.Format != DefaultFormat {
		t.Errorf("Format = %q", cfg.Format)
	}
	if _, ok := cfg.Clock.(core.EpochClock); !ok {
		t.Errorf("Clock = %T, want core.EpochClock", cfg.Clock)
	}
	if cfg.Direction != ToTerminal {
		t.Errorf("Direction = %v, want term", cfg.Direction)
	}
	if cfg.Writer != os.Stdout {
		t.Error("Writer should default to os.Stdout")
	}
	if cfg.Filename != "" || cfg.MaxFileSize != 0 {
		t.Error("file settings must stay empty for terminal handlers")
	}

	file := Config{Direction: ToFile}
	applyDefaults(&file)
	if file.Filename != DefaultFilename || file.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("file defaults = %q / %d", file.Filename, file.MaxFileSize)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"term", ToTerminal, false},
		{"Terminal", ToTerminal, false},
		{"stdout", ToTerminal, false},
		{"FILE", ToFile, false},
		{"syslog", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, %v", tt.in, got, err)
		}
		if tt.wantErr && !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("ParseDirection(%q) error = %v, want ErrInvalidDirection", tt.in, err)
		}
	}
}

func TestDirection_String(t *testing.T) {
	if ToFile.String() != "file" || ToTerminal.String() != "term" {
		t.Error("unexpected direction names")
	}
	if Direction(1).String() != "Direction(1)" {
		t.Errorf("unknown direction = %q", Direction(1).String())
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("ULOGTEST_LEVEL", "warn")
	t.Setenv("ULOGTEST_FORMAT", "&(level)%: &(msg)%")
	t.Setenv("ULOGTEST_COLOR", "false")
	t.Setenv("ULOGTEST_DIRECTION", "file")
	t.Setenv("ULOGTEST_FILE", "/tmp/ulog.log")
	t.Setenv("ULOGTEST_MAX_SIZE", "2048")
	t.Setenv("ULOGTEST_SYNC", "true")

	cfg, err := ConfigFromEnv("ULOGTEST_", Config{Level: core.DebugLevel})
	if err != nil {
		t.Fatalf("ConfigFromEnv() error = %v", err)
	}

	if cfg.Level != core.WarnLevel {
		t.Errorf("Level = %v", cfg.Level)
	}
	if cfg.Format != "&(level)%: &(msg)%" {
		t.Errorf("Format = %q", cfg.Format)
	}
	if cfg.Colorful == nil || *cfg.Colorful {
		t.Error("Colorful should be false")
	}
	if cfg.Direction != ToFile || cfg.Filename != "/tmp/ulog.log" || cfg.MaxFileSize != 2048 || !cfg.Sync {
		t.Errorf("file settings = %+v", cfg)
	}
}

func TestConfigFromEnv_KeepsBase(t *testing.T) {
	t.Setenv("ULOGBASE_LEVEL", "  ")
	base := Config{Level: core.ErrorLevel, Format: "&(msg)%"}

	cfg, err := ConfigFromEnv("ULOGBASE_", base)
	if err != nil {
		t.Fatalf("ConfigFromEnv() error = %v", err)
	}
	if cfg.Level != core.ErrorLevel || cfg.Format != "&(msg)%" {
		t.Errorf("base config was modified: %+v", cfg)
	}
}

func TestConfigFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"LEVEL", "loud"},
		{"COLOR", "sometimes"},
		{"DIRECTION", "network"},
		{"MAX_SIZE", "4k"},
		{"SYNC", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv("ULOGBAD_"+tt.key, tt.value)
			_, err := ConfigFromEnv("ULOGBAD_", Config{})
			if err == nil {
				t.Fatalf("ConfigFromEnv accepted %s=%q", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), "ULOGBAD_"+tt.key) {
				t.Errorf("error does not name the variable: %v", err)
			}
		})
	}
}
