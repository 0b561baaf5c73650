package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Format != FormatPAF || cfg.Language != "en" || cfg.MaxErrors != 0 || cfg.SkipInvalid {
		t.Errorf("Default() = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		want Config
	}{
		{
			name: "toml",
			file: "pafcheck.toml",
			body: "format = \"json\"\nskip_invalid = true\nmax_errors = 5\nlanguage = \"ja\"\n",
			want: Config{Format: FormatJSON, SkipInvalid: true, MaxErrors: 5, Language: "ja"},
		},
		{
			name: "yaml",
			file: "pafcheck.yaml",
			body: "format: yaml\nverbose: true\n",
			want: Config{Format: FormatYAML, Language: "en", Verbose: true},
		},
		{
			name: "yml with defaults",
			file: "pafcheck.yml",
			body: "max_errors: 2\n",
			want: Config{Format: FormatPAF, Language: "en", MaxErrors: 2},
		},
		{
			name: "empty toml",
			file: "empty.toml",
			body: "",
			want: Config{Format: FormatPAF, Language: "en"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.file, tt.body))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if *cfg != tt.want {
				t.Errorf("Load() = %+v, want %+v", *cfg, tt.want)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		wantErr string
	}{
		{"unknown extension", "pafcheck.ini", "format=paf", "unsupported config format"},
		{"bad toml", "bad.toml", "format = ", "failed to parse config"},
		{"bad yaml", "bad.yaml", "format: [", "failed to parse config"},
		{"bad format", "f.toml", "format = \"csv\"", "invalid format"},
		{"bad language", "l.yaml", "language: de", "invalid language"},
		{"negative limit", "n.toml", "max_errors = -1", "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil ||
		!strings.Contains(err.Error(), "config file not found") {
		t.Errorf("Load(missing) error = %v", err)
	}
}
