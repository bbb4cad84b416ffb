package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %s", name, err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load error: %s", err)
	}

	if cfg.Program.BytecodeSize != 1_000_000 || cfg.Program.DirectSize != 500_000 {
		t.Errorf("wrong default sizes: %+v", cfg.Program)
	}
	if cfg.Timing.Samples != 1 || cfg.Report.Format != FormatText || cfg.Log.Verbosity != 0 {
		t.Errorf("wrong defaults: %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
[program]
bytecode-size = 1000
direct-size = 500

[timing]
samples = 5

[log]
verbosity = 2

[report]
format = "cbor"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load error: %s", err)
	}

	if cfg.Program.BytecodeSize != 1000 || cfg.Program.DirectSize != 500 {
		t.Errorf("wrong sizes: %+v", cfg.Program)
	}
	if cfg.Timing.Samples != 5 || cfg.Log.Verbosity != 2 || cfg.Report.Format != FormatCBOR {
		t.Errorf("wrong settings: %+v", cfg)
	}
}

func TestPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "[timing]\nsamples = 3\n[program]\ndirect-size = 40\n")
	writeFile(t, dir, EnvFile, "ACCUMBENCH_SAMPLES=7\nACCUMBENCH_BYTECODE_SIZE=90\n")
	t.Setenv("ACCUMBENCH_BYTECODE_SIZE", "80")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load error: %s", err)
	}

	tests := []struct {
		name     string
		got      int
		expected int
	}{
		{"toml only", cfg.Program.DirectSize, 40},
		{".env over toml", cfg.Timing.Samples, 7},
		{"environment over .env", cfg.Program.BytecodeSize, 80},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s: want=%d, got=%d", tt.name, tt.expected, tt.got)
		}
	}
}

func TestDotEnvDoesNotLeakIntoProcess(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, EnvFile, "ACCUMBENCH_REPORT_FORMAT=CBOR\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load error: %s", err)
	}
	if cfg.Report.Format != FormatCBOR {
		t.Errorf("want=%s, got=%s", FormatCBOR, cfg.Report.Format)
	}
	if _, ok := os.LookupEnv("ACCUMBENCH_REPORT_FORMAT"); ok {
		t.Error(".env values should not be exported to the process")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		toml    string
		env     map[string]string
		message string
	}{
		{"bad toml", "[program\n", nil, "parse error"},
		{"size too small", "[program]\nbytecode-size = 1\n", nil, "bytecode-size"},
		{"zero samples", "[timing]\nsamples = 0\n", nil, "timing.samples"},
		{"unknown format", "[report]\nformat = \"json\"\n", nil, "report.format"},
		{"bad env int", "", map[string]string{"ACCUMBENCH_DIRECT_SIZE": "lots"}, "ACCUMBENCH_DIRECT_SIZE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.toml != "" {
				writeFile(t, dir, FileName, tt.toml)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(dir)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error %q does not mention %q", err, tt.message)
			}
		})
	}
}
