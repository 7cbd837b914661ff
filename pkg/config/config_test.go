package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/handoff/pkg/errors"
)

func TestDefault(t *testing.T) {
	o := Default()
	if o.Page.Width != DefaultPageWidth || o.Page.Height != DefaultPageHeight {
		t.Errorf("Page = %+v, want %vx%v", o.Page, DefaultPageWidth, DefaultPageHeight)
	}
	if o.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want %q", o.Server.Addr, ":8080")
	}
	if o.Server.ReadTimeout != 10*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 10s", o.Server.ReadTimeout)
	}
	if o.Server.MaxBodyBytes != 8<<20 {
		t.Errorf("Server.MaxBodyBytes = %d, want %d", o.Server.MaxBodyBytes, 8<<20)
	}
	if o.Output.Format != FormatTable {
		t.Errorf("Output.Format = %q, want %q", o.Output.Format, FormatTable)
	}
	if err := o.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
[page]
width = 800

[server]
addr = "127.0.0.1:9000"
read_timeout = "2s"

[output]
format = "json"
`)
	o, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if o.Page.Width != 800 {
		t.Errorf("Page.Width = %v, want 800", o.Page.Width)
	}
	if o.Page.Height != DefaultPageHeight {
		t.Errorf("Page.Height = %v, want default %v", o.Page.Height, DefaultPageHeight)
	}
	if o.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Server.Addr = %q, want %q", o.Server.Addr, "127.0.0.1:9000")
	}
	if o.Server.ReadTimeout != 2*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 2s", o.Server.ReadTimeout)
	}
	if o.Server.WriteTimeout != DefaultWriteTimeout {
		t.Errorf("Server.WriteTimeout = %v, want %v", o.Server.WriteTimeout, DefaultWriteTimeout)
	}
	if o.Output.Format != FormatJSON {
		t.Errorf("Output.Format = %q, want %q", o.Output.Format, FormatJSON)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"syntax", "[page\nwidth = 1", errors.ErrCodeInvalidConfig},
		{"unknown key", "[page]\ndepth = 3", errors.ErrCodeInvalidConfig},
		{"negative width", "[page]\nwidth = -1", errors.ErrCodeInvalidConfig},
		{"bad format", "[output]\nformat = \"svg\"", errors.ErrCodeInvalidConfig},
		{"negative body", "[server]\nmax_body_bytes = -5", errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Parse() error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "handoff.toml")
		if err := os.WriteFile(path, []byte("[page]\nheight = 600\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		o, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if o.Page.Height != 600 {
			t.Errorf("Page.Height = %v, want 600", o.Page.Height)
		}
	})

	t.Run("missing explicit path", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("Load() error = %v, want FILE_NOT_FOUND", err)
		}
	})

	t.Run("missing default file", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("HOME", t.TempDir())
		o, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if o != Default() {
			t.Errorf("Load() = %+v, want defaults", o)
		}
	})

	t.Run("default file", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)
		if err := os.MkdirAll(filepath.Join(dir, "handoff"), 0o755); err != nil {
			t.Fatal(err)
		}
		data := []byte("[output]\nformat = \"json\"\n")
		if err := os.WriteFile(filepath.Join(dir, "handoff", "config.toml"), data, 0o644); err != nil {
			t.Fatal(err)
		}
		o, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if o.Output.Format != FormatJSON {
			t.Errorf("Output.Format = %q, want %q", o.Output.Format, FormatJSON)
		}
	})
}
