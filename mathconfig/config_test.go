package mathconfig

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.FontSize != 12.0 {
		t.Errorf("expected default font size 12.0, got %v", cfg.FontSize)
	}
	if cfg.Debug {
		t.Errorf("expected debug off by default")
	}
	if cfg.FontPath != "" {
		t.Errorf("expected empty default font path, got %q", cfg.FontPath)
	}
}

func TestLoadBytesOverridesDefaults(t *testing.T) {
	data := []byte(`
font_path = "/usr/share/fonts/XITS-Math.otf"
font_size = 18.5
debug = true
`)
	cfg, err := LoadBytes(data)
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if cfg.FontPath != "/usr/share/fonts/XITS-Math.otf" {
		t.Errorf("unexpected font path: %q", cfg.FontPath)
	}
	if cfg.FontSize != 18.5 {
		t.Errorf("expected font size 18.5, got %v", cfg.FontSize)
	}
	if !cfg.Debug {
		t.Errorf("expected debug true")
	}
}

func TestLoadBytesPartialOverrideKeepsOtherDefaults(t *testing.T) {
	cfg, err := LoadBytes([]byte(`debug = true`))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if cfg.FontSize != 12.0 {
		t.Errorf("expected untouched default font size 12.0, got %v", cfg.FontSize)
	}
	if !cfg.Debug {
		t.Errorf("expected debug true")
	}
}

func TestLoadBytesRejectsMalformedToml(t *testing.T) {
	_, err := LoadBytes([]byte("not = valid = toml ="))
	if err == nil {
		t.Fatalf("expected error for malformed TOML")
	}
}
