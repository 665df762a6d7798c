package tags

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Filename != "tags.md" {
		t.Fatalf("unexpected default filename: %q", cfg.Filename)
	}
	if cfg.Folder != "generated" {
		t.Fatalf("unexpected default folder: %q", cfg.Folder)
	}
	if cfg.TargetFolder != "." {
		t.Fatalf("unexpected default target folder: %q", cfg.TargetFolder)
	}
	if !cfg.addTarget() || !cfg.createTarget() {
		t.Fatal("both toggles must default to true")
	}
}

func TestWithDefaultsFillsBlanks(t *testing.T) {
	cfg := Config{Filename: "custom.md"}.withDefaults()
	if cfg.Filename != "custom.md" {
		t.Fatalf("explicit filename must survive, got %q", cfg.Filename)
	}
	if cfg.Folder != "generated" || cfg.TargetFolder != "." {
		t.Fatalf("blank options must default, got %#v", cfg)
	}
}

func TestToggleOverrides(t *testing.T) {
	cfg := Config{AddTarget: Bool(false), CreateTarget: Bool(false)}
	if cfg.addTarget() || cfg.createTarget() {
		t.Fatal("explicit false must win over the default")
	}
}

func TestValidateRejectsPathSeparatorInFilename(t *testing.T) {
	cfg := Config{Filename: "sub/tags.md"}.withDefaults()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for path separator")
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("defaults must validate, got %v", err)
	}
}
