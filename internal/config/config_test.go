package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/larenas/oxicosto/internal/entry"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Billing.DefaultCategory != "contributivo" {
		t.Errorf("default category = %q, want contributivo", cfg.Billing.DefaultCategory)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("default theme = %q, want mocha", cfg.UI.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom missing file: %v", err)
	}
	if cfg.Billing.DefaultCategory != "contributivo" {
		t.Errorf("category = %q, want default contributivo", cfg.Billing.DefaultCategory)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[billing]
default_category = "subsidiado"

[ui]
theme = "latte"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Category() != entry.CategorySubsidiado {
		t.Errorf("category = %q, want subsidiado", cfg.Category())
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("theme = %q, want latte", cfg.UI.Theme)
	}
}

func TestLoadFromInvalidCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[billing]
default_category = "prepagada"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom accepted an invalid category")
	}
}

func TestLoadFromUnknownTheme(t *testing.T) {
	t.Setenv("OXICOSTO_UI_THEME", "bogus")

	if _, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadFrom accepted an unknown theme")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OXICOSTO_CATEGORY", "subsidiado")
	t.Setenv("OXICOSTO_UI_THEME", "latte")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Category() != entry.CategorySubsidiado {
		t.Errorf("category = %q, want env override subsidiado", cfg.Category())
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("theme = %q, want env override latte", cfg.UI.Theme)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Billing.DefaultCategory = string(entry.CategorySubsidiado)
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Billing.DefaultCategory != string(entry.CategorySubsidiado) {
		t.Errorf("round-tripped category = %q, want subsidiado", loaded.Billing.DefaultCategory)
	}
}

func TestCategoryFallsBackToContributivo(t *testing.T) {
	cfg := &Config{Billing: BillingConfig{DefaultCategory: "???"}}
	if cfg.Category() != entry.CategoryContributivo {
		t.Errorf("Category() = %q, want contributivo fallback", cfg.Category())
	}
}
