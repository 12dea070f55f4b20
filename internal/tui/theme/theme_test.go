package theme

import "testing"

func TestLoadEmbeddedThemes(t *testing.T) {
	for _, name := range Available() {
		t.Run(name, func(t *testing.T) {
			th, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q): %v", name, err)
			}
			if th.Name != name {
				t.Errorf("theme name = %q, want %q", th.Name, name)
			}
			if th.Bg == "" || th.Fg == "" || th.Accent == "" || th.Money == "" {
				t.Errorf("theme %q has empty colors: %+v", name, th)
			}
		})
	}
}

func TestLoadUnknownFallsBackToMocha(t *testing.T) {
	th, err := Load("no-such-theme")
	if err != nil {
		t.Fatalf("Load fallback: %v", err)
	}
	if th.Name != "mocha" {
		t.Errorf("fallback theme = %q, want mocha", th.Name)
	}
}

func TestLoadEmptyDefaultsToMocha(t *testing.T) {
	th, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if th.Name != "mocha" {
		t.Errorf("default theme = %q, want mocha", th.Name)
	}
}

func TestIsAvailable(t *testing.T) {
	if !IsAvailable("Mocha") {
		t.Error("IsAvailable(Mocha) = false, want true (case-insensitive)")
	}
	if IsAvailable("frappe") {
		t.Error("IsAvailable(frappe) = true, want false")
	}
}
