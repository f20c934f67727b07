package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p := Load("")
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if !p.ShowJournal {
		t.Fatal("ShowJournal default = false, want true")
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "flick")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	data := "theme = \"Slate\"\nshow_journal = false\n"
	if err := os.WriteFile(filepath.Join(prefsDir, "prefs.toml"), []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load("")
	if p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", p.Theme)
	}
	if p.ShowJournal {
		t.Fatal("ShowJournal = true, want false")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Slate", ShowJournal: true}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	p := Load(path)
	if p.Theme != "Slate" || !p.ShowJournal {
		t.Fatalf("round trip = %+v, want Slate/true", p)
	}
}

func TestLoad_EmptyThemeFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = \"  \"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if p := Load(path); p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestLoad_CorruptFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = [broken"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if p := Load(path); p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q after parse failure", p.Theme, defaultTheme)
	}
}
