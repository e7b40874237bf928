package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedPacksAreValid(t *testing.T) {
	s, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded() failed: %v", err)
	}

	for _, id := range []string{"cs", "go"} {
		p, err := s.Lookup(id)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", id, err)
		}
		if len(p.Words) == 0 {
			t.Errorf("pack %q is empty", id)
		}
		if p.Source != "embedded" {
			t.Errorf("pack %q source = %q, expected embedded", id, p.Source)
		}
	}
}

func TestDefaultPackHasOriginalPool(t *testing.T) {
	p := Default()
	if p.ID != DefaultPackID {
		t.Fatalf("Default().ID = %q", p.ID)
	}
	if len(p.Words) != 100 {
		t.Errorf("default pack should carry 100 words, got %d", len(p.Words))
	}

	seen := map[string]bool{}
	for _, w := range p.Words {
		seen[w] = true
	}
	for _, w := range []string{"git", "java", "sql", "ssh", "push", "css"} {
		if !seen[w] {
			t.Errorf("default pack is missing %q", w)
		}
	}
}

func TestParseNormalizesCase(t *testing.T) {
	p, err := Parse([]byte("id: mixed\nwords: [Go, RUST]\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if strings.Join(p.Words, ",") != "go,rust" {
		t.Errorf("words = %v, expected lower-cased", p.Words)
	}
	if p.Title != "mixed" {
		t.Errorf("Title should default to ID, got %q", p.Title)
	}
}

func TestParseRejectsBadPacks(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no id", "words: [go]\n"},
		{"no words", "id: empty\n"},
		{"digits", "id: bad\nwords: [http2]\n"},
		{"spaces", "id: bad\nwords: [\"hello world\"]\n"},
		{"punctuation", "id: bad\nwords: [\"c++\"]\n"},
		{"not yaml", "id: [unclosed\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Error("Parse() should fail")
			}
		})
	}
}

func TestLoadOverlaysUserPacks(t *testing.T) {
	dir := t.TempDir()
	user := "id: cs\ntitle: Short CS\nwords: [git, sql]\n"
	if err := os.WriteFile(filepath.Join(dir, "cs.yaml"), []byte(user), 0o600); err != nil {
		t.Fatal(err)
	}
	extra := "id: fruit\nwords: [apple, pear]\n"
	if err := os.WriteFile(filepath.Join(dir, "fruit.yml"), []byte(extra), 0o600); err != nil {
		t.Fatal(err)
	}
	// Non-pack files are ignored
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# packs"), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	cs, _ := s.Lookup("cs")
	if cs.Title != "Short CS" || len(cs.Words) != 2 {
		t.Errorf("user pack should override the embedded one, got %+v", cs)
	}
	if _, err := s.Lookup("fruit"); err != nil {
		t.Errorf("user-only pack should be loaded: %v", err)
	}
	if _, err := s.Lookup("go"); err != nil {
		t.Errorf("embedded packs should survive the overlay: %v", err)
	}
	if got := strings.Join(s.IDs(), ","); got != "cs,fruit,go" {
		t.Errorf("IDs() = %q", got)
	}
}

func TestLoadMissingDir(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing dir should not be an error: %v", err)
	}
	if len(s.Packs()) < 2 {
		t.Error("embedded packs should still be available")
	}
}

func TestLoadBadUserPack(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("id: bad\nwords: [\"no way\"]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("Load should surface malformed packs")
	}
}

func TestLookupUnknown(t *testing.T) {
	s, _ := Embedded()
	_, err := s.Lookup("klingon")
	if err == nil || !strings.Contains(err.Error(), "cs") {
		t.Errorf("Lookup error should list available packs, got %v", err)
	}
}
