// Package words loads the word packs the spawner draws from.
// Packs are small YAML files; a few are embedded and users can add their own.
package words

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/lexicon/internal/core"
)

// DefaultPackID is the pack used when none is selected.
const DefaultPackID = "cs"

//go:embed packs/*.yaml
var embedded embed.FS

// Pack is a named pool of candidate words.
type Pack struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Words       []string `yaml:"words"`

	// Source is the file the pack was read from; "embedded" for built-ins.
	Source string `yaml:"-"`
}

// Parse decodes and validates a YAML pack.
func Parse(data []byte) (Pack, error) {
	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := p.normalize(); err != nil {
		return Pack{}, err
	}
	return p, nil
}

// normalize lower-cases words and rejects anything that can't be typed.
func (p *Pack) normalize() error {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return fmt.Errorf("pack has no id")
	}
	if p.Title == "" {
		p.Title = p.ID
	}
	if len(p.Words) == 0 {
		return fmt.Errorf("pack %q has no words", p.ID)
	}

	for i, w := range p.Words {
		norm, ok := NormalizeWord(w)
		if !ok {
			return fmt.Errorf("pack %q: word %q must contain only letters a-z", p.ID, w)
		}
		p.Words[i] = norm
	}
	return nil
}

// NormalizeWord lower-cases w and reports whether every rune is a-z.
func NormalizeWord(w string) (string, bool) {
	w = strings.TrimSpace(w)
	if w == "" {
		return "", false
	}
	var sb strings.Builder
	for _, r := range w {
		ch, ok := core.NormalizeChar(r)
		if !ok {
			return "", false
		}
		sb.WriteRune(ch)
	}
	return sb.String(), true
}

// Set is a collection of packs indexed by ID.
type Set struct {
	packs map[string]Pack
}

// Embedded returns the built-in packs.
func Embedded() (*Set, error) {
	s := &Set{packs: make(map[string]Pack)}
	err := fs.WalkDir(embedded, "packs", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := embedded.ReadFile(path)
		if err != nil {
			return err
		}
		p, err := Parse(data)
		if err != nil {
			return fmt.Errorf("words: embedded %s: %w", path, err)
		}
		p.Source = "embedded"
		s.packs[p.ID] = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Load returns the embedded packs overlaid with every *.yaml / *.yml pack
// found in dir. A missing dir is not an error; a malformed pack is.
func Load(dir string) (*Set, error) {
	s, err := Embedded()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return s, nil
	}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("words: cannot read %s: %w", dir, err)
	}

	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("words: cannot read %s: %w", path, err)
		}
		p, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("words: %s: %w", path, err)
		}
		p.Source = path
		s.packs[p.ID] = p
	}
	return s, nil
}

// UserDir returns ~/.lexicon/packs, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lexicon", "packs")
}

// Lookup returns the pack with the given ID.
func (s *Set) Lookup(id string) (Pack, error) {
	p, ok := s.packs[id]
	if !ok {
		return Pack{}, fmt.Errorf("words: unknown pack %q (available: %s)", id, strings.Join(s.IDs(), ", "))
	}
	return p, nil
}

// IDs returns the pack IDs in sorted order.
func (s *Set) IDs() []string {
	ids := make([]string, 0, len(s.packs))
	for id := range s.packs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Packs returns every pack sorted by ID.
func (s *Set) Packs() []Pack {
	out := make([]Pack, 0, len(s.packs))
	for _, id := range s.IDs() {
		out = append(out, s.packs[id])
	}
	return out
}

// Default returns the built-in default pack. It panics only if the embedded
// data is broken, which the tests guard against.
func Default() Pack {
	s, err := Embedded()
	if err != nil {
		panic(err)
	}
	p, err := s.Lookup(DefaultPackID)
	if err != nil {
		panic(err)
	}
	return p
}
