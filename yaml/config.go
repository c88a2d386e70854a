// Package yaml loads extraction settings from YAML files.
package yaml

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/fwojciec/faqmine"
	"gopkg.in/yaml.v3"
)

// Config is the taxonomy and keyword file. Lists left empty keep the
// built-in defaults. With Extend set, listed entries are added to the
// defaults instead of replacing them.
type Config struct {
	Extend         bool       `yaml:"extend"`
	Categories     []Category `yaml:"categories"`
	Interrogatives []string   `yaml:"interrogatives"`
	Affirmatives   []string   `yaml:"affirmatives"`
	Languages      []string   `yaml:"languages"`
}

// Category is one taxonomy entry of a Config.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// LoadConfig reads a Config from path.
// Returns ENOTFOUND if the file does not exist.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, faqmine.Errorf(faqmine.ENOTFOUND, "config file not found: %s", path)
	} else if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return ParseConfig(f)
}

// ParseConfig decodes a Config and validates its taxonomy.
// Unknown fields are rejected so typos do not silently keep defaults.
func ParseConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, faqmine.Errorf(faqmine.EINVALID, "invalid config: %v", err)
	}
	if err := cfg.Taxonomy().Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Taxonomy returns the category table described by the config.
func (c *Config) Taxonomy() faqmine.Taxonomy {
	if len(c.Categories) == 0 {
		return faqmine.DefaultTaxonomy()
	}

	custom := make(faqmine.Taxonomy, 0, len(c.Categories))
	for _, cat := range c.Categories {
		custom = append(custom, faqmine.Category{Name: cat.Name, Keywords: cat.Keywords})
	}
	if !c.Extend {
		return custom
	}

	// Extended entries either add keywords to a default category or are
	// inserted before the catch-all category.
	t := faqmine.DefaultTaxonomy()
	for _, cat := range custom {
		if i := indexOf(t, cat.Name); i >= 0 {
			t[i].Keywords = append(t[i].Keywords, cat.Keywords...)
			continue
		}
		if i := indexOf(t, faqmine.DefaultCategory); i >= 0 {
			t = append(t[:i], append(faqmine.Taxonomy{cat}, t[i:]...)...)
			continue
		}
		t = append(t, cat)
	}
	return t
}

// Keywords returns the validation and scoring keyword sets of the config.
func (c *Config) Keywords() faqmine.Keywords {
	var k faqmine.Keywords
	if len(c.Interrogatives) > 0 {
		k.Interrogatives = faqmine.NewKeywordSet(c.merge(faqmine.DefaultInterrogatives, c.Interrogatives)...)
	}
	if len(c.Affirmatives) > 0 {
		k.Affirmatives = faqmine.NewKeywordSet(c.merge(faqmine.DefaultAffirmatives, c.Affirmatives)...)
	}
	return k
}

func (c *Config) merge(defaults, custom []string) []string {
	if !c.Extend {
		return custom
	}
	return append(append([]string(nil), defaults...), custom...)
}

func indexOf(t faqmine.Taxonomy, name string) int {
	for i, c := range t {
		if c.Name == name {
			return i
		}
	}
	return -1
}
