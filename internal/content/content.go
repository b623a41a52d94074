// Package content loads the portfolio text from YAML.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Zachkp/portfolio/internal/typewriter"
)

//go:embed default.yaml
var defaultYAML []byte

type Site struct {
	Name           string          `yaml:"name"`
	Role           string          `yaml:"role"`
	Tagline        string          `yaml:"tagline"`
	Hero           Hero            `yaml:"hero"`
	Sections       []Section       `yaml:"sections"`
	About          string          `yaml:"about"`
	Stats          []Stat          `yaml:"stats"`
	Projects       []Project       `yaml:"projects"`
	Skills         []string        `yaml:"skills"`
	Certifications []Certification `yaml:"certifications"`
	ContactMethods []ContactMethod `yaml:"contact_methods"`
}

type Hero struct {
	Commands   []string          `yaml:"commands"`
	Typewriter typewriter.Config `yaml:"typewriter"`
}

type Section struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
}

type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type Project struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Code        *Code    `yaml:"code"`
}

type Code struct {
	Language string `yaml:"language"`
	Source   string `yaml:"source"`
}

type Certification struct {
	Name   string `yaml:"name"`
	Issuer string `yaml:"issuer"`
}

type ContactMethod struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Default returns the embedded site content.
func Default() *Site {
	s, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded content: %v", err))
	}
	return s
}

// Load reads content from path, or the embedded default when path is
// empty.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return Parse(b)
}

func Parse(b []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Site) validate() error {
	if len(s.Hero.Commands) == 0 {
		return errors.New("content: hero.commands must not be empty")
	}
	seen := map[string]bool{}
	for _, sec := range s.Sections {
		if sec.ID == "" {
			return errors.New("content: section without id")
		}
		if seen[sec.ID] {
			return fmt.Errorf("content: duplicate section %q", sec.ID)
		}
		seen[sec.ID] = true
	}
	return nil
}

// SectionIDs lists section ids in page order.
func (s *Site) SectionIDs() []string {
	ids := make([]string, len(s.Sections))
	for i, sec := range s.Sections {
		ids[i] = sec.ID
	}
	return ids
}
