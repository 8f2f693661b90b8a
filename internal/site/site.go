// Package site holds the landing-page content as data, decoupled from how
// the TUI renders it. The default site ships embedded; --content swaps in an
// alternate YAML definition without rebuilding.
package site

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_content.yaml
var defaultContent []byte

type Section struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
}

type Service struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Blurb string `yaml:"blurb"`
}

type Step struct {
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
}

type CaseStudy struct {
	Client  string   `yaml:"client"`
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	// Body is markdown; rendered with glamour in the detail view.
	Body    string   `yaml:"body"`
	Metrics []string `yaml:"metrics"`
}

type Contact struct {
	Heading string   `yaml:"heading"`
	Goals   []string `yaml:"goals"`
}

type Site struct {
	Brand    string      `yaml:"brand"`
	Tagline  string      `yaml:"tagline"`
	Headline string      `yaml:"headline"`
	Sections []Section   `yaml:"sections"`
	Services []Service   `yaml:"services"`
	Process  []Step      `yaml:"process"`
	Work     []CaseStudy `yaml:"work"`
	Contact  Contact     `yaml:"contact"`
}

// DefaultGoal is the option the contact form resets to after a submission.
func (s *Site) DefaultGoal() string {
	if len(s.Contact.Goals) == 0 {
		return ""
	}
	return s.Contact.Goals[0]
}

// SectionIDs returns the configured ids in document order.
func (s *Site) SectionIDs() []string {
	ids := make([]string, 0, len(s.Sections))
	for _, sec := range s.Sections {
		ids = append(ids, sec.ID)
	}
	return ids
}

func (s *Site) SectionTitle(id string) string {
	for _, sec := range s.Sections {
		if sec.ID == id {
			return sec.Title
		}
	}
	return id
}

// Default returns the embedded site definition.
func Default() (*Site, error) {
	return parse(defaultContent)
}

// Load reads a site definition from path, falling back to the embedded
// default when path is empty.
func Load(path string) (*Site, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return parse(raw)
}

func parse(raw []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Site) Validate() error {
	if strings.TrimSpace(s.Brand) == "" {
		return fmt.Errorf("content: brand is required")
	}
	if len(s.Sections) == 0 {
		return fmt.Errorf("content: at least one section is required")
	}
	seen := map[string]bool{}
	for i, sec := range s.Sections {
		id := strings.TrimSpace(sec.ID)
		if id == "" {
			return fmt.Errorf("content: sections[%d] has an empty id", i)
		}
		if seen[id] {
			return fmt.Errorf("content: duplicate section id %q", id)
		}
		seen[id] = true
	}
	if len(s.Contact.Goals) == 0 {
		return fmt.Errorf("content: contact needs at least one goal option")
	}
	return nil
}
