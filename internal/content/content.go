// Package content loads the static tables rendered by the site: projects,
// experience, stack, and the hobbies lists.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// Site is everything the templates render outside the header.
type Site struct {
	Name        string       `yaml:"name"`
	Initials    string       `yaml:"initials"`
	Role        string       `yaml:"role"`
	Tagline     string       `yaml:"tagline"`
	Email       string       `yaml:"email"`
	GitHub      string       `yaml:"github"`
	LinkedIn    string       `yaml:"linkedin"`
	Description string       `yaml:"description"`
	Keywords    []string     `yaml:"keywords"`
	AboutMD     string       `yaml:"about"`
	Experience  []Experience `yaml:"experience"`
	Projects    []Project    `yaml:"projects"`
	Specs       []Spec       `yaml:"specs"`
	Tools       []Tool       `yaml:"tools"`
	Hobbies     Hobbies      `yaml:"hobbies"`

	About template.HTML `yaml:"-"`
}

type Experience struct {
	Role    string   `yaml:"role"`
	Company string   `yaml:"company"`
	Period  string   `yaml:"period"`
	Points  []string `yaml:"points"`
}

type Project struct {
	ID         int      `yaml:"id"`
	Title      string   `yaml:"title"`
	Status     string   `yaml:"status"`
	SummaryMD  string   `yaml:"summary"`
	Tech       []string `yaml:"tech"`
	Highlights []string `yaml:"highlights"`
	GitHub     string   `yaml:"github"`
	Demo       string   `yaml:"demo"`
	Diagram    string   `yaml:"diagram"`

	Summary template.HTML `yaml:"-"`
}

// Building reports whether the project is still in progress.
func (p Project) Building() bool {
	return p.Status == "In Progress"
}

type Spec struct {
	Label  string `yaml:"label"`
	Value  string `yaml:"value"`
	Detail string `yaml:"detail"`
	Icon   string `yaml:"icon"`
}

type Tool struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

// Load reads the embedded content, or the YAML file at path when path is set,
// and renders the markdown fields.
func Load(path string) (*Site, error) {
	raw := defaultContent
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read content: %w", err)
		}
		raw = b
	}
	return Parse(raw)
}

// Parse decodes YAML content.
func Parse(raw []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	r := newRenderer()
	var err error
	if s.About, err = r.render(s.AboutMD); err != nil {
		return nil, fmt.Errorf("render about: %w", err)
	}
	for i := range s.Projects {
		if s.Projects[i].Summary, err = r.render(s.Projects[i].SummaryMD); err != nil {
			return nil, fmt.Errorf("render project %d: %w", s.Projects[i].ID, err)
		}
	}
	return &s, nil
}

type renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func newRenderer() renderer {
	return renderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: bluemonday.UGCPolicy(),
	}
}

// render converts markdown to sanitized HTML.
func (r renderer) render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}
