// Package web renders the site's pages and serves the live session endpoint.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yashasviudayan/portfolio/internal/content"
	"github.com/yashasviudayan/portfolio/internal/live"
	"github.com/yashasviudayan/portfolio/internal/nav"
	"github.com/yashasviudayan/portfolio/internal/section"
	"github.com/yashasviudayan/portfolio/internal/theme"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every embedded template into one set.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// Static is the embedded static asset tree.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

type headerData struct {
	Brand      string
	Nav        nav.View
	Theme      string
	ThemeLabel string
}

// HeaderRenderer renders the "header" template. It is the renderer used both
// for the first server render and for every live frame.
type HeaderRenderer struct {
	tmpl  *template.Template
	brand string
}

// NewHeaderRenderer renders headers branded with brand.
func NewHeaderRenderer(tmpl *template.Template, brand string) HeaderRenderer {
	return HeaderRenderer{tmpl: tmpl, brand: brand}
}

func (r HeaderRenderer) data(v nav.View, t theme.Theme) headerData {
	return headerData{Brand: r.brand, Nav: v, Theme: t.String(), ThemeLabel: t.ToggleLabel()}
}

// RenderHeader implements live.Renderer.
func (r HeaderRenderer) RenderHeader(w io.Writer, v nav.View, t theme.Theme) error {
	return r.tmpl.ExecuteTemplate(w, "header", r.data(v, t))
}

// Site serves the pages.
type Site struct {
	content *content.Site
	tmpl    *template.Template
	header  HeaderRenderer
	links   []section.NavLink
	hub     *live.Hub
	baseURL string
	logger  *zap.Logger
}

// Meta is the canonical and social-card metadata of one page.
type Meta struct {
	Canonical   string
	Title       string
	Description string
	SiteName    string
	Keywords    string
}

// New builds the page handlers and the live hub they share. baseURL is the
// public origin used for canonical and social-card links.
func New(site *content.Site, tmpl *template.Template, links []section.NavLink, baseURL string, logger *zap.Logger) (*Site, error) {
	if err := section.Validate(links); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	header := NewHeaderRenderer(tmpl, site.Initials)
	return &Site{
		content: site,
		tmpl:    tmpl,
		header:  header,
		links:   links,
		hub:     live.NewHub(links, header, logger.Named("live")),
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}, nil
}

// Hub is the live session registry.
func (s *Site) Hub() *live.Hub {
	return s.hub
}

// Register installs the page, asset and websocket routes.
func (s *Site) Register(r *gin.Engine) {
	r.SetHTMLTemplate(s.tmpl)
	r.StaticFS("/static", Static())

	r.GET("/", s.home)
	r.GET("/hobbies", s.hobbies)
	r.GET("/ws", s.hub.Handler())
	r.GET("/healthz", s.hub.Status)
}

// initialHeader renders the header as a fresh session would see it, so the
// page is correct before the socket connects.
func (s *Site) initialHeader(route section.Route) headerData {
	c := nav.NewController(route, s.links)
	return s.header.data(c.View(), theme.Dark)
}

func (s *Site) meta(route section.Route, title string) Meta {
	return Meta{
		Canonical:   s.baseURL + route.Path,
		Title:       title,
		Description: s.content.Description,
		SiteName:    s.content.Name,
		Keywords:    strings.Join(s.content.Keywords, ", "),
	}
}

func (s *Site) page(route section.Route, title string) gin.H {
	return gin.H{
		"Title":  title,
		"Meta":   s.meta(route, title),
		"Path":   route.Path,
		"Site":   s.content,
		"Header": s.initialHeader(route),
	}
}

func (s *Site) home(c *gin.Context) {
	data := s.page(section.HomeRoute, s.content.Name+" | "+s.content.Role)
	c.HTML(http.StatusOK, "index.html", data)
}

func (s *Site) hobbies(c *gin.Context) {
	data := s.page(section.HobbiesRoute, "Hobbies | "+s.content.Name)
	// Switching year drops the filter back to All.
	data["Selection"] = s.content.Hobbies.Select(c.Query("year"), c.Query("filter"))
	data["Years"] = s.content.Hobbies.Years()
	data["Filters"] = content.Filters
	c.HTML(http.StatusOK, "hobbies.html", data)
}
