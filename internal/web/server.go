// Package web serves the portfolio over HTTP.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Zachkp/portfolio/internal/clock"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/theme"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Server struct {
	site      *content.Site
	store     theme.Store
	sched     clock.Scheduler
	submitter *contact.Submitter
	metrics   *metrics.Metrics
	gatherer  prometheus.Gatherer
}

type Option func(*Server)

// WithScheduler replaces the real clock, for tests.
func WithScheduler(s clock.Scheduler) Option {
	return func(srv *Server) { srv.sched = s }
}

// WithRegistry registers metrics on reg and serves them from it instead of
// the default registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(srv *Server) {
		srv.metrics = metrics.New(reg)
		srv.gatherer = reg
	}
}

func New(site *content.Site, store theme.Store, opts ...Option) *Server {
	s := &Server{
		site:  site,
		store: store,
		sched: clock.Real(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.New(prometheus.DefaultRegisterer)
		s.gatherer = prometheus.DefaultGatherer
	}
	s.submitter = contact.NewSubmitter(s.sched)
	return s
}

var funcs = template.FuncMap{
	"paragraphs": func(s string) []string {
		var out []string
		for _, p := range strings.Split(strings.TrimSpace(s), "\n\n") {
			out = append(out, strings.Join(strings.Fields(p), " "))
		}
		return out
	},
}

// Router builds the gin engine with every route mounted.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")))

	r.Use(s.metrics.Middleware())
	r.Use(visitorMiddleware())

	r.GET("/", s.home)
	r.GET("/hero/stream", s.heroStream)

	r.GET("/theme", s.getTheme)
	r.POST("/theme/toggle", s.toggleTheme)

	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title":   "Contact Me",
			"button":  contact.ButtonIdle,
			"sending": contact.ButtonSending,
		})
	})
	r.POST("/contact", s.submitContact)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	return r
}

func (s *Server) home(c *gin.Context) {
	tg, err := theme.Load(c.Request.Context(), s.store, visitorID(c))
	if err != nil {
		// Render with the default theme rather than fail the page.
		logError(c, err, "Error loading theme")
	}
	current := tg.Current()

	c.HTML(http.StatusOK, "index.html", gin.H{
		"site":      s.site,
		"theme":     current,
		"themeIcon": current.Icon(),
		"button":    contact.ButtonIdle,
		"sending":   contact.ButtonSending,
	})
}
