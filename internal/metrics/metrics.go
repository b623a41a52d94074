// Package metrics holds the prometheus collectors for the site.
package metrics

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	Requests           *prometheus.CounterVec
	HeroStreams        prometheus.Gauge
	HeroRenders        prometheus.Counter
	ContactSubmissions *prometheus.CounterVec
	ThemeToggles       *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_http_requests_total",
				Help: "Page requests by route and status",
			},
			[]string{"route", "status"},
		),
		HeroStreams: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "portfolio_hero_streams_active",
			Help: "Open hero typewriter streams",
		}),
		HeroRenders: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_hero_renders_total",
			Help: "Typewriter frames rendered",
		}),
		ContactSubmissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_contact_submissions_total",
				Help: "Contact form submissions by result",
			},
			[]string{"result"},
		),
		ThemeToggles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_theme_toggles_total",
				Help: "Theme switches by resulting theme",
			},
			[]string{"theme"},
		),
	}
	reg.MustRegister(m.Requests, m.HeroStreams, m.HeroRenders, m.ContactSubmissions, m.ThemeToggles)
	return m
}

// untracked paths are assets and the metrics endpoint itself.
var untracked = []string{"/static/", "/images/", "/favicon", "/metrics"}

// Middleware counts page requests, skipping static assets.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range untracked {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Requests.WithLabelValues(route, statusClass(c.Writer.Status())).Inc()
	}
}

func statusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	}
	return "2xx"
}
