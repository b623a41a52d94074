package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/theme"
)

func (s *Server) getTheme(c *gin.Context) {
	tg, err := theme.Load(c.Request.Context(), s.store, visitorID(c))
	if err != nil {
		logError(c, err, "Error loading theme")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load theme"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"theme": tg.Current(),
		"icon":  tg.Current().Icon(),
	})
}

// toggleTheme flips the visitor's theme and answers with the new toggle
// button. HX-Trigger tells the page to swap its data-theme attribute.
func (s *Server) toggleTheme(c *gin.Context) {
	ctx := c.Request.Context()
	tg, err := theme.Load(ctx, s.store, visitorID(c), theme.OnToggle(func(t theme.Theme) {
		s.metrics.ThemeToggles.WithLabelValues(string(t)).Inc()
	}))
	if err != nil {
		logError(c, err, "Error loading theme")
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"error": "Failed to switch theme",
		})
		return
	}

	next := tg.Flip(ctx)
	c.Header("HX-Trigger", fmt.Sprintf(`{"theme-changed":%q}`, next))
	c.HTML(http.StatusOK, "theme-toggle.html", gin.H{
		"theme":     next,
		"themeIcon": next.Icon(),
	})
}
