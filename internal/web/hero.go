package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/typewriter"
)

// mailbox keeps only the newest frame so a slow client never holds up the
// typewriter; older frames are replaced.
type mailbox chan string

func newMailbox() mailbox {
	return make(mailbox, 1)
}

func (m mailbox) Render(text string) {
	for {
		select {
		case m <- text:
			return
		default:
		}
		select {
		case <-m:
		default:
		}
	}
}

// heroStream runs one typewriter per connection and pushes each frame as a
// "hero" server-sent event until the client goes away.
func (s *Server) heroStream(c *gin.Context) {
	frames := newMailbox()
	engine := typewriter.New(s.sched, typewriter.WithRenderHook(s.metrics.HeroRenders.Inc))
	if err := engine.Start(s.site.Hero.Commands, frames, s.site.Hero.Typewriter); err != nil {
		logError(c, err, "Error starting hero typewriter")
		c.Status(http.StatusInternalServerError)
		return
	}
	defer engine.Stop()

	s.metrics.HeroStreams.Inc()
	defer s.metrics.HeroStreams.Dec()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case text := <-frames:
			c.SSEvent("hero", text)
			c.Writer.Flush()
		}
	}
}
