package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Zachkp/portfolio/internal/contact"
)

// submitContact validates the form and, when it is clean, waits out the
// simulated send before answering with the success toast. Nothing leaves
// the server.
func (s *Server) submitContact(c *gin.Context) {
	var fields contact.Fields
	if err := c.ShouldBind(&fields); err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{
			"error": "Sorry, the form could not be read. Please try again.",
		})
		return
	}

	if errs := contact.Validate(fields); len(errs) > 0 {
		s.metrics.ContactSubmissions.WithLabelValues("invalid").Inc()
		c.HTML(http.StatusUnprocessableEntity, "contact-error.html", gin.H{
			"errors":  errs.ByName(),
			"fields":  fields,
			"button":  contact.ButtonIdle,
			"sending": contact.ButtonSending,
		})
		return
	}

	if err := s.submitter.Wait(c.Request.Context()); err != nil {
		s.metrics.ContactSubmissions.WithLabelValues("abandoned").Inc()
		logrus.WithError(err).Debug("Contact submission abandoned")
		return
	}

	s.metrics.ContactSubmissions.WithLabelValues("sent").Inc()
	logrus.WithField("visitor", visitorID(c)).Info("Contact form submitted")
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success":      contact.SuccessText,
		"dismissAfter": contact.NotifyVisibleFor.Milliseconds(),
		"hideFor":      contact.NotifyHideFor.Milliseconds(),
		"button":       contact.ButtonIdle,
		"sending":      contact.ButtonSending,
	})
}
