package web

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	visitorCookie = "visitor_id"
	visitorKey    = "visitor"
	visitorMaxAge = 3600 * 24 * 365
)

// visitorMiddleware gives every browser an opaque id so its theme
// preference can be stored server side.
func visitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(visitorCookie)
		if err != nil || !validVisitorID(id) {
			id = newVisitorID()
			c.SetCookie(visitorCookie, id, visitorMaxAge, "/", "", false, true)
		}
		c.Set(visitorKey, id)
		c.Next()
	}
}

func visitorID(c *gin.Context) string {
	return c.GetString(visitorKey)
}

func newVisitorID() string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		logrus.Fatal("Failed to generate visitor id: ", err)
	}
	return hex.EncodeToString(bytes)
}

func validVisitorID(id string) bool {
	if len(id) != 32 {
		return false
	}
	_, err := hex.DecodeString(id)
	return err == nil
}

func logError(c *gin.Context, err error, msg string) {
	logrus.WithError(err).WithField("path", c.Request.URL.Path).Error(msg)
}
