package httpserver

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"quickeats/internal/service/ordering"
)

func startTracking(svc *ordering.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.StartTracking(c.Param("id")); err != nil {
			errorJSON(c, err)
			return
		}
		c.JSON(http.StatusOK, svc.Tracking())
	}
}

func getTracking(svc *ordering.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Tracking())
	}
}

func stopTracking(svc *ordering.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc.StopTracking()
		c.Status(http.StatusNoContent)
	}
}

var upgrader = websocket.Upgrader{
	// The API is token-scoped, not origin-scoped.
	CheckOrigin: func(*http.Request) bool { return true },
}

// trackingSocket pushes the tracking projection to the client once a second
// until the client goes away.
func trackingSocket(logger *log.Logger, svc *ordering.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Printf("tracking socket upgrade: %v", err)
			return
		}
		defer conn.Close()

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for range ticker.C {
			if err := conn.WriteJSON(svc.Tracking()); err != nil {
				return
			}
		}
	}
}
