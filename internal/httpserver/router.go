package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// sessionHeader carries the cart session token issued by POST /api/v1/sessions.
const sessionHeader = "X-Session-Token"

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders: []string{"Origin", "Content-Type", sessionHeader},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	v1 := router.Group("/api/v1")

	v1.POST("/sessions", createSession(deps.Sessions))

	v1.GET("/restaurants", listRestaurants(deps.Catalog))
	v1.GET("/restaurants/:id", getRestaurant(deps.Catalog))
	v1.GET("/categories", listCategories(deps.Catalog))

	authed := v1.Group("", requireSession(deps.Sessions))

	authed.GET("/vouchers", listVouchers(deps.Vouchers, deps.Carts))

	cartGroup := authed.Group("/cart")
	cartGroup.GET("", getCart(deps.Carts))
	cartGroup.DELETE("", clearCart(deps.Carts))
	cartGroup.POST("/lines", addCartLine(deps.Carts, deps.Catalog))
	cartGroup.PATCH("/lines/:key", updateCartLine(deps.Carts))
	cartGroup.DELETE("/lines/:key", removeCartLine(deps.Carts))
	cartGroup.PUT("/delivery-fee", setDeliveryFee(deps.Carts))
	cartGroup.POST("/voucher", applyVoucher(deps.Carts, deps.Vouchers))
	cartGroup.DELETE("/voucher", removeVoucher(deps.Carts))

	orders := authed.Group("/orders")
	orders.POST("", placeOrder(deps.Carts, deps.Ordering))
	orders.GET("", listOrders(deps.Ordering))
	orders.GET("/:id", getOrder(deps.Ordering))
	orders.PATCH("/:id/status", updateOrderStatus(deps.Ordering))
	orders.POST("/:id/driver", assignDriver(deps.Ordering))
	orders.POST("/:id/tracking", startTracking(deps.Ordering))

	authed.GET("/tracking", getTracking(deps.Ordering))
	authed.DELETE("/tracking", stopTracking(deps.Ordering))

	router.GET("/ws/tracking", trackingSocket(logger, deps.Ordering))

	return router
}
