package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"quickeats/internal/cart"
	"quickeats/internal/domain"
	"quickeats/internal/service/ordering"
)

func placeOrder(carts *cart.Store, svc *ordering.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ordering.PlaceInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		ledger := carts.Get(sessionID(c))
		o, err := svc.PlaceOrder(c.Request.Context(), ledger, in)
		if err != nil {
			errorJSON(c, err)
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}

func listOrders(svc *ordering.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"orders": svc.Orders()})
	}
}

func getOrder(svc *ordering.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.Order(c.Param("id"))
		if err != nil {
			errorJSON(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func updateOrderStatus(svc *ordering.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		status := domain.OrderStatus(in.Status)
		if !status.Valid() {
			badRequest(c, fmt.Errorf("unknown status %q", in.Status))
			return
		}
		o, err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), status)
		if err != nil {
			errorJSON(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func assignDriver(svc *ordering.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var driver domain.Driver
		if err := c.ShouldBindJSON(&driver); err != nil {
			badRequest(c, err)
			return
		}
		if driver.ID == "" {
			badRequest(c, fmt.Errorf("driver id required"))
			return
		}
		o, err := svc.AssignDriver(c.Request.Context(), c.Param("id"), driver)
		if err != nil {
			errorJSON(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}
