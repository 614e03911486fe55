package httpserver

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"quickeats/internal/cart"
	"quickeats/internal/service/catalog"
	"quickeats/internal/service/vouchers"
)

func getCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, carts.Get(sessionID(c)).View())
	}
}

func addCartLine(carts *cart.Store, cat *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalog.LineInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		line, err := cat.PriceLine(c.Request.Context(), in)
		if err != nil {
			errorJSON(c, err)
			return
		}
		ledger := carts.Get(sessionID(c))
		if err := ledger.Add(*line); err != nil {
			errorJSON(c, err)
			return
		}
		c.JSON(http.StatusOK, ledger.View())
	}
}

func updateCartLine(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := lineKeyParam(c)
		if err != nil {
			badRequest(c, err)
			return
		}
		var in struct {
			Quantity int `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		ledger := carts.Get(sessionID(c))
		ledger.SetQuantity(key, in.Quantity)
		c.JSON(http.StatusOK, ledger.View())
	}
}

func removeCartLine(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := lineKeyParam(c)
		if err != nil {
			badRequest(c, err)
			return
		}
		ledger := carts.Get(sessionID(c))
		ledger.Remove(key)
		c.JSON(http.StatusOK, ledger.View())
	}
}

func clearCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ledger := carts.Get(sessionID(c))
		ledger.Clear()
		c.JSON(http.StatusOK, ledger.View())
	}
}

func setDeliveryFee(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			DeliveryFeeCents int64 `json:"deliveryFeeCents"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		ledger := carts.Get(sessionID(c))
		if err := ledger.SetDeliveryFee(in.DeliveryFeeCents); err != nil {
			badRequest(c, err)
			return
		}
		c.JSON(http.StatusOK, ledger.View())
	}
}

func applyVoucher(carts *cart.Store, svc *vouchers.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			VoucherID string `json:"voucherId"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		v, err := svc.Get(c.Request.Context(), in.VoucherID)
		if err != nil {
			errorJSON(c, err)
			return
		}
		ledger := carts.Get(sessionID(c))
		if err := ledger.ApplyVoucher(*v); err != nil {
			errorJSON(c, err)
			return
		}
		c.JSON(http.StatusOK, ledger.View())
	}
}

func removeVoucher(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ledger := carts.Get(sessionID(c))
		ledger.RemoveVoucher()
		c.JSON(http.StatusOK, ledger.View())
	}
}

func listVouchers(svc *vouchers.Service, carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		subtotal := carts.Get(sessionID(c)).View().SubtotalCents
		views, err := svc.List(c.Request.Context(), subtotal)
		if err != nil {
			errorJSON(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"vouchers": views})
	}
}

// lineKeyParam decodes the identity key path segment; keys contain pipes and
// commas, so clients URL-escape them.
func lineKeyParam(c *gin.Context) (string, error) {
	return url.PathUnescape(c.Param("key"))
}
