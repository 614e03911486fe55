package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickeats/internal/service/catalog"
)

func listRestaurants(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurants, err := svc.Restaurants(c.Request.Context(), c.Query("q"), c.Query("category"))
		if err != nil {
			errorJSON(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
	}
}

func getRestaurant(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.Restaurant(c.Request.Context(), c.Param("id"))
		if err != nil {
			errorJSON(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

func listCategories(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.Categories(c.Request.Context())
		if err != nil {
			errorJSON(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}
