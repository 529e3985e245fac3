package httpserver

import (
	"net/http"

	ordersvc "ecommerce-backend/internal/service/order"
	"github.com/gin-gonic/gin"
)

func createOrderHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ordersvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}
		order, err := orders.Create(c.Request.Context(), in, callerFrom(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

func listOrdersHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.List(c.Request.Context(), callerFrom(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func getOrderHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "order_id")
		if !ok {
			return
		}
		order, err := orders.Get(c.Request.Context(), id, callerFrom(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// updateOrderStatusHandler reads the target status from the order_status
// query parameter.
func updateOrderStatusHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "order_id")
		if !ok {
			return
		}
		status := c.Query("order_status")
		if status == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "order_status required"})
			return
		}
		if err := orders.UpdateStatus(c.Request.Context(), id, status, callerFrom(c)); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusOK)
	}
}
