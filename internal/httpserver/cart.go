package httpserver

import (
	"net/http"

	cartsvc "ecommerce-backend/internal/service/cart"
	"github.com/gin-gonic/gin"
)

func createCartHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := carts.Create(c.Request.Context(), callerFrom(c).ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, cart)
	}
}

func listCartsHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := carts.List(c.Request.Context(), callerFrom(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func getCartHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "cart_id")
		if !ok {
			return
		}
		cart, err := carts.Get(c.Request.Context(), id, callerFrom(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func addCartItemHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "cart_id")
		if !ok {
			return
		}
		var in cartsvc.AddItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}
		item, err := carts.AddItem(c.Request.Context(), id, in, callerFrom(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func removeCartItemHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := pathID(c, "cart_id")
		if !ok {
			return
		}
		itemID, ok := pathID(c, "item_id")
		if !ok {
			return
		}
		if err := carts.RemoveItem(c.Request.Context(), cartID, itemID, callerFrom(c)); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func deleteCartHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "cart_id")
		if !ok {
			return
		}
		if err := carts.Delete(c.Request.Context(), id, callerFrom(c)); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
