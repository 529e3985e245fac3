package httpserver

import (
	"net/http"

	categorysvc "ecommerce-backend/internal/service/category"
	"github.com/gin-gonic/gin"
)

func listCategoriesHandler(categories categoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := categories.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func getCategoryHandler(categories categoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "category_id")
		if !ok {
			return
		}
		category, err := categories.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func createCategoryHandler(categories categoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in categorysvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}
		category, err := categories.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

func updateCategoryHandler(categories categoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "category_id")
		if !ok {
			return
		}
		var in categorysvc.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}
		if err := categories.Update(c.Request.Context(), id, in); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func deleteCategoryHandler(categories categoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "category_id")
		if !ok {
			return
		}
		if err := categories.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
