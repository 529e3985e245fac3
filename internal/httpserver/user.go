package httpserver

import (
	"net/http"

	"ecommerce-backend/internal/domain"
	usersvc "ecommerce-backend/internal/service/user"
	"github.com/gin-gonic/gin"
)

func listUsersHandler(users userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func getUserHandler(users userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "user_id")
		if !ok {
			return
		}
		user, err := users.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func createUserHandler(users userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in usersvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}
		user, err := users.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

// changePasswordHandler lets the user themselves or an admin rotate the
// password after verifying the current one.
func changePasswordHandler(users userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "user_id")
		if !ok {
			return
		}
		if err := domain.RequireAdminOrSelf(callerFrom(c), id); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Admin access required"})
			return
		}
		var in usersvc.UpdatePasswordInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}
		if err := users.UpdatePassword(c.Request.Context(), id, in); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func changeInfoHandler(users userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "user_id")
		if !ok {
			return
		}
		if err := domain.RequireAdminOrSelf(callerFrom(c), id); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Admin access required"})
			return
		}
		var in usersvc.UpdateInfoInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}
		if _, err := users.UpdateInfo(c.Request.Context(), id, in); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func deleteUserHandler(users userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "user_id")
		if !ok {
			return
		}
		if err := users.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
