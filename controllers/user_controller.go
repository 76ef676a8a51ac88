package controllers

import (
	"errors"
	"net/http"

	"dailydiet/services"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type AuthenticateInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func CreateUser(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			abortWithIssues(c, err)
			return
		}

		if err := auth.Register(c.Request.Context(), input.Email, input.Password); err != nil {
			if errors.Is(err, services.ErrUserExists) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists!"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error!"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "User created!"})
	}
}

func AuthenticateUser(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AuthenticateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			abortWithIssues(c, err)
			return
		}

		token, err := auth.Authenticate(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Email or password incorrect!"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error!"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User authenticated!", "token": token})
	}
}
