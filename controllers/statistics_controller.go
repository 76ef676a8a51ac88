package controllers

import (
	"context"
	"errors"
	"net/http"

	"dailydiet/middlewares"
	"dailydiet/services"

	"github.com/gin-gonic/gin"
)

func GetStatistics(stats *services.StatisticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middlewares.UserIDKey)

		result, err := stats.Compute(c.Request.Context(), userID)
		if err != nil {
			// Client hung up mid-scan; the cursor is already released and
			// there is nobody left to answer.
			if errors.Is(err, context.Canceled) {
				c.Abort()
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error!"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"statistics": result})
	}
}
