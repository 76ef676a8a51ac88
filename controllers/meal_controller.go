package controllers

import (
	"errors"
	"net/http"
	"time"

	"dailydiet/middlewares"
	"dailydiet/services"

	"github.com/gin-gonic/gin"
)

type MealInput struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Datetime    time.Time `json:"datetime" binding:"required"`
	Diet        *bool     `json:"diet" binding:"required"`
}

// MealUpdateInput is partial: absent fields stay nil and keep their stored
// value. Diet is a pointer so an explicit false survives the trip.
type MealUpdateInput struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Datetime    *time.Time `json:"datetime"`
	Diet        *bool      `json:"diet"`
}

func CreateMeal(meals *services.MealService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MealInput
		if err := c.ShouldBindJSON(&input); err != nil {
			abortWithIssues(c, err)
			return
		}

		userID := c.GetString(middlewares.UserIDKey)
		_, err := meals.CreateMeal(c.Request.Context(), userID, services.CreateMealInput{
			Name:        input.Name,
			Description: input.Description,
			Datetime:    input.Datetime,
			Diet:        *input.Diet,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error!"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Meal created!"})
	}
}

func ListMeals(meals *services.MealService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middlewares.UserIDKey)

		list, err := meals.ListMeals(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error!"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"meals": list})
	}
}

func GetMeal(meals *services.MealService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middlewares.UserIDKey)

		meal, err := meals.GetMeal(c.Request.Context(), userID, c.Param("id"))
		if err != nil {
			if errors.Is(err, services.ErrMealNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Meal not found!"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error!"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"meal": meal})
	}
}

func UpdateMeal(meals *services.MealService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MealUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			abortWithIssues(c, err)
			return
		}

		userID := c.GetString(middlewares.UserIDKey)
		err := meals.UpdateMeal(c.Request.Context(), userID, c.Param("id"), services.UpdateMealInput{
			Name:        input.Name,
			Description: input.Description,
			Datetime:    input.Datetime,
			Diet:        input.Diet,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyUpdate):
				c.JSON(http.StatusBadRequest, gin.H{"message": "No data to edit!"})
			case errors.Is(err, services.ErrMealNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "Meal not found!"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error!"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Meal updated!"})
	}
}

func DeleteMeal(meals *services.MealService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middlewares.UserIDKey)

		err := meals.DeleteMeal(c.Request.Context(), userID, c.Param("id"))
		if err != nil {
			if errors.Is(err, services.ErrMealNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Meal not found!"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error!"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Meal deleted!"})
	}
}
