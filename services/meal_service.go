package services

import (
	"context"
	"errors"
	"time"

	"dailydiet/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

type CreateMealInput struct {
	Name        string
	Description string
	Datetime    time.Time
	Diet        bool
}

// UpdateMealInput is a partial update: nil fields keep their current value.
type UpdateMealInput struct {
	Name        *string
	Description *string
	Datetime    *time.Time
	Diet        *bool
}

func (in UpdateMealInput) Empty() bool {
	return in.Name == nil && in.Description == nil && in.Datetime == nil && in.Diet == nil
}

// CreateMeal stamps the owner from the authenticated identity, never from
// client input.
func (s *MealService) CreateMeal(ctx context.Context, userID string, in CreateMealInput) (*models.Meal, error) {
	meal := models.Meal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Datetime:    in.Datetime,
		Diet:        in.Diet,
	}

	if err := s.db.WithContext(ctx).Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) ListMeals(ctx context.Context, userID string) ([]models.Meal, error) {
	meals := []models.Meal{}
	err := s.db.WithContext(ctx).
		Where(`"userId" = ?`, userID).
		Find(&meals).Error
	return meals, err
}

// GetMeal looks up a meal scoped by owner. A meal that exists under another
// owner is reported exactly like a missing one.
func (s *MealService) GetMeal(ctx context.Context, userID, mealID string) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Where(`id = ? AND "userId" = ?`, mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// UpdateMeal merges the supplied fields over the stored row and writes the
// result back in one transaction. The write is scoped by (id, userId) as
// well, so a delete racing between the read and the write matches zero rows
// instead of resurrecting the meal.
func (s *MealService) UpdateMeal(ctx context.Context, userID, mealID string, in UpdateMealInput) error {
	if in.Empty() {
		return ErrEmptyUpdate
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var meal models.Meal
		err := tx.Where(`id = ? AND "userId" = ?`, mealID, userID).First(&meal).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMealNotFound
			}
			return err
		}

		if in.Name != nil {
			meal.Name = *in.Name
		}
		if in.Description != nil {
			meal.Description = *in.Description
		}
		if in.Datetime != nil {
			meal.Datetime = *in.Datetime
		}
		if in.Diet != nil {
			meal.Diet = *in.Diet
		}

		res := tx.Model(&models.Meal{}).
			Where(`id = ? AND "userId" = ?`, mealID, userID).
			Updates(map[string]interface{}{
				"datetime":    meal.Datetime,
				"description": meal.Description,
				"diet":        meal.Diet,
				"name":        meal.Name,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrMealNotFound
		}
		return nil
	})
}

func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID string) error {
	res := s.db.WithContext(ctx).
		Where(`id = ? AND "userId" = ?`, mealID, userID).
		Delete(&models.Meal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}
