package services

import (
	"context"

	"dailydiet/models"

	"gorm.io/gorm"
)

type StatisticsService struct {
	db *gorm.DB
}

func NewStatisticsService(db *gorm.DB) *StatisticsService {
	return &StatisticsService{db: db}
}

type MealStatistics struct {
	MealsTotal              int64 `json:"meals_total"`
	MealsOnDietTotal        int64 `json:"meals_on_diet_total"`
	MealsOffDietTotal       int64 `json:"meals_off_diet_total"`
	BestSequenceMealsOnDiet int64 `json:"best_sequence_meals_on_diet"`
}

// Compute folds the user's meals, ordered by datetime ascending, into the
// four summary counters in a single pass over a server-side cursor, so memory
// stays flat no matter how much history the user has. Cancelling ctx (the
// client hanging up) aborts the scan and releases the cursor.
//
// A streak that runs to the last meal is never closed inside the loop, hence
// the final comparison after it.
func (s *StatisticsService) Compute(ctx context.Context, userID string) (*MealStatistics, error) {
	rows, err := s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Where(`"userId" = ?`, userID).
		Order("datetime ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := &MealStatistics{}
	var currentStreak int64

	for rows.Next() {
		var meal models.Meal
		if err := s.db.ScanRows(rows, &meal); err != nil {
			return nil, err
		}

		stats.MealsTotal++
		if meal.Diet {
			stats.MealsOnDietTotal++
			currentStreak++
		} else {
			stats.MealsOffDietTotal++
			if currentStreak > stats.BestSequenceMealsOnDiet {
				stats.BestSequenceMealsOnDiet = currentStreak
			}
			currentStreak = 0
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if currentStreak > stats.BestSequenceMealsOnDiet {
		stats.BestSequenceMealsOnDiet = currentStreak
	}

	return stats, nil
}
