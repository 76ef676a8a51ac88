package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statsQuery = `SELECT * FROM "meals" WHERE "userId" = $1 ORDER BY datetime ASC`

func mealRows(diets []bool) *sqlmock.Rows {
	rows := sqlmock.NewRows(mealColumns)
	base := time.Date(2023, 5, 5, 8, 0, 0, 0, time.UTC)
	for i, diet := range diets {
		rows.AddRow(uuid.NewString(), "user-1", "meal", "desc", base.Add(time.Duration(i)*time.Hour), diet)
	}
	return rows
}

func TestStatistics_Compute(t *testing.T) {
	tests := []struct {
		name  string
		diets []bool
		want  MealStatistics
	}{
		{
			name:  "empty history",
			diets: []bool{},
			want:  MealStatistics{},
		},
		{
			name:  "streak broken by off-diet meal",
			diets: []bool{true, false, true, true},
			want: MealStatistics{
				MealsTotal:              4,
				MealsOnDietTotal:        3,
				MealsOffDietTotal:       1,
				BestSequenceMealsOnDiet: 2,
			},
		},
		{
			name:  "streak running to the last meal",
			diets: []bool{true, true, true, true, true},
			want: MealStatistics{
				MealsTotal:              5,
				MealsOnDietTotal:        5,
				BestSequenceMealsOnDiet: 5,
			},
		},
		{
			name:  "all off diet",
			diets: []bool{false, false, false},
			want: MealStatistics{
				MealsTotal:        3,
				MealsOffDietTotal: 3,
			},
		},
		{
			name:  "early streak beats later one",
			diets: []bool{true, true, true, false, true, false, true},
			want: MealStatistics{
				MealsTotal:              7,
				MealsOnDietTotal:        5,
				MealsOffDietTotal:       2,
				BestSequenceMealsOnDiet: 3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectQuery(regexp.QuoteMeta(statsQuery)).
				WithArgs("user-1").
				WillReturnRows(mealRows(tt.diets))

			svc := NewStatisticsService(db)
			got, err := svc.Compute(context.Background(), "user-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStatistics_TotalsAddUp(t *testing.T) {
	sequences := [][]bool{
		{true},
		{false},
		{true, true, false, true},
		{false, true, false, true, true, true, false},
	}

	for _, diets := range sequences {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(statsQuery)).
			WillReturnRows(mealRows(diets))

		got, err := NewStatisticsService(db).Compute(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, got.MealsTotal, got.MealsOnDietTotal+got.MealsOffDietTotal)
	}
}

func TestStatistics_CancelledContext(t *testing.T) {
	db, _ := newMockDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStatisticsService(db).Compute(ctx, "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
