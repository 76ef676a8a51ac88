package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"dailydiet/middlewares"
	"dailydiet/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Shared plumbing for the handler tests: a gorm handle over sqlmock and a
// router assembled the same way routes.SetupRouter does it.

const testSecret = "test-secret"

var (
	userColumns = []string{"id", "email", "password"}
	mealColumns = []string{"id", "userId", "name", "description", "datetime", "diet"}
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	authSvc := services.NewAuthService(db, testSecret)
	mealSvc := services.NewMealService(db)
	statsSvc := services.NewStatisticsService(db)

	users := r.Group("/users")
	{
		users.POST("", CreateUser(authSvc))
		users.POST("/authenticate", AuthenticateUser(authSvc))
	}

	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware(db, testSecret))
	{
		meals.POST("", CreateMeal(mealSvc))
		meals.GET("", ListMeals(mealSvc))
		meals.GET("/statistics", GetStatistics(statsSvc))
		meals.GET("/:id", GetMeal(mealSvc))
		meals.PUT("/:id", UpdateMeal(mealSvc))
		meals.DELETE("/:id", DeleteMeal(mealSvc))
	}

	return r
}

func doRequest(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(rec, req)
	return rec
}

// expectAuthenticatedUser queues the user lookup the auth middleware performs
// before any meal handler runs.
func expectAuthenticatedUser(mock sqlmock.Sqlmock, userID string) {
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(userID, "test@test.com", "hash"))
}
