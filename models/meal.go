package models

import "time"

// One logged meal and whether it kept to the diet.
// Column names follow the persisted schema, including the camelCase userId FK.
type Meal struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      string    `json:"userId" gorm:"column:userId;type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Datetime    time.Time `json:"datetime" gorm:"not null"`
	Diet        bool      `json:"diet" gorm:"not null"`
}
