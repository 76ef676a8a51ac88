package models

type User struct {
	ID       string `json:"id" gorm:"type:uuid;primaryKey"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
}
