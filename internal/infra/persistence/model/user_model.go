// Package model holds the GORM persistence structs. They mirror the tables created by the migrations.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 generated by the repository.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	PhoneNo      string    `gorm:"type:varchar(32)"`
	Type         string    `gorm:"type:varchar(16);not null"`
	Status       string    `gorm:"type:varchar(16);not null"`
	ProfilePic   string    `gorm:"type:varchar(255)"`
	Address      string    `gorm:"type:text"`
	StoreName    string    `gorm:"type:varchar(100)"`
	LocationName *string   `gorm:"type:varchar(255)"`
	Longitude    *float64
	Latitude     *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
