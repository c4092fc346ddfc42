// models/student.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// StudentClass groups students for filtering on the payment grid.
type StudentClass struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
}

// Student is one enrolled student.
type Student struct {
	gorm.Model
	Name          string        `json:"name" gorm:"not null"`
	Gender        string        `json:"gender"`
	Age           int           `json:"age"`
	DateOfBirth   *time.Time    `json:"dateOfBirth"`
	ContactNumber string        `json:"contactNumber"` // +62 format
	Address       string        `json:"address"`
	ClassID       *uint         `json:"classId"`
	Class         *StudentClass `json:"class,omitempty" gorm:"foreignKey:ClassID"`
	Level         string        `json:"level"`
}
