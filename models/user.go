// models/user.go
package models

import "gorm.io/gorm"

// User is a staff account that can sign in to the admin panel.
type User struct {
	gorm.Model
	Username string `json:"username" gorm:"unique;not null"`
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash
}
