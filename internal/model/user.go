package model

import (
	"fmt"
	"time"
)

// Identity is the free-text name/number pair entered in the login form.
// No uniqueness or format constraint is applied.
type Identity struct {
	Name       string
	UserNumber string
}

// Label renders the identity the way it appears in status alerts.
func (i Identity) Label() string {
	return fmt.Sprintf("%s (%s)", i.Name, i.UserNumber)
}

// User is a row in the users table. Rows are only added when an identity is
// created through the login form's Create User button; no tracked operation
// reads them back.
type User struct {
	ID         uint `gorm:"primaryKey"`
	Name       string
	UserNumber string
	CreatedAt  time.Time
}

// LastUser is the single auto-resume identity. The table holds zero or one
// row and is overwritten wholesale on every login.
type LastUser struct {
	ID         uint `gorm:"primaryKey"`
	Name       string
	UserNumber string
}

// TableName keeps the historical singular table name.
func (LastUser) TableName() string { return "last_user" }

// Identity converts the stored row back to the value form.
func (u LastUser) Identity() Identity {
	return Identity{Name: u.Name, UserNumber: u.UserNumber}
}
