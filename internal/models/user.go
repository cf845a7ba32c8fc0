// internal/models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is a wallet identity known to the platform. Members register with a
// wallet address only; the admin account additionally carries a password
// hash for the settings dashboard.
type User struct {
	BaseModel
	WalletAddress string     `json:"wallet_address" gorm:"uniqueIndex;size:64;not null"`
	UserType      UserType   `json:"user_type" gorm:"type:varchar(20);not null;default:'member'"`
	Status        UserStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	PasswordHash  string     `json:"-" gorm:"size:255"`
	LastLoginAt   *time.Time `json:"last_login_at"`

	Friends []Friend `json:"friends,omitempty" gorm:"foreignKey:UserWalletAddress;references:WalletAddress"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
