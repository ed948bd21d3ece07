package models

import (
	"time"

	"github.com/localnerve/reviewsdb/internal/serialize"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt cost used by SetPassword.
var PasswordCost = bcrypt.DefaultCost

// SetPasswordCost changes the bcrypt cost. Values outside bcrypt's range
// fall back to the default.
func SetPasswordCost(cost int) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	PasswordCost = cost
}

// User is an account with a hashed password
type User struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// NewUser constructs a User and hashes its password.
func NewUser(username, password string) (*User, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}
	u := &User{Username: username}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword replaces the stored hash. The plaintext is never kept.
func (u *User) SetPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// Authenticate reports whether password matches the stored hash.
func (u *User) Authenticate(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func (User) SerializeKind() string { return KindUser }

func (u User) SerializeFields() []serialize.Field {
	return []serialize.Field{
		{Key: "id", Value: u.ID},
		{Key: "username", Value: u.Username},
	}
}

func (User) SerializeRelated(string) []serialize.Node { return nil }
