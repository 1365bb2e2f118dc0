package domain

import "time"

// User is a portal account. Email is unique across all users.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	Company      string    `json:"company" bson:"company"`
	Phone        *string   `json:"phone" bson:"phone,omitempty"`
	Address      *string   `json:"address" bson:"address,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	PasswordHash string    `json:"-" bson:"hashed_password"`
}

// UserUpdate carries the profile fields a user may change. Nil fields are
// left untouched.
type UserUpdate struct {
	Name    *string
	Phone   *string
	Address *string
}

// IsEmpty reports whether the update carries no fields.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Phone == nil && u.Address == nil
}
