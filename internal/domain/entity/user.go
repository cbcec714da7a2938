package entity

import (
	"time"
)

// User represents a registered learner or administrator.
type User struct {
	ID                   string     `bson:"_id,omitempty" json:"id"`
	FullName             string     `bson:"full_name" json:"fullName"`
	Email                string     `bson:"email" json:"email"`
	Password             string     `bson:"password,omitempty" json:"-"`
	Avatar               Asset      `bson:"avatar" json:"avatar"`
	Role                 UserRole   `bson:"role" json:"role"`
	ForgotPasswordToken  *string    `bson:"forgot_password_token,omitempty" json:"-"`
	ForgotPasswordExpiry *time.Time `bson:"forgot_password_expiry,omitempty" json:"-"`
	CreatedAt            time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt            time.Time  `bson:"updated_at" json:"updatedAt"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleUser  UserRole = "USER"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	return r == UserRoleAdmin || r == UserRoleUser
}

// Sanitized returns a copy of the user that is safe to send to clients.
func (u User) Sanitized() User {
	u.Password = ""
	u.ForgotPasswordToken = nil
	u.ForgotPasswordExpiry = nil
	return u
}
