package entity

import "github.com/golang-jwt/jwt/v5"

// Claims is the identity carried by a session token.
type Claims struct {
	UserID string   `json:"id"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}
