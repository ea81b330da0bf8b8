package domain

import "github.com/golang-jwt/jwt/v5"

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Claims is the payload of the identity provider's session token.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}
