package shared

import "github.com/golang-jwt/jwt/v4"

type UserClaims struct {
	UserId *string `json:"user_id"`
	jwt.RegisteredClaims
}
