package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são emitidas pelo servidor de autenticação externo e apenas verificadas aqui
type Claims struct {
	UserID     int    `json:"user_id"`
	UserEmail  string `json:"user_email"`
	UserRoleID int    `json:"user_role_id"`
	EntityID   uint   `json:"entity_id"`
	jwt.RegisteredClaims
}
