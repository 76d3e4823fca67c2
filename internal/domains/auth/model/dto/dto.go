package dto

import (
	"strings"
	"time"

	"barbershop/infras/jwt"
	adminDto "barbershop/internal/domains/admin/model/dto"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Normalize lowercases the email, accounts are unique case-insensitively.
func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Tokens is the bearer pair handed out by login and refresh. ExpiresIn counts seconds of the access token.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (t *Tokens) FromTokenPair(pair *jwt.TokenPair) {
	t.AccessToken = pair.AccessToken
	t.RefreshToken = pair.RefreshToken
	t.TokenType = pair.TokenType
	t.ExpiresIn = pair.ExpiresIn
}

type LoginResponse struct {
	Tokens
	Admin adminDto.AdminResponse `json:"admin"`
}

type RefreshTokenResponse struct {
	Tokens
}
