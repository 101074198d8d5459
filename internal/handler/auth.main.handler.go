package handler

import (
	"portal-auth-service/internal/session"
	"portal-auth-service/internal/usecase"
	"portal-auth-service/pkg/jwtutil"
)

type AuthHandler struct {
	uc      *usecase.UserUsecase
	tokens  *jwtutil.Issuer
	cookies *session.CookieManager
}

func NewAuthHandler(uc *usecase.UserUsecase, tokens *jwtutil.Issuer, cookies *session.CookieManager) *AuthHandler {
	return &AuthHandler{
		uc:      uc,
		tokens:  tokens,
		cookies: cookies,
	}
}

type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
