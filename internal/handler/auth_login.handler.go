package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"portal-auth-service/pkg/response"
	xerrors "portal-auth-service/pkg/utils/errors"
)

// HandleSignin authenticates email+password and attaches a session cookie.
// Unknown email and wrong password produce byte-identical responses.
func (h *AuthHandler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.uc.LoginUser(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, xerrors.ErrInvalidCredentials) {
			response.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("Signin error: %v", err)
		response.Error(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		log.Printf("Signin: failed to issue token for user %s: %v", user.ID, err)
		response.Error(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	h.cookies.Attach(w, token)
	response.Message(w, http.StatusOK, "Sign in successful")
}
