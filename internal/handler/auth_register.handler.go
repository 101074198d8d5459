package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"portal-auth-service/pkg/response"
	xerrors "portal-auth-service/pkg/utils/errors"
)

// HandleSignup registers a new user and signs them in: on success the response
// carries a fresh session cookie alongside the 201.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.uc.RegisterUser(r.Context(), req.FirstName, req.LastName, req.Email, req.Phone, req.Password)
	if err != nil {
		h.handleSignupError(w, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		log.Printf("Signup: failed to issue token for user %s: %v", user.ID, err)
		response.Error(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	h.cookies.Attach(w, token)
	response.Message(w, http.StatusCreated, "User created and signed in successfully")
}

func (h *AuthHandler) handleSignupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, xerrors.ErrEmailAlreadyInUse):
		response.Error(w, http.StatusConflict, "Email already in use")
	case xerrors.IsValidation(err):
		response.Error(w, http.StatusBadRequest, err.Error())
	default:
		// storage or hashing failure; detail stays server-side
		log.Printf("Signup error: %v", err)
		response.Error(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
	}
}
