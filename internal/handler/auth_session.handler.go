package handler

import (
	"net/http"

	"portal-auth-service/pkg/response"
)

// HandleLogout clears the session cookie. Idempotent: it never consults the
// store and always succeeds. The token itself stays valid until its expiry;
// there is no server-side revocation.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.cookies.Clear(w)
	response.Message(w, http.StatusOK, "Logged out successfully")
}
