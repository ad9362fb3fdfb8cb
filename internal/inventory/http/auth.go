package http

import (
	"net/http"

	"github.com/homeledger/inventory/internal/inventory/domain"
	"github.com/homeledger/inventory/internal/inventory/service"
	"github.com/homeledger/inventory/pkg/httpx"
	"github.com/homeledger/inventory/pkg/invsdk"
	"github.com/homeledger/inventory/pkg/slogx"
)

// AuthHandler serves registration, login and logout. Successful calls set
// the session cookie and echo the token in the body for non-browser clients.
type AuthHandler struct {
	Users         *service.UserService
	Sessions      *service.SessionService
	SecureCookies bool
}

// Register godoc
//
//	@Summary		Register
//	@Description	Create an account and start a session
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		invsdk.RegisterRequest	true	"New account"
//	@Success		201		{object}	invsdk.AuthResponse
//	@Failure		400		{object}	invsdk.APIError
//	@Failure		409		{object}	invsdk.APIError	"email already registered"
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req invsdk.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	u, err := h.Users.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	slogx.FromContext(r.Context()).Info("user registered", "user_id", u.ID)

	h.startSession(w, r, u, http.StatusCreated)
}

// Login godoc
//
//	@Summary		Login
//	@Description	Check credentials and start a session
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		invsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	invsdk.AuthResponse
//	@Failure		400		{object}	invsdk.APIError
//	@Failure		401		{object}	invsdk.APIError	"invalid credentials"
//	@Failure		429		{object}	invsdk.APIError
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req invsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	u, err := h.Users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.startSession(w, r, u, http.StatusOK)
}

// Logout godoc
//
//	@Summary		Logout
//	@Description	Clear the session cookie. Tokens are stateless, so a copied token stays valid until it expires.
//	@Tags			Auth
//	@Success		204
//	@Router			/v1/auth/logout [post].
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w, h.SecureCookies)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, u domain.User, status int) {
	tok, err := h.Sessions.Issue(u.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	setSessionCookie(w, tok, h.Sessions.TTL(), h.SecureCookies)
	httpx.NoCache(w)
	httpx.WriteJSON(w, status, invsdk.AuthResponse{
		Token:     tok.Value,
		ExpiresAt: tok.ExpiresAt,
		User:      toUser(u),
	})
}
