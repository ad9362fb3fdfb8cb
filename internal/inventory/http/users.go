package http

import (
	"net/http"

	"github.com/homeledger/inventory/internal/inventory/service"
	"github.com/homeledger/inventory/pkg/httpx"
	"github.com/homeledger/inventory/pkg/invsdk"
)

// UserHandler serves the caller's own account under /v1/users/me.
type UserHandler struct {
	Users         *service.UserService
	SecureCookies bool
}

// Me godoc
//
//	@Summary	Current user
//	@Tags		Users
//	@Produce	json
//	@Success	200	{object}	invsdk.ProfileResponse
//	@Failure	401	{object}	invsdk.APIError
//	@Security	SessionCookie
//	@Router		/v1/users/me [get].
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, homes, err := h.Users.Profile(r.Context(), subject(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, invsdk.ProfileResponse{
		UserResponse: toUser(u),
		Homes:        toHomes(homes),
	})
}

// UpdateName godoc
//
//	@Summary	Change display name
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		invsdk.UpdateNameRequest	true	"New name"
//	@Success	200		{object}	invsdk.UserResponse
//	@Failure	400		{object}	invsdk.APIError
//	@Security	SessionCookie
//	@Router		/v1/users/me/name [patch].
func (h *UserHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	var req invsdk.UpdateNameRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	u, err := h.Users.UpdateName(r.Context(), subject(r), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// UpdateEmail godoc
//
//	@Summary	Change email
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		invsdk.UpdateEmailRequest	true	"New email"
//	@Success	200		{object}	invsdk.UserResponse
//	@Failure	400		{object}	invsdk.APIError
//	@Failure	409		{object}	invsdk.APIError	"email already registered"
//	@Security	SessionCookie
//	@Router		/v1/users/me/email [patch].
func (h *UserHandler) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	var req invsdk.UpdateEmailRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	u, err := h.Users.UpdateEmail(r.Context(), subject(r), req.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// ChangePassword godoc
//
//	@Summary	Change password
//	@Tags		Users
//	@Accept		json
//	@Param		request	body	invsdk.ChangePasswordRequest	true	"Current and new password"
//	@Success	204
//	@Failure	400	{object}	invsdk.APIError
//	@Failure	401	{object}	invsdk.APIError	"current password is wrong"
//	@Security	SessionCookie
//	@Router		/v1/users/me/password [patch].
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req invsdk.ChangePasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Users.ChangePassword(r.Context(), subject(r), req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteAccount godoc
//
//	@Summary		Delete account
//	@Description	Delete the caller and every membership they hold. Requires the password.
//	@Tags			Users
//	@Accept			json
//	@Param			request	body	invsdk.DeleteAccountRequest	true	"Password confirmation"
//	@Success		204
//	@Failure		401	{object}	invsdk.APIError
//	@Security		SessionCookie
//	@Router			/v1/users/me [delete].
func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	var req invsdk.DeleteAccountRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Users.DeleteAccount(r.Context(), subject(r), req.Password); err != nil {
		writeError(w, r, err)
		return
	}
	clearSessionCookie(w, h.SecureCookies)
	w.WriteHeader(http.StatusNoContent)
}
