package http

import (
	"net/http"
	"time"

	"github.com/homeledger/inventory/internal/inventory/service"
	"github.com/homeledger/inventory/pkg/httpx"
	"github.com/homeledger/inventory/pkg/invsdk"
	"github.com/homeledger/inventory/pkg/slogx"
)

type InviteHandler struct {
	Invites *service.InviteService
}

// Create godoc
//
//	@Summary		Create invite
//	@Description	Mint an XXXX-XXXX code granting membership of the home
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			homeId	path		string						true	"Home ID"
//	@Param			request	body		invsdk.CreateInviteRequest	false	"Expiry and reuse"
//	@Success		201		{object}	invsdk.InviteResponse
//	@Failure		403		{object}	invsdk.APIError
//	@Failure		503		{object}	invsdk.APIError	"no free code found"
//	@Security		SessionCookie
//	@Router			/v1/homes/{homeId}/invites [post].
func (h *InviteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req invsdk.CreateInviteRequest
	if r.ContentLength != 0 {
		if err := httpx.DecodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}
	}

	inv, err := h.Invites.CreateInvite(r.Context(), r.PathValue("homeId"), subject(r), service.InviteOptions{
		TTL:      time.Duration(req.TTLHours) * time.Hour,
		Reusable: req.Reusable,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	slogx.FromContext(r.Context()).Info("invite created", "home_id", inv.HomeID, "invite_id", inv.ID)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, toInvite(inv))
}

// List godoc
//
//	@Summary	Invites of a home
//	@Tags		Invites
//	@Produce	json
//	@Param		homeId	path	string	true	"Home ID"
//	@Success	200		{array}	invsdk.InviteResponse
//	@Failure	403		{object}	invsdk.APIError
//	@Security	SessionCookie
//	@Router		/v1/homes/{homeId}/invites [get].
func (h *InviteHandler) List(w http.ResponseWriter, r *http.Request) {
	invs, err := h.Invites.ListInvites(r.Context(), r.PathValue("homeId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toInvites(invs))
}

// Delete godoc
//
//	@Summary	Delete invite
//	@Tags		Invites
//	@Param		homeId		path	string	true	"Home ID"
//	@Param		inviteId	path	string	true	"Invite ID"
//	@Success	204
//	@Failure	404	{object}	invsdk.APIError
//	@Security	SessionCookie
//	@Router		/v1/homes/{homeId}/invites/{inviteId} [delete].
func (h *InviteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Invites.DeleteInvite(r.Context(), r.PathValue("homeId"), r.PathValue("inviteId")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Accept godoc
//
//	@Summary		Accept invite
//	@Description	Redeem a code and join its home. Codes are case-insensitive.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		invsdk.AcceptInviteRequest	true	"Invite code"
//	@Success		200		{object}	invsdk.HomeResponse
//	@Failure		400		{object}	invsdk.APIError	"malformed code"
//	@Failure		404		{object}	invsdk.APIError
//	@Failure		409		{object}	invsdk.APIError	"already a member"
//	@Failure		410		{object}	invsdk.APIError	"expired or used"
//	@Security		SessionCookie
//	@Router			/v1/invites/accept [post].
func (h *InviteHandler) Accept(w http.ResponseWriter, r *http.Request) {
	var req invsdk.AcceptInviteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	home, err := h.Invites.Redeem(r.Context(), req.Code, subject(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	slogx.FromContext(r.Context()).Info("invite redeemed", "home_id", home.ID)
	httpx.WriteJSON(w, http.StatusOK, toHome(home))
}
