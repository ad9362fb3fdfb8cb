package http

import (
	"net/http"

	"github.com/homeledger/inventory/internal/inventory/service"
	"github.com/homeledger/inventory/pkg/httpx"
	"github.com/homeledger/inventory/pkg/invsdk"
)

// HomeHandler serves homes and their members. Membership checks run in the
// router's access middleware before these methods.
type HomeHandler struct {
	Homes *service.HomeService
}

// Create godoc
//
//	@Summary	Create home
//	@Tags		Homes
//	@Accept		json
//	@Produce	json
//	@Param		request	body		invsdk.CreateHomeRequest	true	"Home"
//	@Success	201		{object}	invsdk.HomeResponse
//	@Failure	400		{object}	invsdk.APIError
//	@Security	SessionCookie
//	@Router		/v1/homes [post].
func (h *HomeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req invsdk.CreateHomeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	home, err := h.Homes.CreateHome(r.Context(), subject(r), req.Name, req.Address)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toHome(home))
}

// List godoc
//
//	@Summary	Homes of the caller
//	@Tags		Homes
//	@Produce	json
//	@Success	200	{array}	invsdk.HomeResponse
//	@Security	SessionCookie
//	@Router		/v1/homes [get].
func (h *HomeHandler) List(w http.ResponseWriter, r *http.Request) {
	homes, err := h.Homes.ListHomes(r.Context(), subject(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toHomes(homes))
}

// Get godoc
//
//	@Summary	Home details
//	@Tags		Homes
//	@Produce	json
//	@Param		homeId	path		string	true	"Home ID"
//	@Success	200		{object}	invsdk.HomeResponse
//	@Failure	403		{object}	invsdk.APIError
//	@Security	SessionCookie
//	@Router		/v1/homes/{homeId} [get].
func (h *HomeHandler) Get(w http.ResponseWriter, r *http.Request) {
	home, err := h.Homes.GetHome(r.Context(), r.PathValue("homeId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toHome(home))
}

// Update godoc
//
//	@Summary	Update home
//	@Tags		Homes
//	@Accept		json
//	@Produce	json
//	@Param		homeId	path		string						true	"Home ID"
//	@Param		request	body		invsdk.UpdateHomeRequest	true	"Fields to change"
//	@Success	200		{object}	invsdk.HomeResponse
//	@Failure	403		{object}	invsdk.APIError
//	@Security	SessionCookie
//	@Router		/v1/homes/{homeId} [patch].
func (h *HomeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req invsdk.UpdateHomeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	home, err := h.Homes.UpdateHome(r.Context(), r.PathValue("homeId"), service.HomeUpdate{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toHome(home))
}

// Delete godoc
//
//	@Summary		Delete home
//	@Description	Deletes the home with its rooms, items and invites
//	@Tags			Homes
//	@Param			homeId	path	string	true	"Home ID"
//	@Success		204
//	@Failure		403	{object}	invsdk.APIError
//	@Security		SessionCookie
//	@Router			/v1/homes/{homeId} [delete].
func (h *HomeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Homes.DeleteHome(r.Context(), r.PathValue("homeId")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListMembers godoc
//
//	@Summary	Home members
//	@Tags		Homes
//	@Produce	json
//	@Param		homeId	path	string	true	"Home ID"
//	@Success	200		{array}	invsdk.MemberResponse
//	@Failure	403		{object}	invsdk.APIError
//	@Security	SessionCookie
//	@Router		/v1/homes/{homeId}/members [get].
func (h *HomeHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.Homes.ListMembers(r.Context(), r.PathValue("homeId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMembers(members))
}

// RemoveMember godoc
//
//	@Summary	Remove home member
//	@Tags		Homes
//	@Param		homeId	path	string	true	"Home ID"
//	@Param		userId	path	string	true	"User ID"
//	@Success	204
//	@Failure	404	{object}	invsdk.APIError
//	@Failure	409	{object}	invsdk.APIError	"last admin"
//	@Security	SessionCookie
//	@Router		/v1/homes/{homeId}/members/{userId} [delete].
func (h *HomeHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	if err := h.Homes.RemoveMember(r.Context(), r.PathValue("homeId"), r.PathValue("userId")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
