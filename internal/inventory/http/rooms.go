package http

import (
	"net/http"

	"github.com/homeledger/inventory/internal/inventory/service"
	"github.com/homeledger/inventory/pkg/httpx"
	"github.com/homeledger/inventory/pkg/invsdk"
)

type RoomHandler struct {
	Rooms *service.RoomService
}

// Create godoc
//
//	@Summary	Create room
//	@Tags		Rooms
//	@Accept		json
//	@Produce	json
//	@Param		homeId	path		string				true	"Home ID"
//	@Param		request	body		invsdk.RoomRequest	true	"Room"
//	@Success	201		{object}	invsdk.RoomResponse
//	@Failure	403		{object}	invsdk.APIError
//	@Security	SessionCookie
//	@Router		/v1/homes/{homeId}/rooms [post].
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req invsdk.RoomRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	room, err := h.Rooms.CreateRoom(r.Context(), r.PathValue("homeId"), subject(r), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toRoom(room))
}

// List godoc
//
//	@Summary		Rooms of a home
//	@Description	Home admins see every room, other members only the rooms they belong to
//	@Tags			Rooms
//	@Produce		json
//	@Param			homeId	path	string	true	"Home ID"
//	@Success		200		{array}	invsdk.RoomResponse
//	@Failure		403		{object}	invsdk.APIError
//	@Security		SessionCookie
//	@Router			/v1/homes/{homeId}/rooms [get].
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Rooms.ListRooms(r.Context(), r.PathValue("homeId"), subject(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toRooms(rooms))
}

// Get godoc
//
//	@Summary	Room details
//	@Tags		Rooms
//	@Produce	json
//	@Param		roomId	path		string	true	"Room ID"
//	@Success	200		{object}	invsdk.RoomResponse
//	@Failure	403		{object}	invsdk.APIError
//	@Security	SessionCookie
//	@Router		/v1/rooms/{roomId} [get].
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	room, err := h.Rooms.GetRoom(r.Context(), r.PathValue("roomId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toRoom(room))
}

// Rename godoc
//
//	@Summary	Rename room
//	@Tags		Rooms
//	@Accept		json
//	@Produce	json
//	@Param		roomId	path		string				true	"Room ID"
//	@Param		request	body		invsdk.RoomRequest	true	"New name"
//	@Success	200		{object}	invsdk.RoomResponse
//	@Failure	403		{object}	invsdk.APIError
//	@Security	SessionCookie
//	@Router		/v1/rooms/{roomId} [patch].
func (h *RoomHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req invsdk.RoomRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	room, err := h.Rooms.RenameRoom(r.Context(), r.PathValue("roomId"), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toRoom(room))
}

// Delete godoc
//
//	@Summary	Delete room
//	@Tags		Rooms
//	@Param		roomId	path	string	true	"Room ID"
//	@Success	204
//	@Failure	409	{object}	invsdk.APIError	"room still holds items"
//	@Security	SessionCookie
//	@Router		/v1/rooms/{roomId} [delete].
func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Rooms.DeleteRoom(r.Context(), r.PathValue("roomId")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListMembers godoc
//
//	@Summary	Room members
//	@Tags		Rooms
//	@Produce	json
//	@Param		roomId	path	string	true	"Room ID"
//	@Success	200		{array}	invsdk.MemberResponse
//	@Security	SessionCookie
//	@Router		/v1/rooms/{roomId}/members [get].
func (h *RoomHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.Rooms.ListMembers(r.Context(), r.PathValue("roomId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMembers(members))
}

// AddMember godoc
//
//	@Summary	Add room member
//	@Tags		Rooms
//	@Accept		json
//	@Param		roomId	path	string						true	"Room ID"
//	@Param		request	body	invsdk.AddRoomMemberRequest	true	"User"
//	@Success	204
//	@Failure	409	{object}	invsdk.APIError	"already a member, or not in the home"
//	@Security	SessionCookie
//	@Router		/v1/rooms/{roomId}/members [post].
func (h *RoomHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req invsdk.AddRoomMemberRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Rooms.AddMember(r.Context(), r.PathValue("roomId"), req.UserID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveMember godoc
//
//	@Summary	Remove room member
//	@Tags		Rooms
//	@Param		roomId	path	string	true	"Room ID"
//	@Param		userId	path	string	true	"User ID"
//	@Success	204
//	@Failure	404	{object}	invsdk.APIError
//	@Security	SessionCookie
//	@Router		/v1/rooms/{roomId}/members/{userId} [delete].
func (h *RoomHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	if err := h.Rooms.RemoveMember(r.Context(), r.PathValue("roomId"), r.PathValue("userId")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Permissions godoc
//
//	@Summary	Caller's room permissions
//	@Tags		Rooms
//	@Produce	json
//	@Param		roomId	path		string	true	"Room ID"
//	@Success	200		{object}	invsdk.PermissionsResponse
//	@Failure	404		{object}	invsdk.APIError	"not a member"
//	@Security	SessionCookie
//	@Router		/v1/rooms/{roomId}/permissions [get].
func (h *RoomHandler) Permissions(w http.ResponseWriter, r *http.Request) {
	admin, err := h.Rooms.Permissions(r.Context(), r.PathValue("roomId"), subject(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, invsdk.PermissionsResponse{Admin: admin})
}
