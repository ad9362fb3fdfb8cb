package http

import (
	"net/http"

	"github.com/homeledger/inventory/internal/inventory/service"
	"github.com/homeledger/inventory/pkg/httpx"
	"github.com/homeledger/inventory/pkg/invsdk"
)

type ItemHandler struct {
	Items *service.ItemService
}

func itemInput(req invsdk.ItemRequest) service.ItemInput {
	return service.ItemInput{
		Name:          req.Name,
		Description:   req.Description,
		PurchaseDate:  req.PurchaseDate,
		PriceCents:    req.PriceCents,
		WarrantyUntil: req.WarrantyUntil,
		Public:        req.Public,
		RoomIDs:       req.RoomIDs,
	}
}

// ListMine godoc
//
//	@Summary	Items of the caller
//	@Tags		Items
//	@Produce	json
//	@Success	200	{array}	invsdk.ItemResponse
//	@Security	SessionCookie
//	@Router		/v1/items [get].
func (h *ItemHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	items, err := h.Items.ListMine(r.Context(), subject(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toItems(items))
}

// ListInHome godoc
//
//	@Summary		Items in a home
//	@Description	Items the caller is a member of plus public items
//	@Tags			Items
//	@Produce		json
//	@Param			homeId	path	string	true	"Home ID"
//	@Success		200		{array}	invsdk.ItemResponse
//	@Failure		403		{object}	invsdk.APIError
//	@Security		SessionCookie
//	@Router			/v1/homes/{homeId}/items [get].
func (h *ItemHandler) ListInHome(w http.ResponseWriter, r *http.Request) {
	items, err := h.Items.ListInHome(r.Context(), r.PathValue("homeId"), subject(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toItems(items))
}

// Create godoc
//
//	@Summary	Create item
//	@Tags		Items
//	@Accept		json
//	@Produce	json
//	@Param		homeId	path		string				true	"Home ID"
//	@Param		request	body		invsdk.ItemRequest	true	"Item"
//	@Success	201		{object}	invsdk.ItemResponse
//	@Failure	400		{object}	invsdk.APIError
//	@Failure	404		{object}	invsdk.APIError	"room not in this home"
//	@Security	SessionCookie
//	@Router		/v1/homes/{homeId}/items [post].
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req invsdk.ItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	item, err := h.Items.CreateItem(r.Context(), r.PathValue("homeId"), subject(r), itemInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toItem(item))
}

// Get godoc
//
//	@Summary		Item details
//	@Description	Readable by item members, and by home members when the item is public
//	@Tags			Items
//	@Produce		json
//	@Param			itemId	path		string	true	"Item ID"
//	@Success		200		{object}	invsdk.ItemResponse
//	@Failure		403		{object}	invsdk.APIError
//	@Failure		404		{object}	invsdk.APIError
//	@Security		SessionCookie
//	@Router			/v1/items/{itemId} [get].
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.Items.GetItem(r.Context(), r.PathValue("itemId"), subject(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toItem(item))
}

// Update godoc
//
//	@Summary	Replace item
//	@Tags		Items
//	@Accept		json
//	@Produce	json
//	@Param		itemId	path		string				true	"Item ID"
//	@Param		request	body		invsdk.ItemRequest	true	"Item"
//	@Success	200		{object}	invsdk.ItemResponse
//	@Failure	403		{object}	invsdk.APIError
//	@Security	SessionCookie
//	@Router		/v1/items/{itemId} [put].
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req invsdk.ItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	item, err := h.Items.UpdateItem(r.Context(), r.PathValue("itemId"), itemInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toItem(item))
}

// Delete godoc
//
//	@Summary	Delete item
//	@Tags		Items
//	@Param		itemId	path	string	true	"Item ID"
//	@Success	204
//	@Failure	403	{object}	invsdk.APIError
//	@Security	SessionCookie
//	@Router		/v1/items/{itemId} [delete].
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Items.DeleteItem(r.Context(), r.PathValue("itemId")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
