package http

import (
	"github.com/homeledger/inventory/internal/inventory/domain"
	"github.com/homeledger/inventory/pkg/invsdk"
)

func toUser(u domain.User) invsdk.UserResponse {
	return invsdk.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func toHome(h domain.Home) invsdk.HomeResponse {
	return invsdk.HomeResponse{
		ID:        h.ID,
		Name:      h.Name,
		Address:   h.Address,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

func toHomes(hs []domain.Home) []invsdk.HomeResponse {
	out := make([]invsdk.HomeResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, toHome(h))
	}
	return out
}

func toMembers(ms []domain.Member) []invsdk.MemberResponse {
	out := make([]invsdk.MemberResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, invsdk.MemberResponse{
			UserID:   m.UserID,
			Email:    m.Email,
			Name:     m.Name,
			Admin:    m.Admin,
			JoinedAt: m.JoinedAt,
		})
	}
	return out
}

func toInvite(inv domain.HomeInvite) invsdk.InviteResponse {
	return invsdk.InviteResponse{
		ID:        inv.ID,
		Code:      inv.Code,
		HomeID:    inv.HomeID,
		CreatedBy: inv.CreatedBy,
		CreatedAt: inv.CreatedAt,
		ExpiresAt: inv.ExpiresAt,
		Reusable:  inv.Reusable,
		UsedBy:    inv.UsedBy,
		UsedAt:    inv.UsedAt,
	}
}

func toInvites(invs []domain.HomeInvite) []invsdk.InviteResponse {
	out := make([]invsdk.InviteResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, toInvite(inv))
	}
	return out
}

func toRoom(r domain.Room) invsdk.RoomResponse {
	return invsdk.RoomResponse{
		ID:        r.ID,
		HomeID:    r.HomeID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toRooms(rs []domain.Room) []invsdk.RoomResponse {
	out := make([]invsdk.RoomResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, toRoom(r))
	}
	return out
}

func toItem(it domain.Item) invsdk.ItemResponse {
	rooms := it.RoomIDs
	if rooms == nil {
		rooms = []string{}
	}
	return invsdk.ItemResponse{
		ID:            it.ID,
		HomeID:        it.HomeID,
		Name:          it.Name,
		Description:   it.Description,
		PurchaseDate:  it.PurchaseDate,
		PriceCents:    it.PriceCents,
		WarrantyUntil: it.WarrantyUntil,
		Public:        it.Public,
		RoomIDs:       rooms,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}

func toItems(its []domain.Item) []invsdk.ItemResponse {
	out := make([]invsdk.ItemResponse, 0, len(its))
	for _, it := range its {
		out = append(out, toItem(it))
	}
	return out
}
