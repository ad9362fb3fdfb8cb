package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/homeledger/inventory/internal/inventory/service"
	"github.com/homeledger/inventory/pkg/httpx"
	"github.com/homeledger/inventory/pkg/invsdk"
	"github.com/homeledger/inventory/pkg/slogx"
)

// errorTable maps service errors to responses. Order matters only where one
// error wraps another.
var errorTable = []struct {
	err  error
	resp *invsdk.APIError
}{
	{service.ErrInvalidRequest, invsdk.ErrInvalidRequest},
	{service.ErrInvalidInviteRequest, invsdk.NewAPIError(http.StatusBadRequest, invsdk.ErrorCodeInvalidRequest, "invite ttl must not be negative")},
	{service.ErrInvalidCodeFormat, invsdk.NewAPIError(http.StatusBadRequest, invsdk.ErrorCodeInvalidRequest, "invite codes look like XXXX-XXXX")},
	{service.ErrInvalidCredentials, invsdk.ErrInvalidCredentials},
	{service.ErrForbidden, invsdk.ErrForbidden},
	{service.ErrHomeNotFound, invsdk.NewAPIError(http.StatusNotFound, invsdk.ErrorCodeNotFound, "home not found")},
	{service.ErrRoomNotFound, invsdk.NewAPIError(http.StatusNotFound, invsdk.ErrorCodeNotFound, "room not found")},
	{service.ErrItemNotFound, invsdk.NewAPIError(http.StatusNotFound, invsdk.ErrorCodeNotFound, "item not found")},
	{service.ErrUserNotFound, invsdk.NewAPIError(http.StatusNotFound, invsdk.ErrorCodeNotFound, "user not found")},
	{service.ErrMemberNotFound, invsdk.NewAPIError(http.StatusNotFound, invsdk.ErrorCodeNotFound, "user is not a member")},
	{service.ErrInviteNotFound, invsdk.NewAPIError(http.StatusNotFound, invsdk.ErrorCodeNotFound, "invite not found")},
	{service.ErrInviteExpired, invsdk.NewAPIError(http.StatusGone, invsdk.ErrorCodeGone, "invite has expired")},
	{service.ErrInviteAlreadyUsed, invsdk.NewAPIError(http.StatusGone, invsdk.ErrorCodeGone, "invite has already been used")},
	{service.ErrAlreadyMember, invsdk.NewAPIError(http.StatusConflict, invsdk.ErrorCodeConflict, "already a member")},
	{service.ErrEmailTaken, invsdk.NewAPIError(http.StatusConflict, invsdk.ErrorCodeConflict, "email is already registered")},
	{service.ErrRoomNotEmpty, invsdk.NewAPIError(http.StatusConflict, invsdk.ErrorCodeConflict, "room still holds items")},
	{service.ErrLastAdmin, invsdk.NewAPIError(http.StatusConflict, invsdk.ErrorCodeConflict, "the last admin cannot leave while others remain")},
	{service.ErrNotHomeMember, invsdk.NewAPIError(http.StatusConflict, invsdk.ErrorCodeConflict, "user must belong to the home first")},
	{service.ErrStoreUnavailable, invsdk.ErrStoreUnavailable},
	{service.ErrCodeGenerationExhausted, invsdk.NewAPIError(http.StatusServiceUnavailable, invsdk.ErrorCodeServerError, "could not allocate an invite code, try again")},
}

// writeError renders err. Unknown errors become 500 and are logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *httpx.ValidationError
	if errors.As(err, &verr) {
		resp := *invsdk.ErrInvalidRequest
		resp.Code = invsdk.ErrorCodeValidation
		resp.Description = verr.Error()
		resp.Fields = verr.Fields
		resp.WriteError(w)
		return
	}
	if errors.Is(err, httpx.ErrInvalidBody) {
		invsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	for _, e := range errorTable {
		if errors.Is(err, e.err) {
			if e.resp.StatusCode >= http.StatusInternalServerError {
				slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
			}
			e.resp.WriteError(w)
			return
		}
	}

	slogx.FromContext(r.Context()).Error("unhandled error", slog.Any("error", err))
	invsdk.ErrServerError.WriteError(w)
}

// subject returns the authenticated user id. Routes that call it are wrapped
// in the session middleware.
func subject(r *http.Request) string {
	id, _ := httpx.SubjectFromContext(r.Context())
	return id
}
