package http

import (
	"net/http"

	"github.com/homeledger/inventory/internal/inventory/service"
	"github.com/homeledger/inventory/pkg/httpx"
	"github.com/homeledger/inventory/pkg/idx"
)

// RequireMember admits callers that are members of the resource named by
// the path parameter param.
func RequireMember(access *service.AccessService, res service.Resource, param string) httpx.Middleware {
	return requireLevel(access, res, param, service.LevelMember)
}

// RequireAdmin admits callers that administer the resource named by the
// path parameter param.
func RequireAdmin(access *service.AccessService, res service.Resource, param string) httpx.Middleware {
	return requireLevel(access, res, param, service.LevelAdmin)
}

// requireLevel answers 404 for path values that are not ids without asking
// the store.
func requireLevel(access *service.AccessService, res service.Resource, param string, level service.Level) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return httpx.RequireSubject(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.PathValue(param)
			if !idx.Valid(id) {
				writeError(w, r, notFound(res))
				return
			}

			if err := access.Require(r.Context(), res, id, subject(r), level); err != nil {
				writeError(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

func notFound(res service.Resource) error {
	switch res {
	case service.RoomResource:
		return service.ErrRoomNotFound
	case service.ItemResource:
		return service.ErrItemNotFound
	default:
		return service.ErrHomeNotFound
	}
}
