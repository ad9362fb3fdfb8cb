package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/homeledger/inventory/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	var seen []string
	tag := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = append(seen, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, "handler")
	}), tag("first"), tag("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"first", "second", "handler"}, seen)
}

func TestRequireSubject(t *testing.T) {
	h := httpx.RequireSubject(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(httpx.WithSubject(req.Context(), "user-1"))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

type createThing struct {
	Name  string `json:"name" validate:"required,max=10"`
	Email string `json:"email" validate:"omitempty,email"`
}

func TestDecodeJSON(t *testing.T) {
	decode := func(body string) (createThing, error) {
		var v createThing
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		return v, httpx.DecodeJSON(req, &v)
	}

	t.Run("valid body", func(t *testing.T) {
		v, err := decode(`{"name":"lamp","email":"a@b.co"}`)
		require.NoError(t, err)
		require.Equal(t, "lamp", v.Name)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := decode(`{"name":`)
		require.ErrorIs(t, err, httpx.ErrInvalidBody)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := decode(`{"name":"lamp","colour":"red"}`)
		require.ErrorIs(t, err, httpx.ErrInvalidBody)
	})

	t.Run("validation uses json names", func(t *testing.T) {
		_, err := decode(`{"name":"","email":"nope"}`)
		var verr *httpx.ValidationError
		require.ErrorAs(t, err, &verr)
		require.ElementsMatch(t, []httpx.FieldError{
			{Field: "name", Rule: "required"},
			{Field: "email", Rule: "email"},
		}, verr.Fields)
	})
}
