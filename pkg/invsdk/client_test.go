package invsdk

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/homeledger/inventory/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestSessionAdoptsRefreshedToken(t *testing.T) {
	t.Parallel()

	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		if len(seen) == 1 {
			http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "renewed", MaxAge: 3600})
			w.Header().Set(RefreshedHeader, "true")
		}
		httpx.WriteJSON(w, http.StatusOK, []HomeResponse{{ID: "h1", Name: "Home"}})
	}))
	t.Cleanup(srv.Close)

	s := NewClient(srv.URL).NewSessionFromToken("original")

	homes, err := s.ListHomes(context.Background())
	require.NoError(t, err)
	require.Len(t, homes, 1)
	require.Equal(t, "renewed", s.Token())
	require.WithinDuration(t, time.Now().Add(time.Hour), s.ExpiresAt(), time.Minute)

	_, err = s.ListHomes(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Bearer original", "Bearer renewed"}, seen)
}

func TestErrorsAreTyped(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/homes/h1":
			ErrForbidden.WriteError(w)
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	t.Cleanup(srv.Close)

	s := NewClient(srv.URL).NewSessionFromToken("t")

	_, err := s.GetHome(context.Background(), "h1")
	require.ErrorIs(t, err, ErrForbidden)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)

	err = s.DeleteHome(context.Background(), "other")
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, ErrorCodeServerError, apiErr.Code)
}

func TestPathsAreEscaped(t *testing.T) {
	t.Parallel()
	require.Equal(t, "/v1/homes/a%2Fb/members/c", homePath("a/b", "members", "c"))
	require.Equal(t, "/v1/rooms/r1/permissions", roomPath("r1", "permissions"))
}
