package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	invhttp "github.com/homeledger/inventory/internal/inventory/http"
	"github.com/homeledger/inventory/internal/inventory/service"
	"github.com/homeledger/inventory/internal/inventory/store/drivers/sqlite"
	"github.com/homeledger/inventory/pkg/cryptox"
	"github.com/homeledger/inventory/pkg/httpx"
	"github.com/homeledger/inventory/pkg/invsdk"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "inventory-http")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	// Every test client shares one address.
	httpx.StrictLimit = httpx.RateLimitConfig{RequestsPerWindow: 10000, Window: time.Minute, Burst: 10000}

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type harness struct {
	srv    *httptest.Server
	client *invsdk.Client
	clock  *clock
	store  *sqlite.Store
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "inventory.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	clk := &clock{t: time.Now().UTC().Truncate(time.Second)}
	sessions, err := service.NewSessionService(service.SessionOptions{
		Secret: []byte(strings.Repeat("s", 32)),
		Issuer: "inventory-test",
		Now:    clk.Now,
	})
	require.NoError(t, err)

	access := &service.AccessService{Store: st}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := invhttp.NewRouter("test", st, logger)
	router.SecureCookies = false
	router.SessionService = sessions
	router.AccessService = access
	router.UserService = &service.UserService{Store: st}
	router.HomeService = &service.HomeService{Store: st}
	router.InviteService = &service.InviteService{Store: st, Access: access, Now: clk.Now}
	router.RoomService = &service.RoomService{Store: st, Access: access}
	router.ItemService = &service.ItemService{Store: st, Access: access}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &harness{srv: srv, client: invsdk.NewClient(srv.URL), clock: clk, store: st}
}

func (h *harness) register(t *testing.T, email string) *invsdk.Session {
	t.Helper()
	sess, err := h.client.Register(context.Background(), invsdk.RegisterRequest{
		Email:    email,
		Name:     strings.Split(email, "@")[0],
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	return sess
}

// get issues a raw request so tests can inspect headers and bodies the SDK
// hides.
func (h *harness) get(t *testing.T, path, token string) (*http.Response, invsdk.APIError) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, h.srv.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := h.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var apiErr invsdk.APIError
	if resp.StatusCode >= 400 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&apiErr))
	}
	return resp, apiErr
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.ErrorIs(t, err, invsdk.NewAPIError(status, code, ""))
}

func TestRegisterAndLogin(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	alice := h.register(t, "Alice@Example.com")
	require.Equal(t, "alice@example.com", alice.User().Email)

	me, err := alice.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, alice.User().ID, me.ID)
	require.Empty(t, me.Homes)

	_, err = h.client.Register(ctx, invsdk.RegisterRequest{Email: "alice@example.com", Name: "again", Password: "another password"})
	requireAPIError(t, err, http.StatusConflict, invsdk.ErrorCodeConflict)

	_, err = h.client.Login(ctx, invsdk.LoginRequest{Email: "alice@example.com", Password: "wrong password"})
	require.ErrorIs(t, err, invsdk.ErrInvalidCredentials)

	again, err := h.client.Login(ctx, invsdk.LoginRequest{Email: "ALICE@example.com", Password: "correct horse battery"})
	require.NoError(t, err)
	require.Equal(t, alice.User().ID, again.User().ID)
}

func TestRegisterValidation(t *testing.T) {
	h := newHarness(t)

	_, err := h.client.Register(context.Background(), invsdk.RegisterRequest{Email: "not-an-email", Name: "x", Password: "short"})
	var apiErr *invsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, invsdk.ErrorCodeValidation, apiErr.Code)

	fields := map[string]string{}
	for _, f := range apiErr.Fields {
		fields[f.Field] = f.Rule
	}
	require.Equal(t, "email", fields["email"])
	require.Equal(t, "min", fields["password"])
}

func TestSessionRejection(t *testing.T) {
	h := newHarness(t)
	alice := h.register(t, "alice@example.com")

	resp, apiErr := h.get(t, "/v1/users/me", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, invsdk.ErrorCodeUnauthenticated, apiErr.Code)

	resp, apiErr = h.get(t, "/v1/users/me", "not.a.token")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, invsdk.ErrorCodeInvalidToken, apiErr.Code)
	require.Contains(t, apiErr.Description, "invalid")

	h.clock.Advance(service.DefaultSessionTTL + time.Second)
	resp, apiErr = h.get(t, "/v1/users/me", alice.Token())
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, invsdk.ErrorCodeInvalidToken, apiErr.Code)
	require.Contains(t, apiErr.Description, "expired")
}

func TestStaleCookieFallsBackToBearer(t *testing.T) {
	h := newHarness(t)
	alice := h.register(t, "alice@example.com")

	do := func(cookie, bearer string) *http.Response {
		req, err := http.NewRequest(http.MethodGet, h.srv.URL+"/v1/users/me", nil)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: invsdk.SessionCookie, Value: cookie})
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
		resp, err := h.srv.Client().Do(req)
		require.NoError(t, err)
		_ = resp.Body.Close()
		return resp
	}

	require.Equal(t, http.StatusOK, do("not.a.token", alice.Token()).StatusCode)
	require.Equal(t, http.StatusOK, do(alice.Token(), "not.a.token").StatusCode)
	require.Equal(t, http.StatusUnauthorized, do("not.a.token", "").StatusCode)
}

func TestMalformedPathIDs(t *testing.T) {
	h := newHarness(t)
	alice := h.register(t, "alice@example.com")

	for _, path := range []string{
		"/v1/homes/not-an-id",
		"/v1/homes/not-an-id/rooms",
		"/v1/rooms/not-an-id",
	} {
		resp, apiErr := h.get(t, path, alice.Token())
		require.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		require.Equal(t, invsdk.ErrorCodeNotFound, apiErr.Code, path)
	}

	resp, apiErr := h.get(t, "/v1/homes/not-an-id", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, invsdk.ErrorCodeUnauthenticated, apiErr.Code)
}

func TestSessionRefresh(t *testing.T) {
	h := newHarness(t)
	alice := h.register(t, "alice@example.com")
	original := alice.Token()

	// Well inside the TTL nothing changes.
	h.clock.Advance(24 * time.Hour)
	resp, _ := h.get(t, "/v1/users/me", original)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, resp.Header.Get(invsdk.RefreshedHeader))

	// Within the threshold of expiry the token is renewed.
	h.clock.Advance(4 * 24 * time.Hour)
	resp, _ = h.get(t, "/v1/users/me", original)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "true", resp.Header.Get(invsdk.RefreshedHeader))

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == invsdk.SessionCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	require.Equal(t, int(service.DefaultSessionTTL.Seconds()), cookie.MaxAge)
	require.NotEqual(t, original, cookie.Value)

	// The SDK follows the renewal on its own.
	_, err := alice.Me(context.Background())
	require.NoError(t, err)
	require.NotEqual(t, original, alice.Token())

	h.clock.Advance(4 * 24 * time.Hour)
	_, err = alice.Me(context.Background())
	require.NoError(t, err, "renewed token outlives the original")
}

func TestHomeInviteFlow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.register(t, "alice@example.com")
	bob := h.register(t, "bob@example.com")
	carol := h.register(t, "carol@example.com")

	home, err := alice.CreateHome(ctx, invsdk.CreateHomeRequest{Name: "Main House"})
	require.NoError(t, err)

	_, err = bob.GetHome(ctx, home.ID)
	require.ErrorIs(t, err, invsdk.ErrForbidden)

	inv, err := alice.CreateInvite(ctx, home.ID, invsdk.CreateInviteRequest{})
	require.NoError(t, err)
	require.Regexp(t, `^[A-Z0-9]{4}-[A-Z0-9]{4}$`, inv.Code)
	require.Nil(t, inv.ExpiresAt)

	_, err = bob.CreateInvite(ctx, home.ID, invsdk.CreateInviteRequest{})
	require.ErrorIs(t, err, invsdk.ErrForbidden)

	joined, err := bob.AcceptInvite(ctx, " "+strings.ToLower(inv.Code)+" ")
	require.NoError(t, err)
	require.Equal(t, home.ID, joined.ID)

	got, err := bob.GetHome(ctx, home.ID)
	require.NoError(t, err)
	require.Equal(t, "Main House", got.Name)

	// bob is a member but not an admin
	_, err = bob.ListInvites(ctx, home.ID)
	require.ErrorIs(t, err, invsdk.ErrForbidden)

	_, err = carol.AcceptInvite(ctx, inv.Code)
	requireAPIError(t, err, http.StatusGone, invsdk.ErrorCodeGone)

	_, err = carol.AcceptInvite(ctx, "nope")
	requireAPIError(t, err, http.StatusBadRequest, invsdk.ErrorCodeInvalidRequest)

	_, err = carol.AcceptInvite(ctx, "ZZZZ-ZZZZ")
	requireAPIError(t, err, http.StatusNotFound, invsdk.ErrorCodeNotFound)

	members, err := alice.ListHomeMembers(ctx, home.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	require.True(t, members[0].Admin)
	require.Equal(t, alice.User().ID, members[0].UserID)

	invites, err := alice.ListInvites(ctx, home.ID)
	require.NoError(t, err)
	require.Len(t, invites, 1)
	require.Equal(t, bob.User().ID, invites[0].UsedBy)

	require.NoError(t, alice.RemoveHomeMember(ctx, home.ID, bob.User().ID))
	_, err = bob.GetHome(ctx, home.ID)
	require.ErrorIs(t, err, invsdk.ErrForbidden)
}

func TestReusableAndExpiringInvites(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.register(t, "alice@example.com")
	bob := h.register(t, "bob@example.com")
	carol := h.register(t, "carol@example.com")

	home, err := alice.CreateHome(ctx, invsdk.CreateHomeRequest{Name: "Cabin"})
	require.NoError(t, err)

	reusable, err := alice.CreateInvite(ctx, home.ID, invsdk.CreateInviteRequest{Reusable: true})
	require.NoError(t, err)
	_, err = bob.AcceptInvite(ctx, reusable.Code)
	require.NoError(t, err)
	_, err = carol.AcceptInvite(ctx, reusable.Code)
	require.NoError(t, err)

	_, err = carol.AcceptInvite(ctx, reusable.Code)
	requireAPIError(t, err, http.StatusConflict, invsdk.ErrorCodeConflict)

	dave := h.register(t, "dave@example.com")
	expiring, err := alice.CreateInvite(ctx, home.ID, invsdk.CreateInviteRequest{TTLHours: 1})
	require.NoError(t, err)
	require.NotNil(t, expiring.ExpiresAt)

	h.clock.Advance(2 * time.Hour)
	_, err = dave.AcceptInvite(ctx, expiring.Code)
	requireAPIError(t, err, http.StatusGone, invsdk.ErrorCodeGone)

	require.NoError(t, alice.DeleteInvite(ctx, home.ID, expiring.ID))
	err = alice.DeleteInvite(ctx, home.ID, expiring.ID)
	require.ErrorIs(t, err, invsdk.NewAPIError(http.StatusNotFound, invsdk.ErrorCodeNotFound, ""))
}

func TestRoomsAndItems(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.register(t, "alice@example.com")
	bob := h.register(t, "bob@example.com")

	home, err := alice.CreateHome(ctx, invsdk.CreateHomeRequest{Name: "Main House"})
	require.NoError(t, err)
	inv, err := alice.CreateInvite(ctx, home.ID, invsdk.CreateInviteRequest{})
	require.NoError(t, err)
	_, err = bob.AcceptInvite(ctx, inv.Code)
	require.NoError(t, err)

	kitchen, err := alice.CreateRoom(ctx, home.ID, "Kitchen")
	require.NoError(t, err)

	rooms, err := bob.ListRooms(ctx, home.ID)
	require.NoError(t, err)
	require.Empty(t, rooms, "bob is not in any room yet")

	_, err = bob.GetRoom(ctx, kitchen.ID)
	require.ErrorIs(t, err, invsdk.ErrForbidden)

	require.NoError(t, alice.AddRoomMember(ctx, kitchen.ID, bob.User().ID))
	rooms, err = bob.ListRooms(ctx, home.ID)
	require.NoError(t, err)
	require.Len(t, rooms, 1)

	perms, err := bob.RoomPermissions(ctx, kitchen.ID)
	require.NoError(t, err)
	require.False(t, perms.Admin)
	perms, err = alice.RoomPermissions(ctx, kitchen.ID)
	require.NoError(t, err)
	require.True(t, perms.Admin)

	_, err = bob.RenameRoom(ctx, kitchen.ID, "Galley")
	require.ErrorIs(t, err, invsdk.ErrForbidden)

	price := int64(129900)
	fridge, err := alice.CreateItem(ctx, home.ID, invsdk.ItemRequest{
		Name:       "Fridge",
		PriceCents: &price,
		RoomIDs:    []string{kitchen.ID},
	})
	require.NoError(t, err)
	require.Equal(t, []string{kitchen.ID}, fridge.RoomIDs)

	_, err = bob.GetItem(ctx, fridge.ID)
	require.ErrorIs(t, err, invsdk.ErrForbidden)

	err = alice.DeleteRoom(ctx, kitchen.ID)
	requireAPIError(t, err, http.StatusConflict, invsdk.ErrorCodeConflict)

	_, err = alice.UpdateItem(ctx, fridge.ID, invsdk.ItemRequest{
		Name:       "Fridge",
		PriceCents: &price,
		Public:     true,
	})
	require.NoError(t, err)

	got, err := bob.GetItem(ctx, fridge.ID)
	require.NoError(t, err)
	require.True(t, got.Public)
	require.Empty(t, got.RoomIDs)

	listed, err := bob.ListHomeItems(ctx, home.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	mine, err := bob.ListMyItems(ctx)
	require.NoError(t, err)
	require.Empty(t, mine)

	err = bob.DeleteItem(ctx, fridge.ID)
	require.ErrorIs(t, err, invsdk.ErrForbidden)

	require.NoError(t, alice.DeleteRoom(ctx, kitchen.ID))
	require.NoError(t, alice.DeleteItem(ctx, fridge.ID))
}

func TestAccountChanges(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.register(t, "alice@example.com")
	h.register(t, "bob@example.com")

	u, err := alice.UpdateName(ctx, "Alice B")
	require.NoError(t, err)
	require.Equal(t, "Alice B", u.Name)

	_, err = alice.UpdateEmail(ctx, "bob@example.com")
	requireAPIError(t, err, http.StatusConflict, invsdk.ErrorCodeConflict)

	err = alice.ChangePassword(ctx, "wrong", "a brand new password")
	require.ErrorIs(t, err, invsdk.ErrInvalidCredentials)
	require.NoError(t, alice.ChangePassword(ctx, "correct horse battery", "a brand new password"))

	_, err = h.client.Login(ctx, invsdk.LoginRequest{Email: "alice@example.com", Password: "a brand new password"})
	require.NoError(t, err)

	require.NoError(t, alice.DeleteAccount(ctx, "a brand new password"))
	_, err = h.client.Login(ctx, invsdk.LoginRequest{Email: "alice@example.com", Password: "a brand new password"})
	require.ErrorIs(t, err, invsdk.ErrInvalidCredentials)
}

func TestHealth(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	live, err := h.client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := h.client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Checks.Database)

	require.NoError(t, h.store.Close())
	resp, _ := h.get(t, "/readyz", "")
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
