package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/homeledger/inventory/internal/inventory/service"
	"github.com/homeledger/inventory/internal/inventory/store"
	"github.com/homeledger/inventory/pkg/httpx"
	"github.com/homeledger/inventory/pkg/slogx"

	_ "github.com/homeledger/inventory/api/inventory" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// SecureCookies marks the session cookie Secure. Off only for local
	// development over plain HTTP.
	SecureCookies bool

	SessionService *service.SessionService
	AccessService  *service.AccessService
	UserService    *service.UserService
	HomeService    *service.HomeService
	InviteService  *service.InviteService
	RoomService    *service.RoomService
	ItemService    *service.ItemService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		buildVersion:  buildVersion,
		startTime:     time.Now(),
		logger:        logger,
		store:         st,
		SecureCookies: true,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerHomes()
	r.registerInvites()
	r.registerRooms()
	r.registerItems()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpx.Chain(httpSwagger.Handler(),
		httpx.RateLimitByIP(httpx.PublicLimit),
	))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			HomeLedger Inventory API
//	@version		0.1.0
//	@description	Shared household inventory: homes, rooms and items with per-resource memberships.
//	@description
//	@description	Sessions are HS256 tokens carried in the "token" cookie or a bearer header.
//	@description	Tokens close to expiry are renewed on any authenticated call; the response then carries X-Token-Refreshed.
//
//	@BasePath		/
//	@schemes		http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						token
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authed wraps h with the session check and a per-user rate limit, followed
// by any access checks.
func (r *Router) authed(h http.HandlerFunc, limit httpx.RateLimitConfig, checks ...httpx.Middleware) http.Handler {
	mws := append([]httpx.Middleware{
		SessionMiddleware(r.SessionService, r.SecureCookies),
		httpx.RateLimitBySubject(limit),
	}, checks...)
	return httpx.Chain(h, mws...)
}

func (r *Router) homeMember() httpx.Middleware {
	return RequireMember(r.AccessService, service.HomeResource, "homeId")
}

func (r *Router) homeAdmin() httpx.Middleware {
	return RequireAdmin(r.AccessService, service.HomeResource, "homeId")
}

func (r *Router) roomMember() httpx.Middleware {
	return RequireMember(r.AccessService, service.RoomResource, "roomId")
}

func (r *Router) roomAdmin() httpx.Middleware {
	return RequireAdmin(r.AccessService, service.RoomResource, "roomId")
}

func (r *Router) itemAdmin() httpx.Middleware {
	return RequireAdmin(r.AccessService, service.ItemResource, "itemId")
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		Users:         r.UserService,
		Sessions:      r.SessionService,
		SecureCookies: r.SecureCookies,
	}

	// Credential checks are limited per address and per email.
	r.Mux.Handle("POST /v1/auth/register", httpx.Chain(http.HandlerFunc(h.Register),
		httpx.RateLimitByIP(httpx.StrictLimit),
	))
	r.Mux.Handle("POST /v1/auth/login", httpx.Chain(http.HandlerFunc(h.Login),
		httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
	))
	r.Mux.Handle("POST /v1/auth/logout", httpx.Chain(http.HandlerFunc(h.Logout),
		httpx.RateLimitByIP(httpx.ModerateLimit),
	))
}

func (r *Router) registerUsers() {
	h := &UserHandler{Users: r.UserService, SecureCookies: r.SecureCookies}

	r.Mux.Handle("GET /v1/users/me", r.authed(h.Me, httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/users/me/name", r.authed(h.UpdateName, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/users/me/email", r.authed(h.UpdateEmail, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/users/me/password", r.authed(h.ChangePassword, httpx.StrictLimit))
	r.Mux.Handle("DELETE /v1/users/me", r.authed(h.DeleteAccount, httpx.StrictLimit))
}

func (r *Router) registerHomes() {
	h := &HomeHandler{Homes: r.HomeService}

	r.Mux.Handle("POST /v1/homes", r.authed(h.Create, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/homes", r.authed(h.List, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/homes/{homeId}", r.authed(h.Get, httpx.LenientLimit, r.homeMember()))
	r.Mux.Handle("PATCH /v1/homes/{homeId}", r.authed(h.Update, httpx.ModerateLimit, r.homeAdmin()))
	r.Mux.Handle("DELETE /v1/homes/{homeId}", r.authed(h.Delete, httpx.ModerateLimit, r.homeAdmin()))
	r.Mux.Handle("GET /v1/homes/{homeId}/members", r.authed(h.ListMembers, httpx.LenientLimit, r.homeMember()))
	r.Mux.Handle("DELETE /v1/homes/{homeId}/members/{userId}", r.authed(h.RemoveMember, httpx.ModerateLimit, r.homeAdmin()))
}

func (r *Router) registerInvites() {
	h := &InviteHandler{Invites: r.InviteService}

	r.Mux.Handle("POST /v1/homes/{homeId}/invites", r.authed(h.Create, httpx.ModerateLimit, r.homeAdmin()))
	r.Mux.Handle("GET /v1/homes/{homeId}/invites", r.authed(h.List, httpx.LenientLimit, r.homeAdmin()))
	r.Mux.Handle("DELETE /v1/homes/{homeId}/invites/{inviteId}", r.authed(h.Delete, httpx.ModerateLimit, r.homeAdmin()))

	// Redemption guesses codes, so it gets the strict limit.
	r.Mux.Handle("POST /v1/invites/accept", r.authed(h.Accept, httpx.StrictLimit))
}

func (r *Router) registerRooms() {
	h := &RoomHandler{Rooms: r.RoomService}

	r.Mux.Handle("POST /v1/homes/{homeId}/rooms", r.authed(h.Create, httpx.ModerateLimit, r.homeMember()))
	r.Mux.Handle("GET /v1/homes/{homeId}/rooms", r.authed(h.List, httpx.LenientLimit, r.homeMember()))
	r.Mux.Handle("GET /v1/rooms/{roomId}", r.authed(h.Get, httpx.LenientLimit, r.roomMember()))
	r.Mux.Handle("PATCH /v1/rooms/{roomId}", r.authed(h.Rename, httpx.ModerateLimit, r.roomAdmin()))
	r.Mux.Handle("DELETE /v1/rooms/{roomId}", r.authed(h.Delete, httpx.ModerateLimit, r.roomAdmin()))
	r.Mux.Handle("GET /v1/rooms/{roomId}/members", r.authed(h.ListMembers, httpx.LenientLimit, r.roomMember()))
	r.Mux.Handle("POST /v1/rooms/{roomId}/members", r.authed(h.AddMember, httpx.ModerateLimit, r.roomAdmin()))
	r.Mux.Handle("DELETE /v1/rooms/{roomId}/members/{userId}", r.authed(h.RemoveMember, httpx.ModerateLimit, r.roomAdmin()))
	r.Mux.Handle("GET /v1/rooms/{roomId}/permissions", r.authed(h.Permissions, httpx.LenientLimit))
}

func (r *Router) registerItems() {
	h := &ItemHandler{Items: r.ItemService}

	r.Mux.Handle("GET /v1/items", r.authed(h.ListMine, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/homes/{homeId}/items", r.authed(h.ListInHome, httpx.LenientLimit, r.homeMember()))
	r.Mux.Handle("POST /v1/homes/{homeId}/items", r.authed(h.Create, httpx.ModerateLimit, r.homeMember()))

	// Reads check access in the service since public items widen it.
	r.Mux.Handle("GET /v1/items/{itemId}", r.authed(h.Get, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/items/{itemId}", r.authed(h.Update, httpx.ModerateLimit, r.itemAdmin()))
	r.Mux.Handle("DELETE /v1/items/{itemId}", r.authed(h.Delete, httpx.ModerateLimit, r.itemAdmin()))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
		httpx.RateLimitByIP(httpx.PublicLimit),
	))
	r.Mux.Handle("GET /readyz", httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
		httpx.RateLimitByIP(httpx.PublicLimit),
	))
}
