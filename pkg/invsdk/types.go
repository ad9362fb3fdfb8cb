package invsdk

import "time"

// ============================================================================
// Auth and users
// ============================================================================

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Name     string `json:"name" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register and login. The token is also set as
// the session cookie.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileResponse is the current user with the homes they belong to.
type ProfileResponse struct {
	UserResponse
	Homes []HomeResponse `json:"homes"`
}

type UpdateNameRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateEmailRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=128"`
}

type DeleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}

// ============================================================================
// Homes and invites
// ============================================================================

type CreateHomeRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"max=200"`
}

// UpdateHomeRequest changes the fields that are present.
type UpdateHomeRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=200"`
}

type HomeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MemberResponse struct {
	UserID   string    `json:"user_id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Admin    bool      `json:"admin"`
	JoinedAt time.Time `json:"joined_at"`
}

type CreateInviteRequest struct {
	// TTLHours of zero uses the server default.
	TTLHours int  `json:"ttl_hours,omitempty" validate:"gte=0,lte=8760"`
	Reusable bool `json:"reusable,omitempty"`
}

type InviteResponse struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	HomeID    string     `json:"home_id"`
	CreatedBy string     `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Reusable  bool       `json:"reusable"`
	UsedBy    string     `json:"used_by,omitempty"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
}

type AcceptInviteRequest struct {
	Code string `json:"code" validate:"required,max=32"`
}

// ============================================================================
// Rooms
// ============================================================================

type RoomRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type RoomResponse struct {
	ID        string    `json:"id"`
	HomeID    string    `json:"home_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AddRoomMemberRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type PermissionsResponse struct {
	Admin bool `json:"admin"`
}

// ============================================================================
// Items
// ============================================================================

type ItemRequest struct {
	Name          string     `json:"name" validate:"required,max=200"`
	Description   string     `json:"description,omitempty" validate:"max=2000"`
	PurchaseDate  *time.Time `json:"purchase_date,omitempty"`
	PriceCents    *int64     `json:"price_cents,omitempty" validate:"omitempty,gte=0"`
	WarrantyUntil *time.Time `json:"warranty_until,omitempty"`
	Public        bool       `json:"public,omitempty"`
	RoomIDs       []string   `json:"room_ids,omitempty" validate:"max=50"`
}

type ItemResponse struct {
	ID            string     `json:"id"`
	HomeID        string     `json:"home_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	PurchaseDate  *time.Time `json:"purchase_date,omitempty"`
	PriceCents    *int64     `json:"price_cents,omitempty"`
	WarrantyUntil *time.Time `json:"warranty_until,omitempty"`
	Public        bool       `json:"public"`
	RoomIDs       []string   `json:"room_ids"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
