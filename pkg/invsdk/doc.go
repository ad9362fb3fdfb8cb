/*
Package invsdk is the Go client for the home inventory API, and holds the
wire types and error body shared with the server.

Create a Client for public endpoints, then register or log in to get a
Session:

	client := invsdk.NewClient("https://inventory.example.com")

	session, err := client.Login(ctx, invsdk.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})

	home, err := session.CreateHome(ctx, invsdk.CreateHomeRequest{Name: "Beach House"})
	invite, err := session.CreateInvite(ctx, home.ID, invsdk.CreateInviteRequest{TTLHours: 48})

A second user joins with the code:

	joined, err := bob.AcceptInvite(ctx, invite.Code)

# Sliding sessions

Session tokens last seven days. When the server sees a token close to
expiry it answers with a fresh one in the "token" cookie and sets
X-Token-Refreshed. Session picks the new token up automatically, so a client
that keeps making requests never has to log in again.

# Errors

Failed calls return *APIError. Compare against the predefined values with
errors.Is, which matches on status and code:

	if errors.Is(err, invsdk.ErrForbidden) {
		// not a member
	}

Sessions are safe for concurrent use.
*/
package invsdk
