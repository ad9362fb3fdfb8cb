package service

import (
	"regexp"
	"strings"

	"github.com/homeledger/inventory/pkg/cryptox"
)

// InviteCodeAlphabet is the character set of invite codes.
const InviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// MaxCodeAttempts bounds how many fresh codes CreateInvite tries before
// giving up on collisions.
const MaxCodeAttempts = 5

const inviteCodeGroup = 4

var inviteCodePattern = regexp.MustCompile(`^[A-Z0-9]{4}-[A-Z0-9]{4}$`)

// GenerateInviteCode returns a random XXXX-XXXX code.
func GenerateInviteCode() (string, error) {
	raw, err := cryptox.RandomString(InviteCodeAlphabet, 2*inviteCodeGroup)
	if err != nil {
		return "", err
	}
	return raw[:inviteCodeGroup] + "-" + raw[inviteCodeGroup:], nil
}

// NormalizeInviteCode trims and upper-cases user input.
func NormalizeInviteCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidInviteCode reports whether code has the XXXX-XXXX shape. It does not
// normalize.
func ValidInviteCode(code string) bool {
	return inviteCodePattern.MatchString(code)
}
