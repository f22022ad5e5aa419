package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var umaAddressPattern = regexp.MustCompile(`^\$?[a-zA-Z0-9._$+-]+@[a-zA-Z0-9.-]+(:[0-9]+)?$`)

// Uma maps a username to a wallet. A user can hold several addresses but
// only one is the default receiving address.
type Uma struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Default   bool      `json:"default"`
	UserID    uuid.UUID `json:"user_id"`
	WalletID  uuid.UUID `json:"wallet_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Address renders the full UMA address for the given VASP domain.
func (u *Uma) Address(vaspDomain string) string {
	return fmt.Sprintf("$%s@%s", u.Username, vaspDomain)
}

// IsValidUmaAddress reports whether s looks like $username@domain.
func IsValidUmaAddress(s string) bool {
	return umaAddressPattern.MatchString(s)
}

// UsernameFromUma extracts the bare username from an address like
// $bob@vasp.example. The leading $ is optional.
func UsernameFromUma(address string) (string, error) {
	if !IsValidUmaAddress(address) {
		return "", fmt.Errorf("invalid uma address: %s", address)
	}
	local := strings.SplitN(address, "@", 2)[0]
	return strings.TrimPrefix(local, "$"), nil
}

// DomainFromUma extracts the VASP domain from an UMA address.
func DomainFromUma(address string) (string, error) {
	if !IsValidUmaAddress(address) {
		return "", fmt.Errorf("invalid uma address: %s", address)
	}
	return strings.SplitN(address, "@", 2)[1], nil
}
