package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidUmaAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{"with dollar prefix", "$bob@vasp.example", true},
		{"without dollar prefix", "bob@vasp.example", true},
		{"with port", "$bob@localhost:8081", true},
		{"dots in username", "$bob.smith@vasp.example", true},
		{"missing domain", "$bob", false},
		{"missing username", "@vasp.example", false},
		{"empty", "", false},
		{"spaces", "$bob smith@vasp.example", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidUmaAddress(tt.address))
		})
	}
}

func TestUsernameFromUma(t *testing.T) {
	username, err := UsernameFromUma("$alice@vasp.example")
	require.NoError(t, err)
	assert.Equal(t, "alice", username)

	username, err = UsernameFromUma("alice@vasp.example")
	require.NoError(t, err)
	assert.Equal(t, "alice", username)

	_, err = UsernameFromUma("not-an-address")
	assert.Error(t, err)
}

func TestDomainFromUma(t *testing.T) {
	domain, err := DomainFromUma("$alice@vasp.example")
	require.NoError(t, err)
	assert.Equal(t, "vasp.example", domain)

	domain, err = DomainFromUma("$alice@localhost:8081")
	require.NoError(t, err)
	assert.Equal(t, "localhost:8081", domain)
}

func TestUma_Address(t *testing.T) {
	u := &Uma{Username: "alice"}
	assert.Equal(t, "$alice@vasp.example", u.Address("vasp.example"))
}

func TestQuote_IsExpired(t *testing.T) {
	now := time.Now()
	q := &Quote{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, q.IsExpired(now))
	assert.True(t, q.IsExpired(now.Add(2*time.Minute)))
}

func TestQuote_IsSettled(t *testing.T) {
	q := &Quote{}
	assert.False(t, q.IsSettled())

	settled := time.Now()
	q.SettledAt = &settled
	assert.True(t, q.IsSettled())
}

func TestTransaction_IsCredit(t *testing.T) {
	credit := &Transaction{AmountInLowestDenom: 500}
	debit := &Transaction{AmountInLowestDenom: -500}
	assert.True(t, credit.IsCredit())
	assert.False(t, debit.IsCredit())
}

func TestWalletColors(t *testing.T) {
	assert.Len(t, WalletColors, 10)
	assert.Equal(t, WalletColorOne, WalletColors[0])
	assert.Equal(t, WalletColorTen, WalletColors[9])
}
