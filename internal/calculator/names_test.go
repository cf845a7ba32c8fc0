// internal/calculator/names_test.go
package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JonathanMaverick/split-chain-backend/internal/models"
)

type mapResolver map[string]string

func (m mapResolver) Nickname(walletAddress string) (string, bool) {
	nickname, ok := m[walletAddress]
	return nickname, ok
}

func TestAllParticipants(t *testing.T) {
	bill := testBill()
	resolver := mapResolver{walletA: "Alice"}

	participants := AllParticipants(bill, walletB, resolver)

	// Current user first, then first-appearance order; duplicates collapsed.
	assert.Len(t, participants, 2)

	assert.Equal(t, walletB, participants[0].ParticipantID)
	assert.Equal(t, IdentitySelf, participants[0].Kind)
	assert.Equal(t, "You", participants[0].DisplayName)
	assert.Equal(t, StatusPending, participants[0].Status)

	assert.Equal(t, walletA, participants[1].ParticipantID)
	assert.Equal(t, IdentityFriend, participants[1].Kind)
	assert.Equal(t, "Alice", participants[1].DisplayName)
}

func TestAllParticipantsUnknownFallback(t *testing.T) {
	bill := testBill()

	participants := AllParticipants(bill, walletA, nil)

	assert.Len(t, participants, 2)
	assert.Equal(t, IdentitySelf, participants[0].Kind)
	assert.Equal(t, IdentityUnknown, participants[1].Kind)
	assert.Equal(t, "Anonymous", participants[1].DisplayName)
}

func TestAllParticipantsIncludesViewerWithoutClaims(t *testing.T) {
	// A viewer who is not assigned to anything still appears in the survey,
	// reported as not involved.
	bill := testBill()

	participants := AllParticipants(bill, walletC, mapResolver{})

	assert.Equal(t, walletC, participants[0].ParticipantID)
	assert.Equal(t, StatusNotInvolved, participants[0].Status)
}

func TestAllParticipantsSkipsEmptyItems(t *testing.T) {
	bill := &models.Bill{
		CreatorID: walletOwner,
		Items: []models.BillItem{
			{Price: 10}, // no participants assigned
		},
	}

	participants := AllParticipants(bill, walletOwner, nil)

	assert.Len(t, participants, 1)
	assert.Equal(t, walletOwner, participants[0].ParticipantID)
	assert.Equal(t, StatusPaid, participants[0].Status)
}

func TestResolveIdentityOwner(t *testing.T) {
	bill := testBill()

	resolved := ResolveIdentity(walletOwner, walletA, mapResolver{walletOwner: "Maverick"}, bill)

	assert.Equal(t, IdentityFriend, resolved.Kind)
	assert.Equal(t, "Maverick", resolved.DisplayName)
	assert.Equal(t, StatusPaid, resolved.Status)
}
