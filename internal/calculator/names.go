// internal/calculator/names.go
package calculator

import (
	"github.com/JonathanMaverick/split-chain-backend/internal/models"
)

// IdentityKind tags how a wallet address was resolved for display.
type IdentityKind string

const (
	IdentitySelf    IdentityKind = "self"
	IdentityFriend  IdentityKind = "friend"
	IdentityUnknown IdentityKind = "unknown"
)

// ResolvedParticipant is one distinct wallet identity on a bill with its
// display label.
type ResolvedParticipant struct {
	ParticipantID string       `json:"participant_id"`
	Kind          IdentityKind `json:"kind"`
	DisplayName   string       `json:"display_name"`
	Status        Status       `json:"status"`
}

// NameResolver looks up a nickname for a wallet address in the current
// user's friend directory.
type NameResolver interface {
	Nickname(walletAddress string) (string, bool)
}

// Display labels for identities that do not resolve through the friend
// directory.
const (
	selfDisplayName    = "You"
	unknownDisplayName = "Anonymous"
)

// AllParticipants returns the union of currentUserID and every distinct
// participant across all items, in order of first appearance with the
// current user first. Each identity is resolved to a display label: the
// current user is "You", friends resolve to their nickname, anyone else is
// anonymous. Items with no participants contribute nothing to the survey.
func AllParticipants(bill *models.Bill, currentUserID string, resolver NameResolver) []ResolvedParticipant {
	ids := make([]string, 0, len(bill.Items)+1)
	seen := make(map[string]bool)

	if currentUserID != "" {
		ids = append(ids, currentUserID)
		seen[currentUserID] = true
	}

	for i := range bill.Items {
		for j := range bill.Items[i].Participants {
			id := bill.Items[i].Participants[j].ParticipantID
			if id == "" || seen[id] {
				continue
			}
			ids = append(ids, id)
			seen[id] = true
		}
	}

	participants := make([]ResolvedParticipant, 0, len(ids))
	for _, id := range ids {
		participants = append(participants, ResolveIdentity(id, currentUserID, resolver, bill))
	}
	return participants
}

// ResolveIdentity classifies one wallet address relative to the current
// user and the friend directory. The tagged result replaces sentinel
// string comparisons at call sites.
func ResolveIdentity(participantID, currentUserID string, resolver NameResolver, bill *models.Bill) ResolvedParticipant {
	resolved := ResolvedParticipant{
		ParticipantID: participantID,
		Status:        PaymentStatus(bill, participantID),
	}

	switch {
	case participantID == currentUserID:
		resolved.Kind = IdentitySelf
		resolved.DisplayName = selfDisplayName
	default:
		if resolver != nil {
			if nickname, ok := resolver.Nickname(participantID); ok {
				resolved.Kind = IdentityFriend
				resolved.DisplayName = nickname
				return resolved
			}
		}
		resolved.Kind = IdentityUnknown
		resolved.DisplayName = unknownDisplayName
	}
	return resolved
}
