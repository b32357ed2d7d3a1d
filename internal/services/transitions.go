package services

import (
	"github.com/linkup-dev/linkup/internal/apperr"
	"github.com/linkup-dev/linkup/internal/models"
)

// sendAction is what Send must do after inspecting the existing row for a
// pair, when the decision did not already fail.
type sendAction int

const (
	sendCreate sendAction = iota
	sendReplaceRejected
)

// evaluateSend applies the pair state machine to an existing row. A nil
// existing row means the pair is untouched and a fresh request may be
// created.
func evaluateSend(existing *models.FriendRequest, requesterID uint) (sendAction, error) {
	if existing == nil {
		return sendCreate, nil
	}

	switch existing.Status {
	case models.FriendRequestAccepted:
		return 0, apperr.New(apperr.KindConflict, "You are already friends with this user")
	case models.FriendRequestPending:
		if existing.RequesterID == requesterID {
			return 0, apperr.New(apperr.KindConflict, "Friend request already sent and is pending")
		}
		return 0, apperr.New(apperr.KindConflict, "This user has already sent you a friend request; respond to it instead")
	case models.FriendRequestRejected:
		// Re-send after rejection replaces the old row.
		return sendReplaceRejected, nil
	default:
		return 0, apperr.New(apperr.KindInternal, "Unknown friend request status")
	}
}

// respondGate checks who may transition a request and from which state.
// Only the recipient responds, and only while the row is still pending.
func respondGate(request *models.FriendRequest, actingUserID uint) error {
	if request.RecipientID != actingUserID {
		return apperr.New(apperr.KindForbidden, "You are not authorized to respond to this request")
	}

	if request.Status != models.FriendRequestPending {
		return apperr.New(apperr.KindInvalidOperation, "Request is not pending")
	}

	return nil
}

// partnerIDs collects the other-party id of each request, deduplicated.
func partnerIDs(requests []models.FriendRequest, userID uint) []uint {
	seen := make(map[uint]bool, len(requests))
	ids := make([]uint, 0, len(requests))

	for _, request := range requests {
		other := request.OtherParty(userID)
		if !seen[other] {
			seen[other] = true
			ids = append(ids, other)
		}
	}

	return ids
}

// exclusionIDs is the suggestion exclusion set: the user plus every partner
// of an accepted or pending pair.
func exclusionIDs(requests []models.FriendRequest, userID uint) []uint {
	ids := []uint{userID}
	seen := map[uint]bool{userID: true}

	for _, request := range requests {
		if request.Status != models.FriendRequestAccepted && request.Status != models.FriendRequestPending {
			continue
		}
		other := request.OtherParty(userID)
		if !seen[other] {
			seen[other] = true
			ids = append(ids, other)
		}
	}

	return ids
}
