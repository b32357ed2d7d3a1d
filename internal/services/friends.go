package services

import (
	"errors"

	"github.com/linkup-dev/linkup/internal/apperr"
	"github.com/linkup-dev/linkup/internal/logger"
	"github.com/linkup-dev/linkup/internal/models"
	"gorm.io/gorm"
)

// FriendService owns the friend-request rows: the state machine that moves
// a pair from strangers to pending to friends or rejected, and the read
// side derived from those rows.
type FriendService struct {
	db *gorm.DB
}

func NewFriendService(db *gorm.DB) *FriendService {
	return &FriendService{db: db}
}

// Send creates a pending request from requesterID to recipientID, replacing
// a previously rejected row for the pair. Races between two simultaneous
// sends for the same pair are settled by the unique index on the normalized
// pair; the loser surfaces a conflict.
func (s *FriendService) Send(requesterID, recipientID uint) (*models.FriendRequest, error) {
	if requesterID == recipientID {
		return nil, apperr.New(apperr.KindInvalidOperation, "Cannot send a friend request to yourself")
	}

	var recipient models.User

	if err := s.db.First(&recipient, recipientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Recipient user not found")
		}
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to load recipient")
	}

	low, high := requesterID, recipientID
	if low > high {
		low, high = high, low
	}

	request := models.FriendRequest{
		RequesterID: requesterID,
		RecipientID: recipientID,
		Status:      models.FriendRequestPending,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.FriendRequest

		err := tx.Where("pair_low_id = ? AND pair_high_id = ?", low, high).First(&existing).Error

		switch {
		case err == nil:
			action, decisionErr := evaluateSend(&existing, requesterID)
			if decisionErr != nil {
				return decisionErr
			}
			if action == sendReplaceRejected {
				// Hard delete so the unique pair index frees up for the
				// replacement row.
				if err := tx.Unscoped().Delete(&existing).Error; err != nil {
					return apperr.Wrap(err, apperr.KindInternal, "failed to remove rejected request")
				}
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Untouched pair, proceed to create.
		default:
			return apperr.Wrap(err, apperr.KindInternal, "failed to check existing friend request")
		}

		if err := tx.Create(&request).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost the race against a concurrent send for the same pair.
				return apperr.Wrap(err, apperr.KindConflict, "Friend request already exists for this pair")
			}
			return apperr.Wrap(err, apperr.KindInternal, "failed to create friend request")
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	logger.Info("friend request sent",
		"request_id", request.ID,
		"requester_id", requesterID,
		"recipient_id", recipientID)

	return &request, nil
}

// Accept moves a pending request to accepted. Only the recipient may
// accept, and only while the row is still pending.
func (s *FriendService) Accept(requestID, actingUserID uint) (*models.FriendRequest, error) {
	return s.respond(requestID, actingUserID, models.FriendRequestAccepted)
}

// Reject moves a pending request to rejected. The row is kept so a later
// Send for the pair can detect the rejection and replace it.
func (s *FriendService) Reject(requestID, actingUserID uint) (*models.FriendRequest, error) {
	return s.respond(requestID, actingUserID, models.FriendRequestRejected)
}

func (s *FriendService) respond(requestID, actingUserID uint, next models.FriendRequestStatus) (*models.FriendRequest, error) {
	var request models.FriendRequest

	if err := s.db.First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Friend request not found")
		}
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to load friend request")
	}

	if err := respondGate(&request, actingUserID); err != nil {
		return nil, err
	}

	// Conditioned on the row still being pending, so a concurrent responder
	// loses with "not pending" instead of silently overwriting.
	result := s.db.Model(&models.FriendRequest{}).
		Where("id = ? AND status = ?", requestID, models.FriendRequestPending).
		Update("status", next)

	if result.Error != nil {
		return nil, apperr.Wrap(result.Error, apperr.KindInternal, "failed to update friend request")
	}

	if result.RowsAffected == 0 {
		return nil, apperr.New(apperr.KindInvalidOperation, "Request is not pending")
	}

	request.Status = next

	logger.Info("friend request resolved",
		"request_id", request.ID,
		"acting_user_id", actingUserID,
		"status", string(next))

	return &request, nil
}

// ListFriends resolves the accepted partners of userID to user records.
// Order is unspecified.
func (s *FriendService) ListFriends(userID uint) ([]models.User, error) {
	var accepted []models.FriendRequest

	err := s.db.
		Where("status = ? AND (requester_id = ? OR recipient_id = ?)",
			models.FriendRequestAccepted, userID, userID).
		Find(&accepted).Error

	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to load accepted requests")
	}

	ids := partnerIDs(accepted, userID)
	if len(ids) == 0 {
		return []models.User{}, nil
	}

	var friends []models.User

	if err := s.db.Where("id IN ?", ids).Find(&friends).Error; err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to load friend users")
	}

	return friends, nil
}

// ListIncomingPending returns pending requests addressed to userID, newest
// first, with the requester preloaded for display.
func (s *FriendService) ListIncomingPending(userID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest

	err := s.db.
		Where("recipient_id = ? AND status = ?", userID, models.FriendRequestPending).
		Order("created_at DESC").
		Preload("Requester").
		Find(&requests).Error

	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to load incoming requests")
	}

	return requests, nil
}

// ExclusionIDs is the set of user ids suggestions must skip: the user
// plus every accepted or pending partner in either direction.
func (s *FriendService) ExclusionIDs(userID uint) ([]uint, error) {
	var requests []models.FriendRequest

	err := s.db.
		Where("(requester_id = ? OR recipient_id = ?) AND status IN ?",
			userID, userID,
			[]models.FriendRequestStatus{models.FriendRequestAccepted, models.FriendRequestPending}).
		Find(&requests).Error

	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to load related requests")
	}

	return exclusionIDs(requests, userID), nil
}

// Suggestions samples up to limit users outside the exclusion set.
func (s *FriendService) Suggestions(userID uint, limit int) ([]models.User, error) {
	exclude, err := s.ExclusionIDs(userID)
	if err != nil {
		return nil, err
	}

	var suggested []models.User

	if err := s.db.
		Where("id NOT IN ?", exclude).
		Order("RANDOM()").
		Limit(limit).
		Find(&suggested).Error; err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to load suggestions")
	}

	return suggested, nil
}
