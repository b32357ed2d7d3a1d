package models

import (
	"errors"

	"gorm.io/gorm"
)

type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
	FriendRequestRejected FriendRequestStatus = "rejected"
)

var ErrSelfRequest = errors.New("requester and recipient must differ")

// FriendRequest is the single authoritative row for a user pair: a pending
// request, an accepted friendship, or a rejected request awaiting re-send.
// PairLowID/PairHighID hold the normalized unordered pair so the unique
// index rejects a second row for the same two users regardless of who sent
// which request.
type FriendRequest struct {
	gorm.Model

	RequesterID uint                `gorm:"not null;index"`
	RecipientID uint                `gorm:"not null;index:idx_recipient_status"`
	Status      FriendRequestStatus `gorm:"type:varchar(16);not null;default:'pending';index:idx_recipient_status"`

	PairLowID  uint `gorm:"not null;uniqueIndex:uq_friend_request_pair"`
	PairHighID uint `gorm:"not null;uniqueIndex:uq_friend_request_pair"`

	Requester User `gorm:"foreignKey:RequesterID"`
	Recipient User `gorm:"foreignKey:RecipientID"`
}

// NormalizePair fills the normalized pair columns from the directional ids.
func (fr *FriendRequest) NormalizePair() error {
	if fr.RequesterID == fr.RecipientID {
		return ErrSelfRequest
	}

	if fr.RequesterID < fr.RecipientID {
		fr.PairLowID, fr.PairHighID = fr.RequesterID, fr.RecipientID
	} else {
		fr.PairLowID, fr.PairHighID = fr.RecipientID, fr.RequesterID
	}

	return nil
}

func (fr *FriendRequest) BeforeCreate(tx *gorm.DB) error {
	return fr.NormalizePair()
}

// OtherParty returns the id on the opposite side of the pair from userID.
func (fr *FriendRequest) OtherParty(userID uint) uint {
	if fr.RequesterID == userID {
		return fr.RecipientID
	}

	return fr.RequesterID
}
