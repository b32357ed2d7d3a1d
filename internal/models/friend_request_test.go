package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePairOrdersIDs(t *testing.T) {
	fr := FriendRequest{RequesterID: 7, RecipientID: 3}

	require.NoError(t, fr.NormalizePair())
	assert.Equal(t, uint(3), fr.PairLowID)
	assert.Equal(t, uint(7), fr.PairHighID)

	// Opposite direction normalizes to the same pair.
	reverse := FriendRequest{RequesterID: 3, RecipientID: 7}

	require.NoError(t, reverse.NormalizePair())
	assert.Equal(t, fr.PairLowID, reverse.PairLowID)
	assert.Equal(t, fr.PairHighID, reverse.PairHighID)
}

func TestNormalizePairRejectsSelfRequest(t *testing.T) {
	fr := FriendRequest{RequesterID: 5, RecipientID: 5}

	err := fr.NormalizePair()

	assert.ErrorIs(t, err, ErrSelfRequest)
}

func TestOtherParty(t *testing.T) {
	fr := FriendRequest{RequesterID: 1, RecipientID: 2}

	assert.Equal(t, uint(2), fr.OtherParty(1))
	assert.Equal(t, uint(1), fr.OtherParty(2))
}
