package types

import (
	"time"

	"github.com/linkup-dev/linkup/internal/models"
)

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserProfileResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FriendRequestResponse struct {
	ID          uint          `json:"id"`
	RequesterID uint          `json:"requester_id"`
	RecipientID uint          `json:"recipient_id"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Requester   *UserResponse `json:"requester,omitempty"`
	Recipient   *UserResponse `json:"recipient,omitempty"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

func NewUserProfileResponse(user *models.User) UserProfileResponse {
	return UserProfileResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Bio:       user.Bio,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func NewFriendRequestResponse(request *models.FriendRequest) FriendRequestResponse {
	resp := FriendRequestResponse{
		ID:          request.ID,
		RequesterID: request.RequesterID,
		RecipientID: request.RecipientID,
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt,
		UpdatedAt:   request.UpdatedAt,
	}

	if request.Requester.ID != 0 {
		requester := NewUserResponse(&request.Requester)
		resp.Requester = &requester
	}

	if request.Recipient.ID != 0 {
		recipient := NewUserResponse(&request.Recipient)
		resp.Recipient = &recipient
	}

	return resp
}
