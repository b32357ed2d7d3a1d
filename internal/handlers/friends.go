package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linkup-dev/linkup/internal/models"
	"github.com/linkup-dev/linkup/internal/types"
	"github.com/linkup-dev/linkup/internal/utils"
)

func SendFriendRequest(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipientID, err := strconv.ParseUint(ctx.Param("recipient_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipient ID"})
		return
	}

	request, err := friendService.Send(userID, uint(recipientID))

	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Friend request sent successfully",
		"request": types.NewFriendRequestResponse(request),
	})
}

func AcceptFriendRequest(ctx *gin.Context) {
	respondToRequest(ctx, "Friend request accepted", friendService.Accept)
}

func RejectFriendRequest(ctx *gin.Context) {
	respondToRequest(ctx, "Friend request rejected", friendService.Reject)
}

func respondToRequest(ctx *gin.Context, message string, respond func(uint, uint) (*models.FriendRequest, error)) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	requestID, err := strconv.ParseUint(ctx.Param("request_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	request, err := respond(uint(requestID), userID)

	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
		"request": types.NewFriendRequestResponse(request),
	})
}

func ListIncomingRequests(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	requests, err := friendService.ListIncomingPending(userID)

	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	response := make([]types.FriendRequestResponse, 0, len(requests))

	for i := range requests {
		response = append(response, types.NewFriendRequestResponse(&requests[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{"requests": response})
}

func ListFriends(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	friends, err := friendService.ListFriends(userID)

	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	response := make([]types.UserResponse, 0, len(friends))

	for i := range friends {
		response = append(response, types.NewUserResponse(&friends[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{"friends": response})
}
