package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linkup-dev/linkup/internal/services"
	"github.com/linkup-dev/linkup/internal/types"
	"github.com/linkup-dev/linkup/internal/utils"
)

type UpdateProfileRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=80"`
	Bio  *string `json:"bio"`
}

func GetProfile(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := userService.GetByID(userID)

	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewUserProfileResponse(user))
}

func UpdateProfile(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body UpdateProfileRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := userService.UpdateProfile(userID, services.ProfileUpdate{
		Name: body.Name,
		Bio:  body.Bio,
	})

	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewUserProfileResponse(user))
}

func ListUsers(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(ctx.DefaultQuery("per_page", "10"))

	result, err := userService.ListUsers(userID, ctx.Query("search"), page, perPage)

	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	users := make([]types.UserResponse, 0, len(result.Users))

	for i := range result.Users {
		users = append(users, types.NewUserResponse(&result.Users[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"users":        users,
		"total":        result.Total,
		"pages":        result.TotalPages,
		"current_page": result.Page,
		"per_page":     result.PerPage,
		"has_next":     result.Page < result.TotalPages,
		"has_prev":     result.Page > 1,
	})
}

func GetSuggestions(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	suggestions, err := friendService.Suggestions(userID, suggestionLimit)

	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	users := make([]types.UserResponse, 0, len(suggestions))

	for i := range suggestions {
		users = append(users, types.NewUserResponse(&suggestions[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{"users": users})
}
