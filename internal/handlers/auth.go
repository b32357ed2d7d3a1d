package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkup-dev/linkup/internal/auth"
	"github.com/linkup-dev/linkup/internal/types"
	"github.com/linkup-dev/linkup/internal/utils"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=80"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Register(ctx *gin.Context) {
	var body RegisterRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := userService.Register(body.Name, body.Email, body.Password)

	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    types.NewUserProfileResponse(user),
	})
}

func Login(ctx *gin.Context) {
	var body LoginRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := userService.Authenticate(body.Email, body.Password)

	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"access_token": token})
}
