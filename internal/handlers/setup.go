package handlers

import (
	"github.com/linkup-dev/linkup/internal/config"
	"github.com/linkup-dev/linkup/internal/services"
	"gorm.io/gorm"
)

var (
	userService     *services.UserService
	friendService   *services.FriendService
	suggestionLimit = 5
)

// Setup wires the handler package to its services. Called once from main
// after the database connection is established.
func Setup(conn *gorm.DB, cfg *config.Config) {
	userService = services.NewUserService(conn)
	friendService = services.NewFriendService(conn)

	if cfg != nil && cfg.SuggestionLimit > 0 {
		suggestionLimit = cfg.SuggestionLimit
	}
}
