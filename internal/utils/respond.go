package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/linkup-dev/linkup/internal/apperr"
	"github.com/linkup-dev/linkup/internal/logger"
)

// RespondError writes the stable status and message for a service error.
// Internal failures are logged with detail and echoed generically.
func RespondError(ctx *gin.Context, err error) {
	if apperr.KindOf(err) == apperr.KindInternal {
		logger.Error("internal error",
			"request_id", ctx.GetString("request_id"),
			"path", ctx.FullPath(),
			"error", err.Error())
	}

	ctx.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.PublicMessage(err)})
}
