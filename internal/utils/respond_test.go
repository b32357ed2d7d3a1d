package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linkup-dev/linkup/internal/apperr"
	"github.com/linkup-dev/linkup/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	m.Run()
}

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return ctx, recorder
}

func TestRespondErrorConflict(t *testing.T) {
	ctx, recorder := newTestContext()

	RespondError(ctx, apperr.New(apperr.KindConflict, "You are already friends with this user"))

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "already friends")
}

func TestRespondErrorInternalIsGeneric(t *testing.T) {
	ctx, recorder := newTestContext()

	cause := errors.New("pq: duplicate key value violates unique constraint")
	RespondError(ctx, apperr.Wrap(cause, apperr.KindInternal, "failed to create user"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "pq:")
	assert.Contains(t, recorder.Body.String(), "Internal server error")
}

func TestRespondErrorUnclassified(t *testing.T) {
	ctx, recorder := newTestContext()

	RespondError(ctx, errors.New("raw failure"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "raw failure")
}
