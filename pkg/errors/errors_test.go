package errors_test

import (
	goerrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/aurora-jewelry/aurora-store/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestError_MessageAndUnwrap(t *testing.T) {
	cause := goerrors.New("boom")
	err := apperrors.New(http.StatusBadRequest, "bad input", cause)

	assert.Equal(t, "bad input: boom", err.Error())
	assert.True(t, goerrors.Is(err, cause))

	bare := apperrors.New(http.StatusNotFound, "missing", nil)
	assert.Equal(t, "missing", bare.Error())
	assert.Nil(t, bare.Unwrap())
}

func TestErrAPINotFound_Shape(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, apperrors.ErrAPINotFound.Code)
	assert.Equal(t, "API endpoint not found", apperrors.ErrAPINotFound.Message)
}

func recoveringApp(env string) *gin.Engine {
	r := gin.New()
	r.Use(gin.CustomRecovery(apperrors.RecoveryHandler(env)))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })
	return r
}

func TestRecoveryHandler_ProductionHidesDetail(t *testing.T) {
	w := httptest.NewRecorder()
	recoveringApp("production").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong!")
	assert.NotContains(t, w.Body.String(), "kaboom")
}

func TestRecoveryHandler_DevelopmentIncludesDetail(t *testing.T) {
	w := httptest.NewRecorder()
	recoveringApp("development").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong!")
	assert.Contains(t, w.Body.String(), "kaboom")
}
