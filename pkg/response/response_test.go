package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Header Header          `json:"header"`
	Body   json.RawMessage `json:"body"`
}

func perform(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	r := gin.New()
	r.GET("/t", h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestSuccess(t *testing.T) {
	w, env := perform(t, func(c *gin.Context) {
		Success(c, gin.H{"id": 1})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Header.Success)
	assert.Equal(t, 200, env.Header.Status)
	assert.JSONEq(t, `{"id":1}`, string(env.Body))
}

func TestCreated_WithoutBody(t *testing.T) {
	w, env := perform(t, func(c *gin.Context) {
		Created(c, "book created", nil)
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "book created", env.Header.Message)
	assert.Empty(t, env.Body)
	assert.NotContains(t, w.Body.String(), `"body"`)
}

func TestError_MapsCodeToStatus(t *testing.T) {
	w, env := perform(t, func(c *gin.Context) {
		Error(c, apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在"))
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Header.Success)
	assert.Equal(t, "not found", env.Header.Message)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(env.Body, &body))
	assert.Equal(t, apperrors.ErrCodeBookNotFound, body.Code)
	assert.Equal(t, "图书不存在", body.Title)
	assert.Equal(t, 404, body.Status)
	assert.NotEmpty(t, body.Timestamp)
}

func TestError_UnknownErrorHidesCause(t *testing.T) {
	w, env := perform(t, func(c *gin.Context) {
		Error(c, errors.New("dial tcp 10.0.0.1:3306: refused"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "server error", env.Header.Message)
	assert.NotContains(t, w.Body.String(), "10.0.0.1")
}
