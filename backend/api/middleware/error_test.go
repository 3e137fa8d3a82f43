package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	commonerrors "article-hub/backend/common/errors"
	"article-hub/backend/common/httperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	router := setupTestRouter()
	router.Use(ErrorHandler())
	router.GET("/boom", func(c *gin.Context) {
		_ = c.Error(err)
		c.Abort()
	})

	req, _ := http.NewRequest("GET", "/boom", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestErrorHandler_RendersEnvelope(t *testing.T) {
	resp := serveWithError(t, httperr.NotFound(commonerrors.ErrArticleNotFound, "Article is not found"))

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var body errorEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Code)
	assert.Equal(t, "BAD REQUEST", body.Status)
	assert.Equal(t, "Article is not found", body.Message)
	assert.NotNil(t, body.Errors)
	assert.Empty(t, body.Errors)
}

func TestErrorHandler_KeepsDetailList(t *testing.T) {
	resp := serveWithError(t, httperr.BadRequest(commonerrors.ErrEmptyUpdate,
		"Some field is required", "title, description, content, thumbnail or categories must be present"))

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var body errorEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Some field is required", body.Message)
	require.Len(t, body.Errors, 1)
	assert.Contains(t, body.Errors[0], "must be present")
}

func TestErrorHandler_UnknownErrorBecomesInternal(t *testing.T) {
	resp := serveWithError(t, errors.New("disk on fire"))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)

	var body errorEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Something went wrong", body.Message)
	// Internal detail stays in the log, not in the response.
	assert.NotContains(t, resp.Body.String(), "disk on fire")
}

func TestErrorHandler_SkipsWrittenResponses(t *testing.T) {
	router := setupTestRouter()
	router.Use(ErrorHandler())
	router.GET("/handled", func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{"handled": true})
		_ = c.Error(errors.New("already rendered"))
	})

	req, _ := http.NewRequest("GET", "/handled", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusTeapot, resp.Code)
	assert.Contains(t, resp.Body.String(), "handled")
}
