package client

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/blockfrost/blockfrost-go"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func init() {
	log.SetOutput(io.Discard)
}

var testTxHash = strings.Repeat("ab", 32)

func TestClassifyError(t *testing.T) {
	t.Run("HTML", func(t *testing.T) {
		err := classifyError(http.StatusNotFound, "text/html; charset=utf-8", []byte("<!DOCTYPE html><html></html>"))
		assert.Equal(t, ErrorKindHTML, err.Kind)
		assert.Contains(t, err.Error(), "base url")
	})

	t.Run("HTML Without Header", func(t *testing.T) {
		err := classifyError(http.StatusBadRequest, "", []byte("  <html>"))
		assert.Equal(t, ErrorKindHTML, err.Kind)
	})

	t.Run("JSON Message", func(t *testing.T) {
		err := classifyError(http.StatusBadRequest, "application/json", []byte(`{"status_code":400,"error":"Bad Request","message":"BadInputsUTxO"}`))
		assert.Equal(t, ErrorKindJSON, err.Kind)
		assert.Equal(t, "BadInputsUTxO", err.Message)
		assert.Contains(t, err.Error(), "BadInputsUTxO")
	})

	t.Run("JSON Object Message", func(t *testing.T) {
		err := classifyError(http.StatusBadRequest, "application/json", []byte(`{"message":{"reason":"x"}}`))
		assert.Equal(t, ErrorKindJSON, err.Kind)
		assert.Equal(t, `{"reason":"x"}`, err.Message)
	})

	t.Run("Text", func(t *testing.T) {
		err := classifyError(http.StatusBadRequest, "text/plain", []byte("mempool full"))
		assert.Equal(t, ErrorKindText, err.Kind)
		assert.Equal(t, "mempool full", err.Message)
	})

	t.Run("Empty", func(t *testing.T) {
		err := classifyError(http.StatusServiceUnavailable, "", nil)
		assert.Equal(t, "Service Unavailable", err.Message)
	})
}

func TestWrapError(t *testing.T) {
	t.Run("Api Error", func(t *testing.T) {
		err := wrapError(&blockfrost.APIError{Response: map[string]interface{}{
			"status_code": 404,
			"error":       "Not Found",
			"message":     "The requested component has not been found.",
		}})

		var indexerErr *Error
		assert.ErrorAs(t, err, &indexerErr)
		assert.Equal(t, http.StatusNotFound, indexerErr.StatusCode)
		assert.Equal(t, ErrorKindJSON, indexerErr.Kind)
		assert.True(t, IsNotFound(err))
	})

	t.Run("Api Error Without Status", func(t *testing.T) {
		err := wrapError(&blockfrost.APIError{Response: "upstream connect error"})

		var indexerErr *Error
		assert.ErrorAs(t, err, &indexerErr)
		assert.Equal(t, http.StatusBadGateway, indexerErr.StatusCode)
		assert.False(t, IsNotFound(err))
	})

	t.Run("Transport Error", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := wrapError(cause)

		assert.ErrorIs(t, err, cause)
		assert.False(t, IsNotFound(err))
	})
}
