package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestRawSubmitter(t *testing.T, handler http.HandlerFunc) *RawSubmitter {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewRawSubmitter(server.URL, "preprodKey", time.Second)
}

func TestRawSubmitter_Submit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		submitter := newTestRawSubmitter(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/tx/submit", r.URL.Path)
			assert.Equal(t, CborContentType, r.Header.Get("Content-Type"))
			assert.Equal(t, "preprodKey", r.Header.Get(ProjectIdHeader))
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, []byte{0x84, 0xa0}, body)
			fmt.Fprintf(w, "\"%s\"\n", testTxHash)
		})

		hash, err := submitter.Submit(context.Background(), []byte{0x84, 0xa0})
		assert.NoError(t, err)
		assert.Equal(t, testTxHash, hash)
	})

	t.Run("Unquoted Hash", func(t *testing.T) {
		submitter := newTestRawSubmitter(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(testTxHash))
		})

		hash, err := submitter.Submit(context.Background(), []byte{0x84})
		assert.NoError(t, err)
		assert.Equal(t, testTxHash, hash)
	})

	t.Run("Ledger Rejection", func(t *testing.T) {
		submitter := newTestRawSubmitter(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"status_code":400,"error":"Bad Request","message":"ValueNotConservedUTxO"}`))
		})

		_, err := submitter.Submit(context.Background(), []byte{0x84})
		var indexerErr *Error
		assert.True(t, errors.As(err, &indexerErr))
		assert.Equal(t, ErrorKindJSON, indexerErr.Kind)
		assert.Contains(t, err.Error(), "ValueNotConservedUTxO")
	})

	t.Run("Misconfigured Url", func(t *testing.T) {
		submitter := newTestRawSubmitter(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("<html><body>Not Found</body></html>"))
		})

		_, err := submitter.Submit(context.Background(), []byte{0x84})
		var indexerErr *Error
		assert.True(t, errors.As(err, &indexerErr))
		assert.Equal(t, ErrorKindHTML, indexerErr.Kind)
	})

	t.Run("Raw Text", func(t *testing.T) {
		submitter := newTestRawSubmitter(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream down"))
		})

		_, err := submitter.Submit(context.Background(), []byte{0x84})
		assert.ErrorContains(t, err, "upstream down")
	})

	t.Run("Unexpected Body", func(t *testing.T) {
		submitter := newTestRawSubmitter(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"ok":true}`))
		})

		_, err := submitter.Submit(context.Background(), []byte{0x84})
		assert.Error(t, err)
	})
}
