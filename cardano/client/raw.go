package client

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dan13ram/pos-minter/models"
)

const CborContentType = "application/cbor"

// RawSubmitter posts signed transaction bytes straight to the indexer's submit endpoint
// with a plain http.Client and no retries.
type RawSubmitter struct {
	url       string
	projectId string
	client    *http.Client
}

func NewRawSubmitter(baseURL string, projectId string, timeout time.Duration) *RawSubmitter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RawSubmitter{
		url:       strings.TrimRight(baseURL, "/") + "/tx/submit",
		projectId: projectId,
		client:    &http.Client{Timeout: timeout},
	}
}

func NewRawSubmitterFromConfig(config models.CardanoConfig) *RawSubmitter {
	return NewRawSubmitter(config.IndexerURL, config.IndexerProjectId, time.Duration(config.IndexerTimeoutMillis)*time.Millisecond)
}

func (s *RawSubmitter) Submit(ctx context.Context, tx []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(tx))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", CborContentType)
	req.Header.Set(ProjectIdHeader, s.projectId)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	bz, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", classifyError(resp.StatusCode, resp.Header.Get("Content-Type"), bz)
	}

	res := strings.TrimSpace(string(bz))
	if unquoted, err := strconv.Unquote(res); err == nil {
		res = unquoted
	}

	if raw, err := hex.DecodeString(res); err != nil || len(raw) != 32 {
		return "", fmt.Errorf("unexpected submit response: %.100q", res)
	}
	return res, nil
}
