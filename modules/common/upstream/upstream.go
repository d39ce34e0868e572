package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"ai-telephone-server/modules/common/apperr"
)

// Doer sends one HTTP request and returns its response.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoerFunc adapts a function to Doer.
type DoerFunc func(req *http.Request) (*http.Response, error)

func (f DoerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// NewHTTPClient - 기본 HTTP 클라이언트 (타임아웃은 http 기본값/플랫폼에 맡김)
func NewHTTPClient() *http.Client {
	return &http.Client{}
}

// Response - 업스트림 응답 상태와 body
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// PostJSON marshals payload, sends it with bearer auth plus extra headers and
// reads the whole response body.
func PostJSON(ctx context.Context, client Doer, url, apiKey string, headers map[string]string, payload interface{}) (*Response, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)
	for key, value := range headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, apperr.Transport(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Transport(fmt.Errorf("failed to read response: %w", err))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     reasonPhrase(resp),
		Body:       bodyBytes,
	}, nil
}

// reasonPhrase - 업스트림 status line의 문구 우선, 없으면 표준 문구
func reasonPhrase(resp *http.Response) string {
	phrase := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if phrase != "" {
		return phrase
	}
	return http.StatusText(resp.StatusCode)
}
