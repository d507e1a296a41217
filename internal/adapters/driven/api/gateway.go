package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driven"
	"github.com/tutorwise/tutorwise-cli/internal/logger"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 60 * time.Second

// GatewayConfig holds configuration for the request gateway.
type GatewayConfig struct {
	// BaseURL is the backend root, e.g. "https://api.tutorwise.app" (required).
	BaseURL string

	// Timeout is the per-request timeout (default: 60s).
	Timeout time.Duration
}

// Gateway issues all backend HTTP calls. It reads the session store for
// the bearer header and tears the session down on any 401; everywhere
// else it is a pure pass-through. No retries, no request serialisation:
// overlapping calls complete in whatever order the network delivers.
type Gateway struct {
	client  *http.Client
	baseURL string
	session driven.SessionStore
}

// NewGateway creates a request gateway.
func NewGateway(cfg GatewayConfig, session driven.SessionStore) (*Gateway, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api: base URL is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Gateway{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		session: session,
	}, nil
}

// BaseURL returns the configured backend root.
func (g *Gateway) BaseURL() string {
	return g.baseURL
}

// Do issues one backend call and decodes a JSON success body into out
// (skipped when out is nil). Every failure is a *domain.APIError:
// transport failures carry status 0, a 401 forces session logout and a
// fixed "Unauthorized" message, and any other non-2xx carries the
// server's detail/message text plus the parsed body.
func (g *Gateway) Do(ctx context.Context, method, endpoint string, payload Payload, headers map[string]string, out any) error {
	reqID := uuid.NewString()
	logger.Debug("api: [%s] %s %s", reqID[:8], method, endpoint)

	req, err := g.buildRequest(ctx, method, endpoint, payload, headers)
	if err != nil {
		return err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		logger.Debug("api: [%s] transport failure: %v", reqID[:8], err)
		return &domain.APIError{Message: err.Error(), Status: 0}
	}
	defer resp.Body.Close()

	// Unconditional: a 401 always logs the user out and fails the call
	// with a fixed message, whatever the body says.
	if resp.StatusCode == http.StatusUnauthorized {
		logger.Warn("api: [%s] unauthorized, clearing session", reqID[:8])
		g.session.Logout()
		return &domain.APIError{Message: "Unauthorized", Status: http.StatusUnauthorized}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.APIError{Message: fmt.Sprintf("read response: %v", err), Status: 0}
	}

	parsed := parseBody(resp.Header.Get("Content-Type"), body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Debug("api: [%s] status %d", reqID[:8], resp.StatusCode)
		return domain.NewAPIError(resp.StatusCode, parsed)
	}

	logger.Debug("api: [%s] status %d, %d bytes", reqID[:8], resp.StatusCode, len(body))

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		// A success response that doesn't parse propagates as a
		// generic failure; the source has no separate class for this.
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// buildRequest composes headers and encodes the payload.
func (g *Gateway) buildRequest(ctx context.Context, method, endpoint string, payload Payload, headers map[string]string) (*http.Request, error) {
	// Defaults first, then the session's bearer header, then the
	// caller's headers, which win on conflict.
	merged := map[string]string{"Content-Type": "application/json"}
	for k, v := range g.session.AuthHeader() {
		merged[k] = v
	}
	for k, v := range headers {
		merged[k] = v
	}

	var body io.Reader
	switch p := payload.(type) {
	case nil:
		body = http.NoBody

	case JSONPayload:
		data, err := json.Marshal(p.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)

	case MultipartPayload:
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile(p.FieldName, p.FileName)
		if err != nil {
			return nil, fmt.Errorf("create form file: %w", err)
		}
		if _, err := io.Copy(part, p.Reader); err != nil {
			return nil, fmt.Errorf("copy file: %w", err)
		}
		for k, v := range p.Fields {
			if err := writer.WriteField(k, v); err != nil {
				return nil, fmt.Errorf("write field %q: %w", k, err)
			}
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("close multipart writer: %w", err)
		}

		// The JSON default must go: the encoder's boundary header is
		// the only valid content type for this body.
		merged["Content-Type"] = writer.FormDataContentType()
		body = &buf

	default:
		return nil, fmt.Errorf("api: unknown payload type %T", payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range merged {
		req.Header.Set(k, v)
	}
	return req, nil
}

// parseBody decodes the response per its declared content type: JSON
// when declared, raw text otherwise.
func parseBody(contentType string, body []byte) any {
	if strings.Contains(contentType, "application/json") {
		var v any
		if err := json.Unmarshal(body, &v); err == nil {
			return v
		}
	}
	return string(body)
}
