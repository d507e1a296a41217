package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.Backend = (*Client)(nil)

// Client is the typed facade over the gateway. Each method fixes one
// endpoint, method, and payload shape; errors pass through unchanged.
type Client struct {
	gw *Gateway
}

// NewClient creates a backend client over a gateway.
func NewClient(gw *Gateway) *Client {
	return &Client{gw: gw}
}

// registerRequest is the /auth/register payload.
type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// loginRequest is the /auth/login payload.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account. The response carries only a token, so a
// full session requires a follow-up Login.
func (c *Client) Register(ctx context.Context, email, password, fullName string) error {
	payload := JSONPayload{Value: registerRequest{Email: email, Password: password, FullName: fullName}}
	return c.gw.Do(ctx, http.MethodPost, "/auth/register", payload, nil, nil)
}

// Login exchanges credentials for a session payload.
func (c *Client) Login(ctx context.Context, email, password string) (domain.Session, error) {
	var sess domain.Session
	payload := JSONPayload{Value: loginRequest{Email: email, Password: password}}
	if err := c.gw.Do(ctx, http.MethodPost, "/auth/login", payload, nil, &sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

// CreateSpace creates a learning space.
func (c *Client) CreateSpace(ctx context.Context, req domain.SpaceCreate) (domain.Space, error) {
	var space domain.Space
	if err := c.gw.Do(ctx, http.MethodPost, "/spaces/create_space", JSONPayload{Value: req}, nil, &space); err != nil {
		return domain.Space{}, err
	}
	return space, nil
}

// ListSpaces returns the owner's spaces, newest first.
func (c *Client) ListSpaces(ctx context.Context, ownerID string) ([]domain.Space, error) {
	endpoint := "/spaces/list_spaces?owner_id=" + url.QueryEscape(ownerID)
	var spaces []domain.Space
	if err := c.gw.Do(ctx, http.MethodGet, endpoint, nil, nil, &spaces); err != nil {
		return nil, err
	}
	return spaces, nil
}

// GetSpace fetches one space.
func (c *Client) GetSpace(ctx context.Context, id string) (domain.Space, error) {
	var space domain.Space
	if err := c.gw.Do(ctx, http.MethodGet, "/spaces/space/"+url.PathEscape(id), nil, nil, &space); err != nil {
		return domain.Space{}, err
	}
	return space, nil
}

// UpdateSpace applies a partial update.
func (c *Client) UpdateSpace(ctx context.Context, id string, req domain.SpaceUpdate) (domain.Space, error) {
	var space domain.Space
	endpoint := "/spaces/space/" + url.PathEscape(id)
	if err := c.gw.Do(ctx, http.MethodPatch, endpoint, JSONPayload{Value: req}, nil, &space); err != nil {
		return domain.Space{}, err
	}
	return space, nil
}

// DeleteSpace removes a space.
func (c *Client) DeleteSpace(ctx context.Context, id string) error {
	return c.gw.Do(ctx, http.MethodDelete, "/spaces/space/"+url.PathEscape(id), nil, nil, nil)
}

// UploadContent uploads one document. Metadata travels as query
// parameters on the upload endpoint; only the file bytes are multipart.
// This placement is the backend's contract.
func (c *Client) UploadContent(ctx context.Context, req domain.UploadRequest) (domain.Content, error) {
	f, err := os.Open(req.FilePath)
	if err != nil {
		return domain.Content{}, fmt.Errorf("open upload file: %w", err)
	}
	defer f.Close()

	name := req.FileName
	if name == "" {
		name = filepath.Base(req.FilePath)
	}

	query := url.Values{}
	query.Set("space_id", req.SpaceID)
	if req.Title != "" {
		query.Set("title", req.Title)
	}
	if req.OwnerID != "" {
		query.Set("owner_id", req.OwnerID)
	}

	payload := MultipartPayload{FieldName: "file", FileName: name, Reader: f}

	var content domain.Content
	endpoint := "/contents/upload?" + query.Encode()
	if err := c.gw.Do(ctx, http.MethodPost, endpoint, payload, nil, &content); err != nil {
		return domain.Content{}, err
	}
	return content, nil
}

// ListContents returns a space's documents, newest first.
func (c *Client) ListContents(ctx context.Context, spaceID string) ([]domain.Content, error) {
	var contents []domain.Content
	endpoint := "/contents/by_space/" + url.PathEscape(spaceID)
	if err := c.gw.Do(ctx, http.MethodGet, endpoint, nil, nil, &contents); err != nil {
		return nil, err
	}
	return contents, nil
}

// SendMessage runs one chat turn against a space.
func (c *Client) SendMessage(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error) {
	if req.History == nil {
		req.History = []domain.ChatMessage{}
	}
	var resp domain.ChatResponse
	if err := c.gw.Do(ctx, http.MethodPost, "/chat/", JSONPayload{Value: req}, nil, &resp); err != nil {
		return domain.ChatResponse{}, err
	}
	return resp, nil
}
