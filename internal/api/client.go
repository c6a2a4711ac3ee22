// Package api implements the HTTP client for the share API and the
// entry-fetch orchestration built on top of it.
//
// The API is a small PHP REST surface: api.php exposes entries,
// attachments, custom fields and schema discovery; share.php is the
// webhook used to create entries. All calls optionally carry HTTP
// Basic Auth.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shareapi/share-api-mcp/internal/config"
	"github.com/shareapi/share-api-mcp/internal/logging"
	"github.com/shareapi/share-api-mcp/internal/model"
)

// DefaultTimeout bounds every API request.
const DefaultTimeout = 30 * time.Second

// Client is a stateless share API client. It is safe to construct a
// fresh Client per tool invocation.
type Client struct {
	httpClient *http.Client
	user       string
	password   string
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Used by tests
// and by callers that need custom transport settings.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New creates a Client. Basic-auth credentials are taken from settings
// when both are present; otherwise requests go out unauthenticated.
func New(settings config.Settings, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = logging.NewNop()
	}
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     logger,
	}
	if settings.HasAuth() {
		c.user = settings.AuthUser
		c.password = settings.AuthPassword
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NormalizeBaseURL strips trailing slashes and rewrites localhost to
// 127.0.0.1. The PHP server binds the IPv4 loopback only, so resolving
// localhost to ::1 would fail.
func NormalizeBaseURL(base string) string {
	base = strings.ReplaceAll(base, "://localhost", "://127.0.0.1")
	return strings.TrimRight(base, "/")
}

func (c *Client) newRequest(ctx context.Context, method, rawURL string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	if c.user != "" {
		req.SetBasicAuth(c.user, c.password)
	}
	return req, nil
}

// doJSON issues a request with an optional JSON payload and decodes
// the JSON response into out (when out is non-nil). Failures of any
// kind come back as *FetchError.
func (c *Client) doJSON(ctx context.Context, method, rawURL string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return &FetchError{URL: rawURL, Err: fmt.Errorf("encode payload: %w", err)}
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, rawURL, body)
	if err != nil {
		return &FetchError{URL: rawURL, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &FetchError{URL: rawURL, Status: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{URL: rawURL, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	return c.doJSON(ctx, http.MethodGet, rawURL, nil, out)
}

// messageBody is the {"message": "..."} envelope the delete endpoints
// respond with.
type messageBody struct {
	Message string `json:"message"`
}

// GetEntry fetches one entry, attachments included.
func (c *Client) GetEntry(ctx context.Context, baseURL string, entryID int) (model.Entry, error) {
	u := fmt.Sprintf("%s/api.php/entries/%d", NormalizeBaseURL(baseURL), entryID)
	c.logger.Info("fetching entry", "url", u)

	var entry model.Entry
	if err := c.getJSON(ctx, u, &entry); err != nil {
		return model.Entry{}, err
	}
	return entry, nil
}

// ListEntries fetches one page of entries. The filters map is passed
// through as query parameters alongside page/per_page.
func (c *Client) ListEntries(ctx context.Context, baseURL string, page, perPage int, filters map[string]any) (model.EntryList, error) {
	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", page))
	params.Set("per_page", fmt.Sprintf("%d", perPage))
	for k, v := range filters {
		params.Set(k, fmt.Sprintf("%v", v))
	}

	u := fmt.Sprintf("%s/api.php/entries?%s", NormalizeBaseURL(baseURL), params.Encode())
	c.logger.Info("listing entries", "url", u, "page", page)

	list := model.EntryList{Page: page, PerPage: perPage}
	if err := c.getJSON(ctx, u, &list); err != nil {
		return model.EntryList{}, err
	}
	return list, nil
}

// UpdateEntry applies a partial update to an entry.
func (c *Client) UpdateEntry(ctx context.Context, baseURL string, entryID int, payload map[string]any) (model.Entry, error) {
	u := fmt.Sprintf("%s/api.php/entries/%d", NormalizeBaseURL(baseURL), entryID)
	c.logger.Info("updating entry", "url", u)

	var entry model.Entry
	if err := c.doJSON(ctx, http.MethodPut, u, payload, &entry); err != nil {
		return model.Entry{}, err
	}
	return entry, nil
}

// DeleteEntry deletes an entry; the server cascades to attachments.
func (c *Client) DeleteEntry(ctx context.Context, baseURL string, entryID int) (string, error) {
	u := fmt.Sprintf("%s/api.php/entries/%d", NormalizeBaseURL(baseURL), entryID)
	c.logger.Info("deleting entry", "url", u)

	var msg messageBody
	if err := c.doJSON(ctx, http.MethodDelete, u, nil, &msg); err != nil {
		return "", err
	}
	if msg.Message == "" {
		msg.Message = "Entry deleted"
	}
	return msg.Message, nil
}

// DeleteAttachment deletes one attachment.
func (c *Client) DeleteAttachment(ctx context.Context, baseURL string, attachmentID int) (string, error) {
	u := fmt.Sprintf("%s/api.php/attachments/%d", NormalizeBaseURL(baseURL), attachmentID)
	c.logger.Info("deleting attachment", "url", u)

	var msg messageBody
	if err := c.doJSON(ctx, http.MethodDelete, u, nil, &msg); err != nil {
		return "", err
	}
	if msg.Message == "" {
		msg.Message = "Attachment deleted"
	}
	return msg.Message, nil
}

// GetAuthInfo reports the authentication method the server expects.
func (c *Client) GetAuthInfo(ctx context.Context, baseURL string) (model.AuthInfo, error) {
	u := NormalizeBaseURL(baseURL) + "/api.php/auth"

	var info model.AuthInfo
	if err := c.getJSON(ctx, u, &info); err != nil {
		return model.AuthInfo{}, err
	}
	return info, nil
}

// ListFields fetches the schema discovery descriptors.
func (c *Client) ListFields(ctx context.Context, baseURL string) ([]model.FieldDescriptor, error) {
	u := NormalizeBaseURL(baseURL) + "/api.php/fields"

	var body struct {
		Data []model.FieldDescriptor `json:"data"`
	}
	if err := c.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}
	return body.Data, nil
}
