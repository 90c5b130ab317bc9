// Package rest is the persistence binding for a remote board API: JSON over
// HTTP with one resource per column and cards nested under their column.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/store"
	"github.com/thenoetrevino/todoboard/internal/types"
)

// DefaultTimeout bounds a single request
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of an error response is read
const maxErrorBody = 64 << 10

// Client implements store.Store against the board API
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *slog.Logger
}

var _ store.Store = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the API rooted at baseURL (scheme and host, with
// an optional path prefix)
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid API URL %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ============================================================================
// WIRE TYPES
// ============================================================================

// columnDoc is a column as the API returns it. Document stores name the key
// _id, others id.
type columnDoc struct {
	MongoID   string             `json:"_id,omitempty"`
	ID        string             `json:"id,omitempty"`
	Name      string             `json:"name"`
	Collapsed bool               `json:"collapsed"`
	Order     *int               `json:"order,omitempty"`
	Cards     map[string]cardDoc `json:"cards"`
}

type cardDoc struct {
	Text  string `json:"text"`
	Order *int   `json:"order,omitempty"`
}

// createdDoc is the body of a successful POST
type createdDoc struct {
	MongoID string `json:"_id"`
	ID      string `json:"id"`
	CardID  string `json:"cardId"`
}

func (d createdDoc) id() string {
	switch {
	case d.MongoID != "":
		return d.MongoID
	case d.ID != "":
		return d.ID
	default:
		return d.CardID
	}
}

type newColumnBody struct {
	Name      string            `json:"name"`
	Collapsed bool              `json:"collapsed"`
	Cards     map[string]string `json:"cards"`
	Order     int               `json:"order"`
}

type columnPatchBody struct {
	Name      *string `json:"name,omitempty"`
	Collapsed *bool   `json:"collapsed,omitempty"`
	Order     *int    `json:"order,omitempty"`
}

type cardBody struct {
	Text  *string `json:"text,omitempty"`
	Order *int    `json:"order,omitempty"`
}

type errorDoc struct {
	Message string `json:"message"`
}

// ============================================================================
// STORE
// ============================================================================

// ListColumns implements store.ColumnReader
func (c *Client) ListColumns(ctx context.Context) ([]models.ColumnRecord, error) {
	var docs []columnDoc
	if err := c.do(ctx, http.MethodGet, columnsPath(), nil, &docs); err != nil {
		return nil, err
	}

	records := make([]models.ColumnRecord, 0, len(docs))
	for _, doc := range docs {
		id := doc.MongoID
		if id == "" {
			id = doc.ID
		}
		rec := models.ColumnRecord{
			ID:        types.ColumnID(id),
			Name:      doc.Name,
			Collapsed: doc.Collapsed,
			Order:     doc.Order,
			Cards:     make(map[types.CardID]models.CardRecord, len(doc.Cards)),
		}
		for cardID, card := range doc.Cards {
			rec.Cards[types.CardID(cardID)] = models.CardRecord{Text: card.Text, Order: card.Order}
		}
		records = append(records, rec)
	}
	return records, nil
}

// CreateColumn implements store.ColumnWriter
func (c *Client) CreateColumn(ctx context.Context, col models.NewColumn) (types.ColumnID, error) {
	body := newColumnBody{
		Name:      col.Name,
		Collapsed: col.Collapsed,
		Cards:     map[string]string{},
		Order:     col.Order,
	}
	var created createdDoc
	if err := c.do(ctx, http.MethodPost, columnsPath(), body, &created); err != nil {
		return "", err
	}
	return types.ColumnID(created.id()), nil
}

// UpdateColumn implements store.ColumnWriter. Only the fields set in patch
// are sent.
func (c *Client) UpdateColumn(ctx context.Context, id types.ColumnID, patch models.ColumnPatch) error {
	body := columnPatchBody{Name: patch.Name, Collapsed: patch.Collapsed, Order: patch.Order}
	return c.do(ctx, http.MethodPut, columnPath(id), body, nil)
}

// DeleteColumn implements store.ColumnWriter. The server removes the
// column's cards with it.
func (c *Client) DeleteColumn(ctx context.Context, id types.ColumnID) error {
	return c.do(ctx, http.MethodDelete, columnPath(id), nil, nil)
}

// CreateCard implements store.CardWriter
func (c *Client) CreateCard(ctx context.Context, columnID types.ColumnID, card models.NewCard) (types.CardID, error) {
	text, order := card.Text, card.Order
	var created createdDoc
	if err := c.do(ctx, http.MethodPost, cardsPath(columnID), cardBody{Text: &text, Order: &order}, &created); err != nil {
		return "", err
	}
	return types.CardID(created.id()), nil
}

// UpdateCard implements store.CardWriter
func (c *Client) UpdateCard(ctx context.Context, columnID types.ColumnID, cardID types.CardID, patch models.CardPatch) error {
	return c.do(ctx, http.MethodPut, cardPath(columnID, cardID), cardBody{Text: patch.Text, Order: patch.Order}, nil)
}

// DeleteCard implements store.CardWriter
func (c *Client) DeleteCard(ctx context.Context, columnID types.ColumnID, cardID types.CardID) error {
	return c.do(ctx, http.MethodDelete, cardPath(columnID, cardID), nil, nil)
}

// Close releases idle connections
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// ============================================================================
// TRANSPORT
// ============================================================================

func columnsPath() string {
	return "/api/columns"
}

func columnPath(id types.ColumnID) string {
	return columnsPath() + "/" + url.PathEscape(id.String())
}

func cardsPath(columnID types.ColumnID) string {
	return columnPath(columnID) + "/cards"
}

func cardPath(columnID types.ColumnID, cardID types.CardID) string {
	return cardsPath(columnID) + "/" + url.PathEscape(cardID.String())
}

// do sends one request. in is JSON-encoded when non-nil; out is decoded from
// a 2xx body when non-nil. Empty 2xx bodies are accepted.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(method, path, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding %s %s: %w", method, path, err)
	}
	return nil
}

func decodeError(method, path string, resp *http.Response) error {
	apiErr := &APIError{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
	var doc errorDoc
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if json.Unmarshal(data, &doc) == nil && doc.Message != "" {
		apiErr.Message = doc.Message
	}
	return apiErr
}
