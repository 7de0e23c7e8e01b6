package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// HTTP talks to a hosted record store exposing a PostgREST-style surface, the
// kind the managed backends put in front of their tables. Rows are filtered
// with `column=eq.value` query operators.
type HTTP struct {
	base  string
	key   string
	token string
	hc    *http.Client
	log   *zap.Logger
}

// NewHTTP builds a client for the hosted store at baseURL authenticated with
// the project key.
func NewHTTP(baseURL, key string, log *zap.Logger) *HTTP {
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTP{
		base: strings.TrimRight(baseURL, "/"),
		key:  key,
		hc:   &http.Client{Timeout: 15 * time.Second},
		log:  log,
	}
}

var _ Interface = (*HTTP)(nil)

// SetToken switches the bearer credential to the signed-in session token so
// row-level ownership policies apply. An empty token falls back to the
// project key.
func (c *HTTP) SetToken(token string) {
	c.token = token
}

func (c *HTTP) List(ctx context.Context, table, ownerID string) ([]Record, error) {
	if err := validTable(table); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("owner_id", "eq."+ownerID)
	q.Set("select", "*")
	body, err := c.do(ctx, http.MethodGet, table, q, nil, "")
	if err != nil {
		return nil, err
	}
	var out []Record
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("remote: decode %s list: %w", table, err)
	}
	return out, nil
}

func (c *HTTP) Insert(ctx context.Context, table string, rec Record) (Record, error) {
	if err := validTable(table); err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodPost, table, nil, []Record{rec}, "return=representation")
	if err != nil {
		return nil, err
	}
	var rows []Record
	if err := json.Unmarshal(body, &rows); err != nil || len(rows) == 0 {
		return nil, fmt.Errorf("remote: insert into %s returned no row", table)
	}
	return rows[0], nil
}

func (c *HTTP) Update(ctx context.Context, table, id string, partial Record) error {
	if err := validTable(table); err != nil {
		return err
	}
	q := url.Values{}
	q.Set("id", "eq."+id)
	_, err := c.do(ctx, http.MethodPatch, table, q, partial, "")
	return err
}

func (c *HTTP) Delete(ctx context.Context, table, id string) error {
	if err := validTable(table); err != nil {
		return err
	}
	q := url.Values{}
	q.Set("id", "eq."+id)
	_, err := c.do(ctx, http.MethodDelete, table, q, nil, "")
	return err
}

func (c *HTTP) Upsert(ctx context.Context, table, key string, rec Record) error {
	if err := validTable(table); err != nil {
		return err
	}
	q := url.Values{}
	q.Set("on_conflict", "owner_id,date")
	_, err := c.do(ctx, http.MethodPost, table, q, []Record{rec}, "resolution=merge-duplicates")
	return err
}

func (c *HTTP) do(ctx context.Context, method, table string, q url.Values, payload any, prefer string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.base, table)
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.key)
	bearer := c.token
	if bearer == "" {
		bearer = c.key
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote: %s %s: %w", method, table, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("remote: read %s response: %w", table, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("remote call failed",
			zap.String("method", method),
			zap.String("table", table),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("remote: %s %s: status %d", method, table, resp.StatusCode)
	}
	return data, nil
}
