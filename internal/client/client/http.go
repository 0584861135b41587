package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/pomokeeper/internal/client/models"
	"github.com/dmitrijs2005/pomokeeper/internal/common"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu      sync.Mutex
	session string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Session() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

func (c *HTTPClient) SetSession(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = token
}

// send performs the request and returns the response of a 2xx answer. The
// caller closes the body.
func (c *HTTPClient) send(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session := c.Session(); session != "" {
		req.AddCookie(&http.Cookie{Name: common.AuthCookieName, Value: session})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, decodeError(resp)
	}
	return resp, nil
}

func decodeError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	b, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(b, &body); err != nil || body.Error == "" {
		body.Error = strings.TrimSpace(string(b))
		if body.Error == "" {
			body.Error = resp.Status
		}
	}
	return &APIError{Status: resp.StatusCode, Message: body.Error}
}

// call sends a JSON request and decodes the answer into out, if non-nil.
func (c *HTTPClient) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	resp, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, password []byte) error {
	resp, err := c.send(ctx, http.MethodPost, "/api/auth", nil, map[string]string{"password": string(password)})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	for _, cookie := range resp.Cookies() {
		if cookie.Name == common.AuthCookieName && cookie.Value != "" {
			c.SetSession(cookie.Value)
			return nil
		}
	}
	return errors.New("login answer carried no session cookie")
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	err := c.call(ctx, http.MethodDelete, "/api/auth", nil, nil, nil)
	c.SetSession("")
	return err
}

func (c *HTTPClient) Authenticated(ctx context.Context) (bool, error) {
	var out struct {
		Authenticated bool `json:"authenticated"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/auth", nil, nil, &out); err != nil {
		return false, err
	}
	return out.Authenticated, nil
}

func (c *HTTPClient) Timer(ctx context.Context) (*models.Timer, error) {
	var t *models.Timer
	if err := c.call(ctx, http.MethodGet, "/api/timer", nil, nil, &t); err != nil {
		return nil, err
	}
	return t, nil
}

func (c *HTTPClient) StartTimer(ctx context.Context, in models.StartTimer) (*models.Timer, error) {
	var t models.Timer
	if err := c.call(ctx, http.MethodPost, "/api/timer", nil, in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) UpdateTimer(ctx context.Context, u models.TimerUpdate) (*models.Timer, error) {
	var t models.Timer
	if err := c.call(ctx, http.MethodPut, "/api/timer", nil, u.Body(), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) StopTimer(ctx context.Context, save bool) (*models.Entry, error) {
	var out struct {
		Success bool          `json:"success"`
		Entry   *models.Entry `json:"entry"`
	}
	q := url.Values{"save": {strconv.FormatBool(save)}}
	if err := c.call(ctx, http.MethodDelete, "/api/timer", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Entry, nil
}

func (c *HTTPClient) Clients(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	if err := c.call(ctx, http.MethodGet, "/api/clients", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Projects(ctx context.Context, clientID string) ([]models.Project, error) {
	var q url.Values
	if clientID != "" {
		q = url.Values{"clientId": {clientID}}
	}
	var out []models.Project
	if err := c.call(ctx, http.MethodGet, "/api/projects", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func entryValues(q models.EntryQuery) url.Values {
	v := url.Values{}
	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	set("projectId", q.ProjectID)
	set("clientId", q.ClientID)
	set("dateFrom", q.DateFrom)
	set("dateTo", q.DateTo)
	if q.Invoiced != nil {
		v.Set("invoiced", strconv.FormatBool(*q.Invoiced))
	}
	return v
}

func (c *HTTPClient) Entries(ctx context.Context, q models.EntryQuery) ([]models.Entry, error) {
	var out []models.Entry
	if err := c.call(ctx, http.MethodGet, "/api/entries", entryValues(q), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateEntry(ctx context.Context, in models.NewEntry) (*models.Entry, error) {
	var e models.Entry
	if err := c.call(ctx, http.MethodPost, "/api/entries", nil, in, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// ExportCSV copies the CSV export for q into w.
func (c *HTTPClient) ExportCSV(ctx context.Context, q models.EntryQuery, w io.Writer) error {
	resp, err := c.send(ctx, http.MethodGet, "/api/entries/export.csv", entryValues(q), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, err = io.Copy(w, resp.Body)
	return err
}

func (c *HTTPClient) PublishExport(ctx context.Context, q models.EntryQuery) (*models.Export, error) {
	var out models.Export
	if err := c.call(ctx, http.MethodPost, "/api/exports", entryValues(q), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Settings(ctx context.Context) (*models.Settings, error) {
	var out models.Settings
	if err := c.call(ctx, http.MethodGet, "/api/settings", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateSettings(ctx context.Context, s models.Settings) (*models.Settings, error) {
	var out models.Settings
	if err := c.call(ctx, http.MethodPut, "/api/settings", nil, s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
