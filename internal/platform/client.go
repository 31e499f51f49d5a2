// Package platform is a read-mostly REST client for the QRT Closure
// Platform. The platform owns all state; this client fetches journal
// entries, documents and reports, uploads source documents and triggers
// regeneration. Requests are rate limited and GET responses are cached for
// a short TTL so repeated diagnostics don't hammer the server.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/qrt-closure/qrtrecon/internal/model"
)

const (
	defaultTimeout = 15 * time.Second
	cacheTTL       = 30 * time.Second
	requestsPerSec = 5
	requestBurst   = 10
)

// Client calls the platform REST API with bearer-token authentication.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *gocache.Cache
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a Client for baseURL authenticating with token. The
// token may be empty for login/register calls.
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
		limiter:    rate.NewLimiter(requestsPerSec, requestBurst),
		cache:      gocache.New(cacheTTL, time.Minute),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one API request and decodes the JSON response into out (which
// may be nil). Non-2xx responses become *APIError.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var body errorResponse
		if json.Unmarshal(data, &body) == nil {
			if body.Error != "" {
				apiErr.Message = body.Error
			} else {
				apiErr.Message = body.Message
			}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// getJSON performs a cached GET. Cache entries are invalidated by TTL and
// by any DELETE or generate call through this client.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if raw, ok := c.cache.Get(path); ok {
		return json.Unmarshal(raw.([]byte), out)
	}

	var payload json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, "", &payload); err != nil {
		return err
	}
	c.cache.SetDefault(path, []byte(payload))
	return json.Unmarshal(payload, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	return c.do(ctx, http.MethodPost, path, body, "application/json", out)
}

// ListJournalEntries fetches every journal entry visible to the token's
// tenant.
func (c *Client) ListJournalEntries(ctx context.Context) ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	if err := c.getJSON(ctx, "/api/journal-entries", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListDocuments fetches the tenant's uploaded documents.
func (c *Client) ListDocuments(ctx context.Context) ([]model.Document, error) {
	var docs []model.Document
	if err := c.getJSON(ctx, "/api/documents", &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// DeleteJournalEntry removes one journal entry by id.
func (c *Client) DeleteJournalEntry(ctx context.Context, id string) error {
	defer c.cache.Flush()
	return c.do(ctx, http.MethodDelete, "/api/journal-entries/"+url.PathEscape(id), nil, "", nil)
}

// DeleteDocument removes one document by id.
func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	defer c.cache.Flush()
	return c.do(ctx, http.MethodDelete, "/api/documents/"+url.PathEscape(id), nil, "", nil)
}

// GenerateJournalEntries asks the platform to regenerate journal entries
// from the period's documents.
func (c *Client) GenerateJournalEntries(ctx context.Context, period string) (GenerateResult, error) {
	defer c.cache.Flush()
	var result GenerateResult
	err := c.postJSON(ctx, "/api/journal-entries/generate", reportRequest{Period: period}, &result)
	return result, err
}

// TrialBalance fetches the platform's trial balance report for a period.
func (c *Client) TrialBalance(ctx context.Context, period string) ([]model.TrialBalanceEntry, error) {
	var rows []model.TrialBalanceEntry
	err := c.postJSON(ctx, "/api/reports/trial-balance", reportRequest{Period: period}, &rows)
	return rows, err
}

// ProfitLoss fetches the profit & loss statement for a period.
func (c *Client) ProfitLoss(ctx context.Context, period string) (FinancialReport, error) {
	var report FinancialReport
	err := c.postJSON(ctx, "/api/reports/profit-loss", reportRequest{Period: period}, &report)
	return report, err
}

// BalanceSheet fetches the balance sheet for a period.
func (c *Client) BalanceSheet(ctx context.Context, period string) (FinancialReport, error) {
	var report FinancialReport
	err := c.postJSON(ctx, "/api/reports/balance-sheet", reportRequest{Period: period}, &report)
	return report, err
}

// CashFlow fetches the cash flow statement for a period.
func (c *Client) CashFlow(ctx context.Context, period string) (FinancialReport, error) {
	var report FinancialReport
	err := c.postJSON(ctx, "/api/reports/cash-flow", reportRequest{Period: period}, &report)
	return report, err
}

// UploadDocument uploads a source document as multipart form data with
// fields file, documentType and period.
func (c *Client) UploadDocument(ctx context.Context, path string, docType model.DocumentType, period string) (model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return model.Document{}, fmt.Errorf("building multipart form: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return model.Document{}, fmt.Errorf("copying document: %w", err)
	}
	if err := mw.WriteField("documentType", string(docType)); err != nil {
		return model.Document{}, fmt.Errorf("writing documentType field: %w", err)
	}
	if err := mw.WriteField("period", period); err != nil {
		return model.Document{}, fmt.Errorf("writing period field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return model.Document{}, fmt.Errorf("closing multipart form: %w", err)
	}

	defer c.cache.Flush()
	var doc model.Document
	if err := c.do(ctx, http.MethodPost, "/api/documents/upload", &buf, mw.FormDataContentType(), &doc); err != nil {
		return model.Document{}, err
	}
	return doc, nil
}

// CurrentUser fetches the principal behind the configured token.
func (c *Client) CurrentUser(ctx context.Context) (User, error) {
	var user User
	err := c.getJSON(ctx, "/api/auth/user", &user)
	return user, err
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	if err := c.postJSON(ctx, "/api/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register creates a platform account.
func (c *Client) Register(ctx context.Context, email, password, company string) (User, error) {
	var user User
	err := c.postJSON(ctx, "/api/auth/register", registerRequest{Email: email, Password: password, Company: company}, &user)
	return user, err
}
