// Package client is a typed HTTP client for the storefront API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/snapshot/storefront/internal/core/domain"
)

const (
	defaultTimeout = 15 * time.Second
	headerUserID   = "x-user-id"
)

type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:5050".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

type OrderRequest struct {
	Items   []domain.OrderItem `json:"items"`
	Total   float64            `json:"total"`
	Name    string             `json:"name"`
	Email   string             `json:"email"`
	Address string             `json:"address"`
	Phone   string             `json:"phone"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type userEnvelope struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type contactEnvelope struct {
	Message string                 `json:"message"`
	Contact *domain.ContactMessage `json:"contact"`
}

type errorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func (c *Client) Signup(ctx context.Context, req SignupRequest) (*domain.User, error) {
	var out userEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/users/signup", "", req, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, error) {
	body := map[string]string{"email": email, "password": password}
	var out userEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/users/login", "", body, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(id), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListUsers(ctx context.Context, callerID string) ([]*domain.User, error) {
	var out []*domain.User
	if err := c.do(ctx, http.MethodGet, "/api/users/admin/users-list", callerID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ToggleAdmin(ctx context.Context, callerID, userID string) (*domain.User, error) {
	var out userEnvelope
	path := "/api/users/admin/users/" + url.PathEscape(userID) + "/toggle-admin"
	if err := c.do(ctx, http.MethodPut, path, callerID, nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *Client) DeleteUser(ctx context.Context, callerID, userID string) (*domain.User, error) {
	var out userEnvelope
	path := "/api/users/admin/users/" + url.PathEscape(userID)
	if err := c.do(ctx, http.MethodDelete, path, callerID, nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// ExportOrders streams the orders workbook into w.
func (c *Client) ExportOrders(ctx context.Context, callerID string, w io.Writer) error {
	return c.download(ctx, "/api/users/admin/export/orders", callerID, w)
}

// ExportContacts streams the contact messages workbook into w.
func (c *Client) ExportContacts(ctx context.Context, callerID string, w io.Writer) error {
	return c.download(ctx, "/api/users/admin/export/contacts", callerID, w)
}

func (c *Client) PlaceOrder(ctx context.Context, req OrderRequest) (*domain.Order, error) {
	var out domain.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	var out []*domain.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SendContact(ctx context.Context, req ContactRequest) (*domain.ContactMessage, error) {
	var out contactEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/contact", "", req, &out); err != nil {
		return nil, err
	}
	return out.Contact, nil
}

func (c *Client) ListContacts(ctx context.Context) ([]*domain.ContactMessage, error) {
	var out []*domain.ContactMessage
	if err := c.do(ctx, http.MethodGet, "/api/contact", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Product(ctx context.Context, id int) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+strconv.Itoa(id), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path, callerID string, in, out any) error {
	resp, err := c.send(ctx, method, path, callerID, in)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("storefront api: decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) download(ctx context.Context, path, callerID string, w io.Writer) error {
	resp, err := c.send(ctx, http.MethodGet, path, callerID, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("storefront api: download %s: %w", path, err)
	}
	return nil
}

// send performs the request and converts non-2xx responses into *APIError.
// On success the caller owns resp.Body.
func (c *Client) send(ctx context.Context, method, path, callerID string, in any) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("storefront api: encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("storefront api: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if callerID != "" {
		req.Header.Set(headerUserID, callerID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("storefront api: %s %s: %w", method, path, err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	var env errorEnvelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&env); err == nil && env.Error != "" {
		apiErr.Message = env.Error
		apiErr.Details = env.Details
	}
	return nil, apiErr
}
