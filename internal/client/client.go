package client

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

	"task-manager-crud/internal/domain"
)

// Error is returned for any non-2xx response. Op names the failed operation.
type Error struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("failed to %s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("failed to %s: status %d: %s", e.Op, e.StatusCode, e.Message)
}

// Client is a typed wrapper over the REST API. It holds no resource state
// and never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Client for the API rooted at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ping returns the server greeting
func (c *Client) Ping(ctx context.Context) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, "ping", http.MethodGet, "/api/ping", nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// TaskUpdate carries the task fields to change; nil fields are left alone.
type TaskUpdate struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

func (c *Client) FetchTasks(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	err := c.do(ctx, "fetch tasks", http.MethodGet, "/api/tasks", nil, &tasks)
	return tasks, err
}

func (c *Client) CreateTask(ctx context.Context, title string) (domain.Task, error) {
	var task domain.Task
	err := c.do(ctx, "create task", http.MethodPost, "/api/tasks", map[string]string{"title": title}, &task)
	return task, err
}

func (c *Client) UpdateTask(ctx context.Context, id string, update TaskUpdate) (domain.Task, error) {
	var task domain.Task
	err := c.do(ctx, "update task", http.MethodPut, "/api/tasks/"+url.PathEscape(id), update, &task)
	return task, err
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, "delete task", http.MethodDelete, "/api/tasks/"+url.PathEscape(id), nil, nil)
}

// UserUpdate carries the user fields to change; nil fields are left alone.
type UserUpdate struct {
	Name  *string      `json:"name,omitempty"`
	Email *string      `json:"email,omitempty"`
	Role  *domain.Role `json:"role,omitempty"`
}

func (c *Client) FetchUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := c.do(ctx, "fetch users", http.MethodGet, "/api/users", nil, &users)
	return users, err
}

// CreateUser sends role as given; an empty role lets the server apply its default.
func (c *Client) CreateUser(ctx context.Context, name, email string, role domain.Role) (domain.User, error) {
	body := map[string]string{"name": name, "email": email}
	if role != "" {
		body["role"] = string(role)
	}

	var user domain.User
	err := c.do(ctx, "create user", http.MethodPost, "/api/users", body, &user)
	return user, err
}

func (c *Client) UpdateUser(ctx context.Context, id string, update UserUpdate) (domain.User, error) {
	var user domain.User
	err := c.do(ctx, "update user", http.MethodPut, "/api/users/"+url.PathEscape(id), update, &user)
	return user, err
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, "delete user", http.MethodDelete, "/api/users/"+url.PathEscape(id), nil, nil)
}

// ProductInput is the full set of fields needed to create a product
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
}

// ProductUpdate carries the product fields to change; nil fields are left alone.
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Category    *string  `json:"category,omitempty"`
}

func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := c.do(ctx, "fetch products", http.MethodGet, "/api/products", nil, &products)
	return products, err
}

func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (domain.Product, error) {
	var product domain.Product
	err := c.do(ctx, "create product", http.MethodPost, "/api/products", input, &product)
	return product, err
}

func (c *Client) UpdateProduct(ctx context.Context, id string, update ProductUpdate) (domain.Product, error) {
	var product domain.Product
	err := c.do(ctx, "update product", http.MethodPut, "/api/products/"+url.PathEscape(id), update, &product)
	return product, err
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, "delete product", http.MethodDelete, "/api/products/"+url.PathEscape(id), nil, nil)
}

// do issues one request. body is JSON encoded when non-nil; out receives
// the decoded response when non-nil.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to %s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Op: op, StatusCode: resp.StatusCode}
		var errBody struct {
			Message string `json:"message"`
		}
		if json.NewDecoder(resp.Body).Decode(&errBody) == nil {
			apiErr.Message = errBody.Message
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to %s: decode response: %w", op, err)
	}
	return nil
}
