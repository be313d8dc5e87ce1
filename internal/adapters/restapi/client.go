// internal/adapters/restapi/client.go
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mahabubulhasibshawon/foodadmin/internal/domain"
	"github.com/mahabubulhasibshawon/foodadmin/internal/ports"
)

// StatusError is a non-2xx answer from the backend.
type StatusError struct {
	Op   string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: backend returned %d", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: backend returned %d: %s", e.Op, e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	switch e.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	}
	return nil
}

type Client struct {
	base   *url.URL
	http   *http.Client
	logger *slog.Logger
}

// New returns a client for the backend at baseURL. A zero timeout means
// requests wait until the transport resolves.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend url %q needs scheme and host", baseURL)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{base: u, http: &http.Client{Timeout: timeout}, logger: logger}, nil
}

var _ ports.AdminBackendPort = (*Client)(nil)

func (c *Client) endpoint(segments ...string) string {
	u := *c.base
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	u.Path = c.base.Path + "/api/admin/" + strings.Join(escaped, "/")
	return u.String()
}

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("login"), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("backend_request_failed", "op", "login", "error", err.Error())
		return "", fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("login_rejected", "status", resp.StatusCode)
		return "", fmt.Errorf("login: backend returned %d: %w", resp.StatusCode, domain.ErrInvalidCredentials)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("login: decode response: %w", err)
	}
	return out.Token, nil
}

func (c *Client) ListFoods(ctx context.Context, token string) ([]domain.FoodItem, error) {
	var out []foodDTO
	if err := c.doJSON(ctx, "list foods", http.MethodGet, c.endpoint("foods"), token, nil, "", &out); err != nil {
		return nil, err
	}
	foods := make([]domain.FoodItem, 0, len(out))
	for _, f := range out {
		foods = append(foods, f.toDomain())
	}
	return foods, nil
}

func (c *Client) GetFood(ctx context.Context, token, id string) (*domain.FoodItem, error) {
	var out foodDTO
	if err := c.doJSON(ctx, "get food", http.MethodGet, c.endpoint("foods", id), token, nil, "", &out); err != nil {
		return nil, err
	}
	food := out.toDomain()
	return &food, nil
}

func (c *Client) CreateFood(ctx context.Context, token string, draft domain.FoodDraft, image domain.Image) error {
	body, contentType, err := foodForm(draft, &image)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, "create food", http.MethodPost, c.endpoint("foods"), token, body, contentType, nil)
}

func (c *Client) UpdateFood(ctx context.Context, token, id string, draft domain.FoodDraft, image *domain.Image) error {
	body, contentType, err := foodForm(draft, image)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, "update food", http.MethodPut, c.endpoint("foods", id), token, body, contentType, nil)
}

func (c *Client) DeleteFood(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, "delete food", http.MethodDelete, c.endpoint("foods", id), token, nil, "", nil)
}

func (c *Client) ListOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var out []orderDTO
	if err := c.doJSON(ctx, "list orders", http.MethodGet, c.endpoint("orders", "all"), token, nil, "", &out); err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(out))
	for _, o := range out {
		orders = append(orders, o.toDomain())
	}
	return orders, nil
}

// UpdateOrderStatus sends the status as a query parameter with an empty body.
func (c *Client) UpdateOrderStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) error {
	target := c.endpoint("orders", "status", orderID) + "?" + url.Values{"status": {string(status)}}.Encode()
	return c.doJSON(ctx, "update order status", http.MethodPatch, target, token, nil, "", nil)
}

func (c *Client) doJSON(ctx context.Context, op, method, target, token string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("backend_request_failed", "op", op, "error", err.Error())
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()
	c.logger.Debug("backend_request", "op", op, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		serr := &StatusError{Op: op, Code: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
		c.logger.Warn("backend_status", "op", op, "status", resp.StatusCode)
		return serr
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// foodForm builds the multipart body: a "food" part holding the JSON
// metadata and an optional "file" part holding the image.
func foodForm(draft domain.FoodDraft, image *domain.Image) (io.Reader, string, error) {
	meta, err := json.Marshal(draft)
	if err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("food", string(meta)); err != nil {
		return nil, "", err
	}
	if image != nil {
		h := make(textproto.MIMEHeader)
		filename := image.Filename
		if filename == "" {
			filename = "image"
		}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
		h.Set("Content-Type", image.ContentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(image.Data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// flexID accepts identifiers encoded either as JSON strings or numbers.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("id must be a string or number")
	}
	*f = flexID(n.String())
	return nil
}

type foodDTO struct {
	ID          flexID  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

func (f foodDTO) toDomain() domain.FoodItem {
	return domain.FoodItem{
		ID:          string(f.ID),
		Name:        f.Name,
		Description: f.Description,
		Category:    f.Category,
		Price:       f.Price,
		ImageURL:    f.ImageURL,
	}
}

type orderDTO struct {
	ID           flexID `json:"id"`
	OrderedItems []struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
	} `json:"orderedItems"`
	UserAddress string      `json:"userAddress"`
	Amount      json.Number `json:"amount"`
	OrderStatus string      `json:"orderStatus"`
}

func (o orderDTO) toDomain() domain.Order {
	items := make([]domain.OrderedItem, 0, len(o.OrderedItems))
	for _, it := range o.OrderedItems {
		items = append(items, domain.OrderedItem{Name: it.Name, Quantity: it.Quantity})
	}
	return domain.Order{
		ID:           string(o.ID),
		OrderedItems: items,
		UserAddress:  o.UserAddress,
		Amount:       minorUnits(o.Amount),
		OrderStatus:  domain.OrderStatus(o.OrderStatus),
	}
}

func minorUnits(n json.Number) int64 {
	if v, err := n.Int64(); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(n.String(), 64); err == nil {
		return int64(f)
	}
	return 0
}
