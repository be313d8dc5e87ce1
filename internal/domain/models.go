// internal/domain/models.go
package domain

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrNoSession          = errors.New("no active session")
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type FoodItem struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       float64
	ImageURL    string
}

// FoodDraft is the metadata part of a create or update request.
type FoodDraft struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
}

// Image is an uploaded picture forwarded to the backend as the file part.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

type OrderedItem struct {
	Name     string
	Quantity int
}

type Order struct {
	ID           string
	OrderedItems []OrderedItem
	UserAddress  string
	Amount       int64
	OrderStatus  OrderStatus
}

// TotalQuantity sums the quantities of all ordered items.
func (o Order) TotalQuantity() int {
	total := 0
	for _, it := range o.OrderedItems {
		total += it.Quantity
	}
	return total
}

type OrderStatus string

const (
	StatusFoodPreparing  OrderStatus = "Food Preparing"
	StatusOutForDelivery OrderStatus = "Out For Delivery"
	StatusDelivered      OrderStatus = "Delivered"
)

// OrderStatuses lists every status in workflow order. Any status may follow any other.
var OrderStatuses = []OrderStatus{StatusFoodPreparing, StatusOutForDelivery, StatusDelivered}

func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range OrderStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", &ValidationError{Field: "status", Message: "unknown order status " + `"` + s + `"`}
}

type Category struct {
	Value string
	Label string
}

var Categories = []Category{
	{Value: "pizza", Label: "Pizza"},
	{Value: "burger", Label: "Burger"},
	{Value: "french-fries", Label: "French Fries"},
	{Value: "rolls", Label: "Rolls"},
	{Value: "sandwich", Label: "Sandwich"},
	{Value: "salad", Label: "Salad"},
	{Value: "pasta", Label: "Pasta"},
	{Value: "biriyani", Label: "Biriyani"},
	{Value: "rice", Label: "Rice"},
	{Value: "cake", Label: "Cake"},
	{Value: "icecream", Label: "Ice Cream"},
	{Value: "juice", Label: "Juice"},
	{Value: "beverages", Label: "Beverages"},
}

// AllCategories is the filter sentinel matching every category.
const AllCategories = "All"

func IsKnownCategory(value string) bool {
	for _, c := range Categories {
		if c.Value == value {
			return true
		}
	}
	return false
}

// ValidationError reports a single rejected field. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// SessionState is either Anonymous or Authenticated. The zero value is Anonymous.
type SessionState struct {
	token string
}

func Anonymous() SessionState {
	return SessionState{}
}

// Authenticated returns the authenticated state for token. A blank token yields Anonymous.
func Authenticated(token string) SessionState {
	return SessionState{token: strings.TrimSpace(token)}
}

func (s SessionState) IsAuthenticated() bool {
	return s.token != ""
}

// Token returns the bearer token and whether one is present.
func (s SessionState) Token() (string, bool) {
	return s.token, s.token != ""
}

func (s SessionState) String() string {
	if s.IsAuthenticated() {
		return "authenticated"
	}
	return "anonymous"
}
