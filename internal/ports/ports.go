// internal/ports/ports.go
package ports

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=ports

import (
	"context"

	"github.com/mahabubulhasibshawon/foodadmin/internal/domain"
)

// AdminBackendPort is the REST backend the console manages.
type AdminBackendPort interface {
	Login(ctx context.Context, creds domain.Credentials) (string, error)
	ListFoods(ctx context.Context, token string) ([]domain.FoodItem, error)
	GetFood(ctx context.Context, token, id string) (*domain.FoodItem, error)
	CreateFood(ctx context.Context, token string, draft domain.FoodDraft, image domain.Image) error
	UpdateFood(ctx context.Context, token, id string, draft domain.FoodDraft, image *domain.Image) error
	DeleteFood(ctx context.Context, token, id string) error
	ListOrders(ctx context.Context, token string) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) error
}

// TokenStorePort persists the single session token under a well-known key.
// Load returns "" with a nil error when nothing is stored.
type TokenStorePort interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
