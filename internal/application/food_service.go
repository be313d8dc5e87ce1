// internal/application/food_service.go
package application

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/mahabubulhasibshawon/foodadmin/internal/domain"
	"github.com/mahabubulhasibshawon/foodadmin/internal/ports"
)

const MaxImageBytes = 5 << 20

// FoodService fronts the backend catalog. Lists are fetched per view and
// never kept between requests.
type FoodService struct {
	backend ports.AdminBackendPort
	session *SessionService
	logger  *slog.Logger
}

func NewFoodService(backend ports.AdminBackendPort, session *SessionService, logger *slog.Logger) *FoodService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FoodService{backend: backend, session: session, logger: logger}
}

func (s *FoodService) token() (string, error) {
	token, ok := s.session.Token()
	if !ok {
		return "", domain.ErrNoSession
	}
	return token, nil
}

func (s *FoodService) ListFoods(ctx context.Context) ([]domain.FoodItem, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	foods, err := s.backend.ListFoods(ctx, token)
	if err != nil {
		s.session.ExpireOnUnauthorized(ctx, err)
		return nil, err
	}
	return foods, nil
}

func (s *FoodService) GetFood(ctx context.Context, id string) (*domain.FoodItem, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	food, err := s.backend.GetFood(ctx, token, id)
	if err != nil {
		s.session.ExpireOnUnauthorized(ctx, err)
		return nil, err
	}
	return food, nil
}

func (s *FoodService) CreateFood(ctx context.Context, draft domain.FoodDraft, image *domain.Image) error {
	if image == nil {
		return &domain.ValidationError{Field: "image", Message: "Please select an image"}
	}
	if err := ValidateImage(*image); err != nil {
		return err
	}
	draft, err := ValidateDraft(draft)
	if err != nil {
		return err
	}
	token, err := s.token()
	if err != nil {
		return err
	}
	if err := s.backend.CreateFood(ctx, token, draft, *image); err != nil {
		s.session.ExpireOnUnauthorized(ctx, err)
		return err
	}
	s.logger.Info("food_created", "name", draft.Name)
	return nil
}

// UpdateFood sends the new metadata. image may be nil only when the stored
// item already has an image; the backend's copy decides that.
func (s *FoodService) UpdateFood(ctx context.Context, id string, draft domain.FoodDraft, image *domain.Image) error {
	token, err := s.token()
	if err != nil {
		return err
	}
	if image != nil {
		if err := ValidateImage(*image); err != nil {
			return err
		}
	} else {
		current, err := s.backend.GetFood(ctx, token, id)
		if err != nil {
			s.session.ExpireOnUnauthorized(ctx, err)
			return err
		}
		if current.ImageURL == "" {
			return &domain.ValidationError{Field: "image", Message: "Please select an image"}
		}
	}
	draft, err = ValidateDraft(draft)
	if err != nil {
		return err
	}
	if err := s.backend.UpdateFood(ctx, token, id, draft, image); err != nil {
		s.session.ExpireOnUnauthorized(ctx, err)
		return err
	}
	s.logger.Info("food_updated", "id", id)
	return nil
}

// DeleteFood removes the item. Callers refetch the list to show the result.
func (s *FoodService) DeleteFood(ctx context.Context, id string) error {
	token, err := s.token()
	if err != nil {
		return err
	}
	if err := s.backend.DeleteFood(ctx, token, id); err != nil {
		s.session.ExpireOnUnauthorized(ctx, err)
		return err
	}
	s.logger.Info("food_deleted", "id", id)
	return nil
}

// FilterFoods keeps items whose name contains search (case-insensitive) and
// whose category equals category. domain.AllCategories or "" matches any category.
func FilterFoods(items []domain.FoodItem, search, category string) []domain.FoodItem {
	needle := strings.ToLower(search)
	out := make([]domain.FoodItem, 0, len(items))
	for _, it := range items {
		if !strings.Contains(strings.ToLower(it.Name), needle) {
			continue
		}
		if category != "" && category != domain.AllCategories && it.Category != category {
			continue
		}
		out = append(out, it)
	}
	return out
}

// FilterCategories returns "All" followed by each distinct category in order of first appearance.
func FilterCategories(items []domain.FoodItem) []string {
	out := []string{domain.AllCategories}
	seen := map[string]bool{domain.AllCategories: true}
	for _, it := range items {
		if seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		out = append(out, it.Category)
	}
	return out
}

// ValidateDraft trims text fields and checks them in form order.
func ValidateDraft(d domain.FoodDraft) (domain.FoodDraft, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	switch {
	case d.Name == "":
		return d, &domain.ValidationError{Field: "name", Message: "Please enter food name"}
	case d.Description == "":
		return d, &domain.ValidationError{Field: "description", Message: "Please enter food description"}
	case d.Category == "":
		return d, &domain.ValidationError{Field: "category", Message: "Please select a category"}
	case !domain.IsKnownCategory(d.Category):
		return d, &domain.ValidationError{Field: "category", Message: "Unknown category"}
	case !(d.Price > 0) || math.IsInf(d.Price, 0):
		return d, &domain.ValidationError{Field: "price", Message: "Please enter a valid price"}
	}
	return d, nil
}

func ValidateImage(img domain.Image) error {
	if len(img.Data) == 0 {
		return &domain.ValidationError{Field: "image", Message: "Please select an image"}
	}
	if len(img.Data) > MaxImageBytes {
		return &domain.ValidationError{Field: "image", Message: "Image size should be less than 5MB"}
	}
	if !strings.HasPrefix(img.ContentType, "image/") {
		return &domain.ValidationError{Field: "image", Message: "Please select a valid image file"}
	}
	return nil
}
