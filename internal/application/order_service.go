// internal/application/order_service.go
package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mahabubulhasibshawon/foodadmin/internal/domain"
	"github.com/mahabubulhasibshawon/foodadmin/internal/ports"
)

// OrderService holds the console's transient order list and applies status
// changes optimistically: the local list changes first, the backend is told
// afterwards, and any failure is reconciled by refetching the whole list.
type OrderService struct {
	backend ports.AdminBackendPort
	session *SessionService
	notices *Notices
	logger  *slog.Logger

	mu     sync.Mutex
	orders []domain.Order
	seq    map[string]uint64

	inflight sync.WaitGroup
}

func NewOrderService(backend ports.AdminBackendPort, session *SessionService, notices *Notices, logger *slog.Logger) *OrderService {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderService{
		backend: backend,
		session: session,
		notices: notices,
		logger:  logger,
		seq:     make(map[string]uint64),
	}
}

// Refresh replaces the local list with the backend's. On failure the
// previous list is kept.
func (s *OrderService) Refresh(ctx context.Context) error {
	token, ok := s.session.Token()
	if !ok {
		return domain.ErrNoSession
	}
	orders, err := s.backend.ListOrders(ctx, token)
	if err != nil {
		s.session.ExpireOnUnauthorized(ctx, err)
		return err
	}
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return nil
}

// Orders returns a snapshot of the local list.
func (s *OrderService) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// SetStatus rewrites the matching order locally and returns before the
// backend answers. The remote update is attempted exactly once.
func (s *OrderService) SetStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	if _, err := domain.ParseOrderStatus(string(status)); err != nil {
		return err
	}
	token, ok := s.session.Token()
	if !ok {
		return domain.ErrNoSession
	}

	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].OrderStatus = status
		}
	}
	s.seq[orderID]++
	mine := s.seq[orderID]
	s.mu.Unlock()

	bg := context.WithoutCancel(ctx)
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.push(bg, token, orderID, status, mine)
	}()
	return nil
}

func (s *OrderService) push(ctx context.Context, token, orderID string, status domain.OrderStatus, mine uint64) {
	err := s.backend.UpdateOrderStatus(ctx, token, orderID, status)
	if err == nil {
		s.logger.Info("order_status_updated", "order_id", orderID, "status", string(status))
		return
	}
	s.logger.Error("order_status_update_failed", "order_id", orderID, "status", string(status), "error", err.Error())
	s.notices.Error("Failed to update order status")
	if s.session.ExpireOnUnauthorized(ctx, err) {
		s.notices.Info("Session expired, please log in again")
		return
	}

	s.mu.Lock()
	superseded := s.seq[orderID] != mine
	s.mu.Unlock()
	if superseded {
		// a newer change to this order is in flight and owns the outcome
		s.logger.Debug("order_reconcile_skipped", "order_id", orderID, "seq", mine)
		return
	}
	if err := s.Refresh(ctx); err != nil {
		s.logger.Error("order_reconcile_failed", "order_id", orderID, "error", err.Error())
		s.notices.Error("Error while fetching orders")
	}
}

// Wait blocks until every in-flight status update has settled.
func (s *OrderService) Wait() {
	s.inflight.Wait()
}
