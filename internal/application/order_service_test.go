// internal/application/order_service_test.go
package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mahabubulhasibshawon/foodadmin/internal/domain"
	"github.com/mahabubulhasibshawon/foodadmin/internal/ports"
)

func pizzaOrder(status domain.OrderStatus) domain.Order {
	return domain.Order{
		ID:           "1",
		OrderedItems: []domain.OrderedItem{{Name: "Pizza", Quantity: 2}},
		UserAddress:  "12 Baker Street",
		Amount:       50000,
		OrderStatus:  status,
	}
}

func newOrderFixture(t *testing.T) (*gomock.Controller, *ports.MockAdminBackendPort, *OrderService, *Notices) {
	ctrl := gomock.NewController(t)
	mockBackend := ports.NewMockAdminBackendPort(ctrl)
	session := NewSessionService(mockBackend, &memStore{}, discard)
	session.SetToken("T1")
	notices := NewNotices()
	return ctrl, mockBackend, NewOrderService(mockBackend, session, notices, discard), notices
}

func TestOrderService_Refresh(t *testing.T) {
	ctrl, mockBackend, svc, _ := newOrderFixture(t)
	defer ctrl.Finish()

	mockBackend.EXPECT().ListOrders(gomock.Any(), "T1").Return([]domain.Order{pizzaOrder(domain.StatusFoodPreparing)}, nil)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() unexpected error: %v", err)
	}

	mockBackend.EXPECT().ListOrders(gomock.Any(), "T1").Return(nil, errors.New("backend down"))
	if err := svc.Refresh(context.Background()); err == nil {
		t.Fatalf("Refresh() error = nil, want failure")
	}
	if got := svc.Orders(); len(got) != 1 || got[0].ID != "1" {
		t.Errorf("Refresh() failure replaced list: %v", got)
	}
}

func TestOrderService_SetStatusOptimisticThenReconcile(t *testing.T) {
	ctrl, mockBackend, svc, notices := newOrderFixture(t)
	defer ctrl.Finish()

	mockBackend.EXPECT().ListOrders(gomock.Any(), "T1").Return([]domain.Order{pizzaOrder(domain.StatusFoodPreparing)}, nil)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() unexpected error: %v", err)
	}

	release := make(chan struct{})
	mockBackend.EXPECT().
		UpdateOrderStatus(gomock.Any(), "T1", "1", domain.StatusDelivered).
		DoAndReturn(func(ctx context.Context, token, id string, st domain.OrderStatus) error {
			<-release
			return errors.New("connection reset")
		})
	mockBackend.EXPECT().ListOrders(gomock.Any(), "T1").Return([]domain.Order{pizzaOrder(domain.StatusFoodPreparing)}, nil)

	if err := svc.SetStatus(context.Background(), "1", domain.StatusDelivered); err != nil {
		t.Fatalf("SetStatus() unexpected error: %v", err)
	}
	if got := svc.Orders()[0].OrderStatus; got != domain.StatusDelivered {
		t.Fatalf("before resolve: status = %q, want %q", got, domain.StatusDelivered)
	}

	close(release)
	svc.Wait()

	if got := svc.Orders()[0].OrderStatus; got != domain.StatusFoodPreparing {
		t.Errorf("after reconcile: status = %q, want backend value %q", got, domain.StatusFoodPreparing)
	}
	drained := notices.Drain()
	if len(drained) == 0 || drained[0].Level != NoticeError {
		t.Errorf("expected an error notice, got %v", drained)
	}
}

func TestOrderService_SetStatus(t *testing.T) {
	tests := []struct {
		name       string
		orderID    string
		status     domain.OrderStatus
		mockSetup  func(m *ports.MockAdminBackendPort)
		wantErr    error
		wantStatus domain.OrderStatus
	}{
		{
			name:    "Success keeps optimistic value without refetch",
			orderID: "1",
			status:  domain.StatusOutForDelivery,
			mockSetup: func(m *ports.MockAdminBackendPort) {
				m.EXPECT().UpdateOrderStatus(gomock.Any(), "T1", "1", domain.StatusOutForDelivery).Return(nil)
			},
			wantStatus: domain.StatusOutForDelivery,
		},
		{
			name:    "Unknown order leaves list unchanged",
			orderID: "99",
			status:  domain.StatusDelivered,
			mockSetup: func(m *ports.MockAdminBackendPort) {
				m.EXPECT().UpdateOrderStatus(gomock.Any(), "T1", "99", domain.StatusDelivered).Return(nil)
			},
			wantStatus: domain.StatusFoodPreparing,
		},
		{
			name:       "Invalid status rejected",
			orderID:    "1",
			status:     domain.OrderStatus("Cancelled"),
			mockSetup:  func(m *ports.MockAdminBackendPort) {},
			wantErr:    domain.ErrValidation,
			wantStatus: domain.StatusFoodPreparing,
		},
		{
			name:    "Backend failure with failed refetch keeps local state",
			orderID: "1",
			status:  domain.StatusDelivered,
			mockSetup: func(m *ports.MockAdminBackendPort) {
				m.EXPECT().UpdateOrderStatus(gomock.Any(), "T1", "1", domain.StatusDelivered).Return(errors.New("500"))
				m.EXPECT().ListOrders(gomock.Any(), "T1").Return(nil, errors.New("still down"))
			},
			wantStatus: domain.StatusDelivered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, mockBackend, svc, _ := newOrderFixture(t)
			defer ctrl.Finish()

			mockBackend.EXPECT().ListOrders(gomock.Any(), "T1").Return([]domain.Order{pizzaOrder(domain.StatusFoodPreparing)}, nil)
			if err := svc.Refresh(context.Background()); err != nil {
				t.Fatalf("Refresh() unexpected error: %v", err)
			}
			tt.mockSetup(mockBackend)

			err := svc.SetStatus(context.Background(), tt.orderID, tt.status)
			svc.Wait()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SetStatus() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("SetStatus() unexpected error: %v", err)
			}
			if got := svc.Orders()[0].OrderStatus; got != tt.wantStatus {
				t.Errorf("SetStatus() status = %q, want %q", got, tt.wantStatus)
			}
		})
	}
}

func TestOrderService_SupersededFailureSkipsReconcile(t *testing.T) {
	ctrl, mockBackend, svc, _ := newOrderFixture(t)
	defer ctrl.Finish()

	mockBackend.EXPECT().ListOrders(gomock.Any(), "T1").Return([]domain.Order{pizzaOrder(domain.StatusFoodPreparing)}, nil)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() unexpected error: %v", err)
	}

	release := make(chan struct{})
	mockBackend.EXPECT().
		UpdateOrderStatus(gomock.Any(), "T1", "1", domain.StatusOutForDelivery).
		DoAndReturn(func(ctx context.Context, token, id string, st domain.OrderStatus) error {
			<-release
			return errors.New("timeout")
		})
	mockBackend.EXPECT().UpdateOrderStatus(gomock.Any(), "T1", "1", domain.StatusDelivered).Return(nil)
	// no ListOrders: the failed first change is superseded by the second

	if err := svc.SetStatus(context.Background(), "1", domain.StatusOutForDelivery); err != nil {
		t.Fatalf("SetStatus() unexpected error: %v", err)
	}
	if err := svc.SetStatus(context.Background(), "1", domain.StatusDelivered); err != nil {
		t.Fatalf("SetStatus() unexpected error: %v", err)
	}
	close(release)
	svc.Wait()

	if got := svc.Orders()[0].OrderStatus; got != domain.StatusDelivered {
		t.Errorf("status = %q, want %q", got, domain.StatusDelivered)
	}
}

func TestOrderService_SameStatusTwice(t *testing.T) {
	ctrl, mockBackend, svc, _ := newOrderFixture(t)
	defer ctrl.Finish()

	mockBackend.EXPECT().ListOrders(gomock.Any(), "T1").Return([]domain.Order{pizzaOrder(domain.StatusFoodPreparing)}, nil)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() unexpected error: %v", err)
	}
	mockBackend.EXPECT().UpdateOrderStatus(gomock.Any(), "T1", "1", domain.StatusDelivered).Return(nil).Times(2)

	for i := 0; i < 2; i++ {
		if err := svc.SetStatus(context.Background(), "1", domain.StatusDelivered); err != nil {
			t.Fatalf("SetStatus() unexpected error: %v", err)
		}
	}
	svc.Wait()
	if got := svc.Orders()[0].OrderStatus; got != domain.StatusDelivered {
		t.Errorf("status = %q, want %q", got, domain.StatusDelivered)
	}
}

func TestOrderService_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := ports.NewMockAdminBackendPort(ctrl)
	session := NewSessionService(mockBackend, &memStore{}, discard)
	svc := NewOrderService(mockBackend, session, NewNotices(), discard)

	if err := svc.Refresh(context.Background()); !errors.Is(err, domain.ErrNoSession) {
		t.Errorf("Refresh() error = %v, want ErrNoSession", err)
	}
	if err := svc.SetStatus(context.Background(), "1", domain.StatusDelivered); !errors.Is(err, domain.ErrNoSession) {
		t.Errorf("SetStatus() error = %v, want ErrNoSession", err)
	}
}

func TestOrderService_UnauthorizedForcesLogout(t *testing.T) {
	ctrl, mockBackend, svc, _ := newOrderFixture(t)
	defer ctrl.Finish()

	mockBackend.EXPECT().UpdateOrderStatus(gomock.Any(), "T1", "1", domain.StatusDelivered).Return(domain.ErrUnauthorized)

	if err := svc.SetStatus(context.Background(), "1", domain.StatusDelivered); err != nil {
		t.Fatalf("SetStatus() unexpected error: %v", err)
	}
	svc.Wait()
	if svc.session.State().IsAuthenticated() {
		t.Errorf("session still authenticated after 401")
	}
}
