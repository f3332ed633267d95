package commands_test

import (
	"context"
	"testing"
	"time"

	"bookmarket/internal/core/application/usecases/commands"
	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/core/domain/model/listing"
	"bookmarket/internal/core/domain/model/order"
	"bookmarket/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) NextID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllDeliveredBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockListingRepository struct{ mock.Mock }

func (m *MockListingRepository) Add(ctx context.Context, aggregate *listing.Listing) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockListingRepository) Update(ctx context.Context, aggregate *listing.Listing) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockListingRepository) Get(ctx context.Context, id int64) (*listing.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Listing), args.Error(1)
}

type MockStatusRepository struct{ mock.Mock }

func (m *MockStatusRepository) GetByDomainAndCode(ctx context.Context, domain, code string) (int64, error) {
	args := m.Called(ctx, domain, code)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockListingUoW struct{ mock.Mock }

func (m *MockListingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockListingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockListingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockListingUoW) ListingRepository() ports.ListingRepository {
	args := m.Called()
	return args.Get(0).(ports.ListingRepository)
}

func (m *MockListingUoW) StatusRepository() ports.StatusRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusRepository)
}

type MockListingUoWFactory struct{ mock.Mock }

func (m *MockListingUoWFactory) Create() commands.ListingUoW {
	args := m.Called()
	return args.Get(0).(commands.ListingUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ListingRepository() ports.ListingRepository {
	args := m.Called()
	return args.Get(0).(ports.ListingRepository)
}

func (m *MockUoW) StatusRepository() ports.StatusRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyOrderChanged(ctx context.Context, event ports.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

const (
	testBuyerID  int64 = 10
	testSellerID int64 = 20
	testAdminID  int64 = 99
)

func userActor(t *testing.T, id int64) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, kernel.RoleUser)
	require.NoError(t, err)
	return actor
}

func adminActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(testAdminID, kernel.RoleAdmin)
	require.NoError(t, err)
	return actor
}

func orderAt(t *testing.T, status order.Status, versionCounter uint64) *order.Order {
	t.Helper()
	aggregate, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:              1,
		BuyerID:         testBuyerID,
		SellerID:        testSellerID,
		ListingID:       5,
		TotalAmount:     1500,
		PaymentKind:     order.BankTransfer,
		Status:          status,
		ShippingAddress: "221B Baker Street",
		CreatedAt:       time.Now().UTC(),
		RowVersion:      kernel.RowVersionFromCounter(versionCounter),
	})
	require.NoError(t, err)
	return aggregate
}

func listingAt(t *testing.T, statusID int64, versionCounter uint64) *listing.Listing {
	t.Helper()
	aggregate, err := listing.RestoreListing(listing.RestoreListingParams{
		ID:         5,
		SellerID:   testSellerID,
		BookID:     7,
		Price:      1500,
		StatusID:   statusID,
		RowVersion: kernel.RowVersionFromCounter(versionCounter),
	})
	require.NoError(t, err)
	return aggregate
}
