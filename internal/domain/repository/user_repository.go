package repository

import (
	"context"

	"github.com/andresproyectosx24/chayotex/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}

// IdempotencyRepository defines the interface for idempotency key storage
type IdempotencyRepository interface {
	Create(ctx context.Context, key *entity.IdempotencyKey) error
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	DeleteExpired(ctx context.Context) error
}

// AnalyticsRepository aggregates the figures shown on the home dashboard.
type AnalyticsRepository interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	RecentSales(ctx context.Context, limit int) ([]entity.Sale, error)
	RecentSettlements(ctx context.Context, limit int) ([]entity.Settlement, error)
}

// DashboardStats is the home page aggregation: today's sales total,
// outstanding receivables, and total boxes in the warehouse.
type DashboardStats struct {
	SalesToday  decimal.Decimal `json:"ventas_hoy"`
	Receivables decimal.Decimal `json:"por_cobrar"`
	StockBoxes  int64           `json:"inventario"`
}
