package repository

import (
	"context"
	"time"

	"github.com/andresproyectosx24/chayotex/internal/domain/entity"
	"github.com/andresproyectosx24/chayotex/internal/domain/enum"
	domainRepo "github.com/andresproyectosx24/chayotex/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// Stats computes the home dashboard figures: total sold today, the sum of
// outstanding balances on pending notes, and boxes on hand across the
// whole warehouse.
func (r *analyticsRepository) Stats(ctx context.Context) (*domainRepo.DashboardStats, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var salesToday decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Select("SUM(total)").
		Where("fecha >= ? AND fecha < ?", dayStart, dayEnd).
		Scan(&salesToday).Error
	if err != nil {
		return nil, err
	}

	var receivables decimal.NullDecimal
	err = r.db.WithContext(ctx).Model(&entity.Sale{}).
		Select("SUM(saldo_pendiente)").
		Where("estado_pago = ?", enum.PaymentPending).
		Scan(&receivables).Error
	if err != nil {
		return nil, err
	}

	var stockBoxes int64
	err = r.db.WithContext(ctx).Model(&entity.InventoryItem{}).
		Select("COALESCE(SUM(stock_cajas), 0)").
		Scan(&stockBoxes).Error
	if err != nil {
		return nil, err
	}

	stats := &domainRepo.DashboardStats{StockBoxes: stockBoxes}
	if salesToday.Valid {
		stats.SalesToday = salesToday.Decimal
	}
	if receivables.Valid {
		stats.Receivables = receivables.Decimal
	}
	return stats, nil
}

func (r *analyticsRepository) RecentSales(ctx context.Context, limit int) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Order("fecha DESC").
		Limit(limit).
		Find(&sales).Error
	return sales, err
}

func (r *analyticsRepository) RecentSettlements(ctx context.Context, limit int) ([]entity.Settlement, error) {
	var settlements []entity.Settlement
	err := r.db.WithContext(ctx).
		Order("fecha_registro DESC").
		Limit(limit).
		Find(&settlements).Error
	return settlements, err
}
