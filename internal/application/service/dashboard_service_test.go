package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/andresproyectosx24/chayotex/internal/domain/entity"
	"github.com/andresproyectosx24/chayotex/internal/domain/repository"
)

type fakeAnalyticsRepo struct {
	stats       repository.DashboardStats
	sales       []entity.Sale
	settlements []entity.Settlement
	lastLimit   int
}

func (f *fakeAnalyticsRepo) Stats(ctx context.Context) (*repository.DashboardStats, error) {
	s := f.stats
	return &s, nil
}

func (f *fakeAnalyticsRepo) RecentSales(ctx context.Context, limit int) ([]entity.Sale, error) {
	f.lastLimit = limit
	if limit < len(f.sales) {
		return f.sales[:limit], nil
	}
	return f.sales, nil
}

func (f *fakeAnalyticsRepo) RecentSettlements(ctx context.Context, limit int) ([]entity.Settlement, error) {
	if limit < len(f.settlements) {
		return f.settlements[:limit], nil
	}
	return f.settlements, nil
}

func TestGetDashboard(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		stats: repository.DashboardStats{
			SalesToday:  decimal.NewFromInt(1500),
			Receivables: decimal.NewFromInt(4200),
			StockBoxes:  370,
		},
		sales:       make([]entity.Sale, 8),
		settlements: make([]entity.Settlement, 2),
	}
	svc := NewDashboardService(repo)

	data, err := svc.GetDashboard(context.Background())
	if err != nil {
		t.Fatalf("GetDashboard error: %v", err)
	}

	if data.Stats.SalesToday.String() != "1500" || data.Stats.StockBoxes != 370 {
		t.Fatalf("unexpected stats: %+v", data.Stats)
	}
	if len(data.RecentSales) != recentActivityLimit {
		t.Fatalf("recent sales should be capped at %d, got %d", recentActivityLimit, len(data.RecentSales))
	}
	if repo.lastLimit != recentActivityLimit {
		t.Fatalf("expected limit %d passed to repo, got %d", recentActivityLimit, repo.lastLimit)
	}
	if len(data.RecentSettlements) != 2 {
		t.Fatalf("expected 2 recent settlements, got %d", len(data.RecentSettlements))
	}
}
