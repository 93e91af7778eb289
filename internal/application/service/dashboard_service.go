package service

import (
	"context"

	"github.com/andresproyectosx24/chayotex/internal/domain/entity"
	"github.com/andresproyectosx24/chayotex/internal/domain/repository"
)

const recentActivityLimit = 5

// DashboardService assembles the home screen figures
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// DashboardData is the full home dashboard payload
type DashboardData struct {
	Stats             *repository.DashboardStats `json:"stats"`
	RecentSales       []entity.Sale              `json:"ventas_recientes"`
	RecentSettlements []entity.Settlement        `json:"liquidaciones_recientes"`
}

// GetDashboard returns today's totals plus the latest movements
func (s *DashboardService) GetDashboard(ctx context.Context) (*DashboardData, error) {
	stats, err := s.analyticsRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	recentSales, err := s.analyticsRepo.RecentSales(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	recentSettlements, err := s.analyticsRepo.RecentSettlements(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		Stats:             stats,
		RecentSales:       recentSales,
		RecentSettlements: recentSettlements,
	}, nil
}
