package services

import (
	"context"

	"github.com/moncredit/admin-dashboard/internal/core"
	"github.com/moncredit/admin-dashboard/internal/models"
)

type DashboardService struct {
	client *core.Client
}

func NewDashboardService(client *core.Client) *DashboardService {
	return &DashboardService{client: client}
}

func (s *DashboardService) Stats(ctx context.Context, token string) (*models.DashboardStats, error) {
	var env struct {
		Success bool                  `json:"success"`
		Message string                `json:"message"`
		Data    models.DashboardStats `json:"data"`
	}

	if err := s.client.Get(ctx, token, "/admin/dashboard", nil, &env); err != nil {
		return nil, err
	}
	if err := checkSuccess(env.Success, env.Message); err != nil {
		return nil, err
	}
	return &env.Data, nil
}
