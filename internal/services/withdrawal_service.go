package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/moncredit/admin-dashboard/internal/core"
	"github.com/moncredit/admin-dashboard/internal/models"
)

type WithdrawalService struct {
	client *core.Client
}

func NewWithdrawalService(client *core.Client) *WithdrawalService {
	return &WithdrawalService{client: client}
}

func (s *WithdrawalService) List(ctx context.Context, token string, page int, status string) ([]models.Withdrawal, PageInfo, error) {
	query := url.Values{
		"page":   {strconv.Itoa(page)},
		"status": {status},
	}

	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Withdrawals []models.Withdrawal `json:"withdrawals"`
		} `json:"data"`
		Pages int `json:"pages"`
		Total int `json:"total"`
	}

	if err := s.client.Get(ctx, token, "/admin/pending-withdrawals", query, &env); err != nil {
		return nil, PageInfo{}, err
	}
	if err := checkSuccess(env.Success, env.Message); err != nil {
		return nil, PageInfo{}, err
	}
	return env.Data.Withdrawals, PageInfo{Pages: env.Pages, Total: env.Total}, nil
}

func (s *WithdrawalService) Detail(ctx context.Context, token string, id int) (*models.Withdrawal, error) {
	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Withdrawal models.Withdrawal `json:"withdrawal"`
		} `json:"data"`
	}

	path := fmt.Sprintf("/admin/withdrawal-detail/%d", id)
	if err := s.client.Get(ctx, token, path, nil, &env); err != nil {
		return nil, err
	}
	if err := checkSuccess(env.Success, env.Message); err != nil {
		return nil, err
	}
	return &env.Data.Withdrawal, nil
}

func (s *WithdrawalService) Approve(ctx context.Context, token string, id int) error {
	var env actionEnvelope
	path := fmt.Sprintf("/admin/approve-withdrawal/%d", id)
	if err := s.client.Post(ctx, token, path, nil, &env); err != nil {
		return err
	}
	return checkSuccess(env.Success, env.Message)
}

func (s *WithdrawalService) Reject(ctx context.Context, token string, id int, reason string) error {
	var env actionEnvelope
	path := fmt.Sprintf("/admin/reject-withdrawal/%d", id)
	if err := s.client.Post(ctx, token, path, map[string]string{"reason": reason}, &env); err != nil {
		return err
	}
	return checkSuccess(env.Success, env.Message)
}
