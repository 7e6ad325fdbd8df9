package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/moncredit/admin-dashboard/internal/core"
	"github.com/moncredit/admin-dashboard/internal/models"
)

type KYCService struct {
	client *core.Client
}

func NewKYCService(client *core.Client) *KYCService {
	return &KYCService{client: client}
}

func (s *KYCService) List(ctx context.Context, token string, page int, status string) ([]models.KYCRecord, PageInfo, error) {
	query := url.Values{
		"page":   {strconv.Itoa(page)},
		"status": {status},
	}

	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Users []models.KYCRecord `json:"users"`
		} `json:"data"`
		Pages int `json:"pages"`
		Total int `json:"total"`
	}

	if err := s.client.Get(ctx, token, "/admin/pending-kyc", query, &env); err != nil {
		return nil, PageInfo{}, err
	}
	if err := checkSuccess(env.Success, env.Message); err != nil {
		return nil, PageInfo{}, err
	}
	return env.Data.Users, PageInfo{Pages: env.Pages, Total: env.Total}, nil
}

func (s *KYCService) Detail(ctx context.Context, token string, userID int) (*models.KYCRecord, error) {
	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			User models.KYCRecord `json:"user"`
		} `json:"data"`
	}

	path := fmt.Sprintf("/admin/kyc-detail/%d", userID)
	if err := s.client.Get(ctx, token, path, nil, &env); err != nil {
		return nil, err
	}
	if err := checkSuccess(env.Success, env.Message); err != nil {
		return nil, err
	}
	return &env.Data.User, nil
}

func (s *KYCService) Approve(ctx context.Context, token string, userID int) error {
	var env actionEnvelope
	path := fmt.Sprintf("/admin/approve-kyc/%d", userID)
	if err := s.client.Post(ctx, token, path, nil, &env); err != nil {
		return err
	}
	return checkSuccess(env.Success, env.Message)
}

func (s *KYCService) Reject(ctx context.Context, token string, userID int, reason string) error {
	var env actionEnvelope
	path := fmt.Sprintf("/admin/reject-kyc/%d", userID)
	if err := s.client.Post(ctx, token, path, map[string]string{"reason": reason}, &env); err != nil {
		return err
	}
	return checkSuccess(env.Success, env.Message)
}
