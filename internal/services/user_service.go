package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/moncredit/admin-dashboard/internal/core"
	"github.com/moncredit/admin-dashboard/internal/models"
)

type UserService struct {
	client *core.Client
}

func NewUserService(client *core.Client) *UserService {
	return &UserService{client: client}
}

// UserFilter narrows the user list. Empty fields are omitted from the query.
type UserFilter struct {
	Search    string
	Status    string
	KYCStatus string
}

func (s *UserService) List(ctx context.Context, token string, page int, filter UserFilter) ([]models.User, PageInfo, error) {
	query := url.Values{"page": {strconv.Itoa(page)}}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.KYCStatus != "" {
		query.Set("kycStatus", filter.KYCStatus)
	}

	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Users []models.User `json:"users"`
		} `json:"data"`
		Pages int `json:"pages"`
		Total int `json:"total"`
	}

	if err := s.client.Get(ctx, token, "/admin/users", query, &env); err != nil {
		return nil, PageInfo{}, err
	}
	if err := checkSuccess(env.Success, env.Message); err != nil {
		return nil, PageInfo{}, err
	}
	return env.Data.Users, PageInfo{Pages: env.Pages, Total: env.Total}, nil
}

func (s *UserService) Detail(ctx context.Context, token string, userID int) (*models.User, error) {
	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			User models.User `json:"user"`
		} `json:"data"`
	}

	path := fmt.Sprintf("/admin/user/%d", userID)
	if err := s.client.Get(ctx, token, path, nil, &env); err != nil {
		return nil, err
	}
	if err := checkSuccess(env.Success, env.Message); err != nil {
		return nil, err
	}
	return &env.Data.User, nil
}

// Block suspends a user account. The core API accepts an optional reason;
// the dashboard currently never collects one for this action, the field is
// passed through as-is.
func (s *UserService) Block(ctx context.Context, token string, userID int, reason string) error {
	var env actionEnvelope
	path := fmt.Sprintf("/admin/user/%d/block", userID)
	if err := s.client.Put(ctx, token, path, map[string]string{"reason": reason}, &env); err != nil {
		return err
	}
	return checkSuccess(env.Success, env.Message)
}

func (s *UserService) Unblock(ctx context.Context, token string, userID int) error {
	var env actionEnvelope
	path := fmt.Sprintf("/admin/user/%d/unblock", userID)
	if err := s.client.Put(ctx, token, path, nil, &env); err != nil {
		return err
	}
	return checkSuccess(env.Success, env.Message)
}

func (s *UserService) SetCreditLimit(ctx context.Context, token string, userID int, limit int64) error {
	var env actionEnvelope
	path := fmt.Sprintf("/admin/set-credit-limit/%d", userID)
	if err := s.client.Post(ctx, token, path, map[string]int64{"creditLimit": limit}, &env); err != nil {
		return err
	}
	return checkSuccess(env.Success, env.Message)
}
