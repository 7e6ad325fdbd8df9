package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/moncredit/admin-dashboard/internal/core"
	"github.com/moncredit/admin-dashboard/internal/models"
)

type LoanService struct {
	client *core.Client
}

func NewLoanService(client *core.Client) *LoanService {
	return &LoanService{client: client}
}

type loanListEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Loans []models.Loan `json:"loans"`
	} `json:"data"`
	Pages int `json:"pages"`
	Total int `json:"total"`
}

// ListPending serves the pending/approved/rejected/completed filters.
// The "active" filter has its own endpoint, see ListActive.
func (s *LoanService) ListPending(ctx context.Context, token string, page int, status string) ([]models.Loan, PageInfo, error) {
	query := url.Values{
		"page":   {strconv.Itoa(page)},
		"status": {status},
	}
	return s.list(ctx, token, "/admin/pending-loans", query)
}

func (s *LoanService) ListActive(ctx context.Context, token string, page int) ([]models.Loan, PageInfo, error) {
	query := url.Values{"page": {strconv.Itoa(page)}}
	return s.list(ctx, token, "/admin/active-loans", query)
}

func (s *LoanService) list(ctx context.Context, token, path string, query url.Values) ([]models.Loan, PageInfo, error) {
	var env loanListEnvelope
	if err := s.client.Get(ctx, token, path, query, &env); err != nil {
		return nil, PageInfo{}, err
	}
	if err := checkSuccess(env.Success, env.Message); err != nil {
		return nil, PageInfo{}, err
	}
	return env.Data.Loans, PageInfo{Pages: env.Pages, Total: env.Total}, nil
}

func (s *LoanService) Detail(ctx context.Context, token string, loanID int) (*models.Loan, error) {
	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Loan models.Loan `json:"loan"`
		} `json:"data"`
	}

	path := fmt.Sprintf("/admin/loan-detail/%d", loanID)
	if err := s.client.Get(ctx, token, path, nil, &env); err != nil {
		return nil, err
	}
	if err := checkSuccess(env.Success, env.Message); err != nil {
		return nil, err
	}
	return &env.Data.Loan, nil
}

func (s *LoanService) Approve(ctx context.Context, token string, loanID int) error {
	var env actionEnvelope
	path := fmt.Sprintf("/admin/approve-loan/%d", loanID)
	if err := s.client.Post(ctx, token, path, nil, &env); err != nil {
		return err
	}
	return checkSuccess(env.Success, env.Message)
}

func (s *LoanService) Reject(ctx context.Context, token string, loanID int, reason string) error {
	var env actionEnvelope
	path := fmt.Sprintf("/admin/reject-loan/%d", loanID)
	if err := s.client.Post(ctx, token, path, map[string]string{"reason": reason}, &env); err != nil {
		return err
	}
	return checkSuccess(env.Success, env.Message)
}
