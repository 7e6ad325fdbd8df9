// Package services maps each admin API resource to a thin set of typed
// calls on the core client. Query parameters and request bodies pass
// through unchanged; response envelopes are unwrapped here so handlers
// only ever see canonical models.
package services

import (
	"context"

	"github.com/moncredit/admin-dashboard/internal/core"
	"github.com/moncredit/admin-dashboard/internal/models"
)

type AuthService struct {
	client *core.Client
}

func NewAuthService(client *core.Client) *AuthService {
	return &AuthService{client: client}
}

// Login authenticates an operator against the core platform and returns
// the operator identity plus the bearer token for subsequent calls.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Admin, string, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}

	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Admin models.Admin `json:"admin"`
			Token string       `json:"token"`
		} `json:"data"`
	}

	if err := s.client.Post(ctx, "", "/admin/login", body, &env); err != nil {
		return nil, "", err
	}
	if err := checkSuccess(env.Success, env.Message); err != nil {
		return nil, "", err
	}
	return &env.Data.Admin, env.Data.Token, nil
}
