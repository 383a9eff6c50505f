// Package services contains application services for the EventHive CLI.
// This file defines the authentication service: OTP issuance, OTP login,
// lazy session validity, and logout.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/eventhive/internal/client/api"
	"github.com/dmitrijs2005/eventhive/internal/client/models"
	"github.com/dmitrijs2005/eventhive/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - SendOtp: ask the backend to email a one-time password; stores nothing.
//   - Login: verify the OTP and persist the issued session.
//   - Logout: drop the stored session.
//   - IsAuthenticated: lazy expiry check; may clear the session as a side
//     effect (see session.Manager).
//   - Current: the stored session, nil when logged out.
type AuthService interface {
	SendOtp(ctx context.Context, email string) (string, error)
	Login(ctx context.Context, email, otp string) error
	Logout(ctx context.Context) error
	IsAuthenticated() bool
	Current() (*models.Session, error)
}

type authService struct {
	client   api.Client
	sessions *session.Manager
}

// NewAuthService constructs an AuthService bound to the given API client
// and session manager.
func NewAuthService(client api.Client, sessions *session.Manager) AuthService {
	return &authService{client: client, sessions: sessions}
}

// SendOtp triggers OTP issuance and returns the server's message for
// display ("An OTP has been sent to ...").
func (a *authService) SendOtp(ctx context.Context, email string) (string, error) {
	resp, err := a.client.SendOtp(ctx, email)
	if err != nil {
		return "", fmt.Errorf("send otp error: %w", err)
	}
	if !resp.Success {
		return "", fmt.Errorf("send otp rejected: %s", resp.Message)
	}
	return resp.Message, nil
}

// Login verifies the OTP and persists {token, name, email, roles}. Expiry
// is not tracked here; it is checked lazily on IsAuthenticated.
func (a *authService) Login(ctx context.Context, email, otp string) error {
	resp, err := a.client.LoginWithOtp(ctx, email, otp)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	if resp.AccessToken == "" {
		return fmt.Errorf("login error: no token in response")
	}

	s := &models.Session{
		AccessToken: resp.AccessToken,
		Name:        resp.Name,
		Email:       resp.Email,
		Roles:       resp.Roles,
	}
	if err := a.sessions.Set(s); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

// Logout clears the stored session.
func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Clear()
}

func (a *authService) IsAuthenticated() bool {
	return a.sessions.IsAuthenticated()
}

func (a *authService) Current() (*models.Session, error) {
	return a.sessions.Current()
}
