package service

import (
	"context"
	"fmt"

	"corrispettivi/internal/domain"
	"corrispettivi/internal/nonce"
	"corrispettivi/internal/port"
)

// dismissAction scopes the notice-dismiss nonce.
const dismissAction = "corrispettivi-dismiss-notice"

// StatusSelection is the current and allowed status sets.
type StatusSelection struct {
	Selected []string `json:"selected"`
	Allowed  []string `json:"allowed"`
}

// SettingsService manages the plugin-level settings.
type SettingsService interface {
	Statuses(ctx context.Context) (*StatusSelection, error)
	SaveStatuses(ctx context.Context, requested []string) (*StatusSelection, error)
	NoticeDismissed(ctx context.Context) (bool, error)
	DismissNotice(ctx context.Context, token string) error
	DismissNonce() string
}

type settingsService struct {
	settings port.SettingsRepository
	nonces   *nonce.Service
}

// NewSettingsService creates a new SettingsService implementation.
func NewSettingsService(settings port.SettingsRepository, nonces *nonce.Service) SettingsService {
	return &settingsService{settings: settings, nonces: nonces}
}

func (s *settingsService) Statuses(ctx context.Context) (*StatusSelection, error) {
	stored, err := s.settings.SelectedStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("settings.Statuses: %w", err)
	}
	return &StatusSelection{
		Selected: domain.SelectStatuses(stored, domain.DefaultAllowedStatuses),
		Allowed:  domain.DefaultAllowedStatuses,
	}, nil
}

func (s *settingsService) SaveStatuses(ctx context.Context, requested []string) (*StatusSelection, error) {
	selected := domain.SelectStatuses(requested, domain.DefaultAllowedStatuses)
	if err := s.settings.SaveSelectedStatuses(ctx, selected); err != nil {
		return nil, fmt.Errorf("settings.SaveStatuses: %w", err)
	}
	return &StatusSelection{
		Selected: selected,
		Allowed:  domain.DefaultAllowedStatuses,
	}, nil
}

func (s *settingsService) NoticeDismissed(ctx context.Context) (bool, error) {
	dismissed, err := s.settings.NoticeDismissed(ctx)
	if err != nil {
		return false, fmt.Errorf("settings.NoticeDismissed: %w", err)
	}
	return dismissed, nil
}

func (s *settingsService) DismissNotice(ctx context.Context, token string) error {
	if !s.nonces.Verify(token, dismissAction) {
		return domain.ErrInvalidNonce
	}
	if err := s.settings.DismissNotice(ctx); err != nil {
		return fmt.Errorf("settings.DismissNotice: %w", err)
	}
	return nil
}

func (s *settingsService) DismissNonce() string {
	return s.nonces.Create(dismissAction)
}
