package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"corrispettivi/internal/domain"
	"corrispettivi/internal/nonce"
	"corrispettivi/internal/service"
	"corrispettivi/mocks"
)

func newNonceService() *nonce.Service {
	return nonce.New("test-secret", "shop.example.com", 24*time.Hour)
}

func TestSettingsService_Statuses(t *testing.T) {
	repo := new(mocks.MockSettingsRepo)
	svc := service.NewSettingsService(repo, newNonceService())

	repo.On("SelectedStatuses", mock.Anything).Return([]string{"wc-processing"}, nil)

	sel, err := svc.Statuses(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"wc-processing", "wc-completed"}, sel.Selected)
	assert.Equal(t, domain.DefaultAllowedStatuses, sel.Allowed)
	repo.AssertExpectations(t)
}

func TestSettingsService_SaveStatuses_FiltersUnknown(t *testing.T) {
	repo := new(mocks.MockSettingsRepo)
	svc := service.NewSettingsService(repo, newNonceService())

	expected := []string{"wc-on-hold", "wc-completed"}
	repo.On("SaveSelectedStatuses", mock.Anything, expected).Return(nil)

	sel, err := svc.SaveStatuses(context.Background(), []string{"wc-on-hold", "draft", "wc-on-hold"})

	require.NoError(t, err)
	assert.Equal(t, expected, sel.Selected)
	repo.AssertExpectations(t)
}

func TestSettingsService_DismissNotice(t *testing.T) {
	repo := new(mocks.MockSettingsRepo)
	svc := service.NewSettingsService(repo, newNonceService())

	repo.On("DismissNotice", mock.Anything).Return(nil)

	token := svc.DismissNonce()
	err := svc.DismissNotice(context.Background(), token)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSettingsService_DismissNotice_InvalidNonce(t *testing.T) {
	repo := new(mocks.MockSettingsRepo)
	svc := service.NewSettingsService(repo, newNonceService())

	err := svc.DismissNotice(context.Background(), "0123456789")

	assert.ErrorIs(t, err, domain.ErrInvalidNonce)
	repo.AssertNotCalled(t, "DismissNotice", mock.Anything)
}

func TestSettingsService_NoticeDismissed(t *testing.T) {
	repo := new(mocks.MockSettingsRepo)
	svc := service.NewSettingsService(repo, newNonceService())

	repo.On("NoticeDismissed", mock.Anything).Return(true, nil)

	dismissed, err := svc.NoticeDismissed(context.Background())

	require.NoError(t, err)
	assert.True(t, dismissed)
}
