package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"corrispettivi/internal/port"
)

// Option names owned by this service in the store options table.
const (
	optionSelectedStatuses = "corrispettivi_order_statuses"
	optionNoticeDismissed  = "corrispettivi_notice_dismissed"
)

type settingsRepo struct {
	db     *sqlx.DB
	prefix string
}

// NewSettingsRepo creates a MySQL-backed SettingsRepository over the store
// options table.
func NewSettingsRepo(db *sqlx.DB, tablePrefix string) port.SettingsRepository {
	return &settingsRepo{db: db, prefix: tablePrefix}
}

func (r *settingsRepo) SelectedStatuses(ctx context.Context) ([]string, error) {
	raw, found, err := r.getOption(ctx, optionSelectedStatuses)
	if err != nil || !found || raw == "" {
		return nil, err
	}
	var statuses []string
	if err := json.Unmarshal([]byte(raw), &statuses); err != nil {
		return nil, fmt.Errorf("settingsRepo.SelectedStatuses decode: %w", err)
	}
	return statuses, nil
}

func (r *settingsRepo) SaveSelectedStatuses(ctx context.Context, statuses []string) error {
	raw, err := json.Marshal(statuses)
	if err != nil {
		return fmt.Errorf("settingsRepo.SaveSelectedStatuses encode: %w", err)
	}
	return r.setOption(ctx, optionSelectedStatuses, string(raw))
}

func (r *settingsRepo) NoticeDismissed(ctx context.Context) (bool, error) {
	raw, found, err := r.getOption(ctx, optionNoticeDismissed)
	if err != nil {
		return false, err
	}
	return found && raw == "yes", nil
}

func (r *settingsRepo) DismissNotice(ctx context.Context) error {
	return r.setOption(ctx, optionNoticeDismissed, "yes")
}

func (r *settingsRepo) getOption(ctx context.Context, name string) (string, bool, error) {
	var value string
	query := fmt.Sprintf(
		`SELECT option_value FROM %soptions WHERE option_name = ?`, r.prefix)
	err := r.db.GetContext(ctx, &value, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("settingsRepo.getOption %s: %w", name, err)
	}
	return value, true, nil
}

func (r *settingsRepo) setOption(ctx context.Context, name, value string) error {
	query := fmt.Sprintf(
		`INSERT INTO %soptions (option_name, option_value, autoload)
		 VALUES (?, ?, 'no')
		 ON DUPLICATE KEY UPDATE option_value = VALUES(option_value)`, r.prefix)
	if _, err := r.db.ExecContext(ctx, query, name, value); err != nil {
		return fmt.Errorf("settingsRepo.setOption %s: %w", name, err)
	}
	return nil
}
