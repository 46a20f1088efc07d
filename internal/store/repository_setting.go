package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pmarkota/mystery-back/internal/logger"
	"github.com/pmarkota/mystery-back/models"
)

// settingRepository is the PostgreSQL-backed implementation of
// [SettingRepository]. Writes are upserts keyed on setting_name, so creating
// and updating a setting are the same operation.
type settingRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSettingRepository constructs a [SettingRepository] backed by the
// provided database connection and logger.
func NewSettingRepository(db *DB, logger *logger.Logger) SettingRepository {
	logger.Debug().Msg("creating setting repository")
	return &settingRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertSetting writes a single setting and returns the stored row.
func (r *settingRepository) UpsertSetting(ctx context.Context, name, value string) (models.GlobalSetting, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSettingQuery(name, value)
	if err != nil {
		log.Err(err).Str("func", "*settingRepository.UpsertSetting").Msg("failed to create query")
		return models.GlobalSetting{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var setting models.GlobalSetting
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&setting.Name, &setting.Value, &setting.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*settingRepository.UpsertSetting").Str("setting_name", name).Msg("failed to upsert setting")
		return models.GlobalSetting{}, r.db.wrapDriverError(err)
	}

	return setting, nil
}

// UpsertSettings writes several settings inside one transaction and returns
// the stored rows. Either every given setting is written or none is.
func (r *settingRepository) UpsertSettings(ctx context.Context, settings map[string]string) ([]models.GlobalSetting, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*settingRepository.UpsertSettings").Msg("error during opening transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	results := make([]models.GlobalSetting, 0, len(settings))
	for name, value := range settings {
		query, args, buildErr := buildUpsertSettingQuery(name, value)
		if buildErr != nil {
			log.Err(buildErr).Str("func", "*settingRepository.UpsertSettings").Str("setting_name", name).Msg("failed to create query")
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		var setting models.GlobalSetting
		if scanErr := tx.QueryRowContext(ctx, query, args...).Scan(&setting.Name, &setting.Value, &setting.UpdatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*settingRepository.UpsertSettings").Str("setting_name", name).Msg("failed to upsert setting")
			return nil, r.db.wrapDriverError(scanErr)
		}

		results = append(results, setting)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*settingRepository.UpsertSettings").Msg("error during committing transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return results, nil
}

// GetSetting retrieves a single setting by name.
//
// Returns [ErrNoSettingWasFound] when no row matches; callers decide
// whether a default applies.
func (r *settingRepository) GetSetting(ctx context.Context, name string) (models.GlobalSetting, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSettingsQuery([]string{name})
	if err != nil {
		log.Err(err).Str("func", "*settingRepository.GetSetting").Msg("failed to create query")
		return models.GlobalSetting{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var setting models.GlobalSetting
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&setting.Name, &setting.Value, &setting.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.GlobalSetting{}, ErrNoSettingWasFound
		}
		log.Err(err).Str("func", "*settingRepository.GetSetting").Str("setting_name", name).Msg("failed to read setting")
		return models.GlobalSetting{}, r.db.wrapDriverError(err)
	}

	return setting, nil
}

// GetSettings retrieves the subset of the given setting names that exist.
// Missing names are simply absent from the result.
func (r *settingRepository) GetSettings(ctx context.Context, names []string) ([]models.GlobalSetting, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSettingsQuery(names)
	if err != nil {
		log.Err(err).Str("func", "*settingRepository.GetSettings").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*settingRepository.GetSettings").Msg("failed to execute settings query")
		return nil, r.db.wrapDriverError(err)
	}
	defer rows.Close()

	results := make([]models.GlobalSetting, 0, len(names))
	for rows.Next() {
		var setting models.GlobalSetting
		if scanErr := rows.Scan(&setting.Name, &setting.Value, &setting.UpdatedAt); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, setting)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}
