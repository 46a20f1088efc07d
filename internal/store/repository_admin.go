package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/pmarkota/mystery-back/internal/logger"
	"github.com/pmarkota/mystery-back/models"
)

// adminRepository is the PostgreSQL-backed implementation of
// [AdminRepository]. It handles administrator account creation and lookup
// against the "admins" table.
type adminRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdminRepository constructs an [AdminRepository] backed by the provided
// database connection and logger.
func NewAdminRepository(db *DB, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAdmin persists a new administrator record and returns the fully
// populated [models.Admin] with server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrAdminAlreadyExists].
//   - Any other driver-level error → classified and wrapped.
func (r *adminRepository) CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAdmin, admin.Username, admin.PasswordHash)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*adminRepository.CreateAdmin").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Admin{}, ErrAdminAlreadyExists
		default:
			return models.Admin{}, r.db.wrapDriverError(err)
		}
	}

	if err := row.Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Admin{}, ErrAdminAlreadyExists
		}
		log.Err(err).Str("func", "*adminRepository.CreateAdmin").Msg("error: scanning error")
		return models.Admin{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return admin, nil
}

// FindAdminByUsername retrieves the administrator whose username matches the
// given one, compared case-insensitively (exact match, not substring).
//
// Returns [ErrNoAdminWasFound] when no row matches.
func (r *adminRepository) FindAdminByUsername(ctx context.Context, username string) (models.Admin, error) {
	log := logger.FromContext(ctx)

	var foundAdmin models.Admin
	row := r.db.QueryRowContext(ctx, findAdminByUsername, username)

	if err := row.Scan(&foundAdmin.ID, &foundAdmin.Username, &foundAdmin.PasswordHash, &foundAdmin.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Admin{}, ErrNoAdminWasFound
		}
		log.Err(err).Str("func", "*adminRepository.FindAdminByUsername").Msg("error: scanning error")
		return models.Admin{}, r.db.wrapDriverError(err)
	}

	return foundAdmin, nil
}

// CountAdmins returns the number of administrator accounts. Used at startup
// to decide whether the configured bootstrap admin must be created.
func (r *adminRepository) CountAdmins(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, countAdmins).Scan(&count); err != nil {
		log.Err(err).Str("func", "*adminRepository.CountAdmins").Msg("failed to count admins")
		return 0, r.db.wrapDriverError(err)
	}

	return count, nil
}
