package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pmarkota/mystery-back/internal/logger"
	"github.com/pmarkota/mystery-back/models"
)

// boxRepository is the PostgreSQL-backed implementation of [BoxRepository].
// It executes mystery-box reads and the transactional selection workflow
// against the "mystery_boxes" and "users" tables.
type boxRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBoxRepository constructs a [BoxRepository] backed by the provided
// database connection and logger.
func NewBoxRepository(db *DB, logger *logger.Logger) BoxRepository {
	logger.Debug().Msg("creating box repository")
	return &boxRepository{
		db:     db,
		logger: logger,
	}
}

// GetBoxes retrieves every mystery box ordered by ID.
func (r *boxRepository) GetBoxes(ctx context.Context) ([]models.MysteryBox, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getBoxes)
	if err != nil {
		log.Err(err).Str("func", "*boxRepository.GetBoxes").Msg("failed to execute query for getting boxes")
		return nil, r.db.wrapDriverError(err)
	}
	defer rows.Close()

	return scanBoxes(rows)
}

// GetBox retrieves a mystery box by primary key.
//
// Returns [ErrNoBoxWasFound] when no row matches.
func (r *boxRepository) GetBox(ctx context.Context, boxID int64) (models.MysteryBox, error) {
	log := logger.FromContext(ctx)

	var box models.MysteryBox
	row := r.db.QueryRowContext(ctx, getBoxByID, boxID)

	if err := row.Scan(&box.ID, &box.Name, &box.Description, &box.ImageURL, &box.SelectedBy, &box.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MysteryBox{}, ErrNoBoxWasFound
		}
		log.Err(err).Str("func", "*boxRepository.GetBox").Int64("box_id", boxID).Msg("error: scanning error")
		return models.MysteryBox{}, r.db.wrapDriverError(err)
	}

	return box, nil
}

// SubmitSelection runs the credit-deduction / box-selection workflow inside
// a single transaction. Either every requested box becomes owned by userID
// AND len(boxIDs) credits are deducted, or nothing changes.
//
// Exclusivity is enforced by the store itself: the ownership UPDATE only
// touches rows whose selected_by is NULL, so a box concurrently grabbed by
// another request simply does not match and the whole submission fails with
// [ErrBoxUnavailable]. No separate lock service is needed.
//
// Returns the selected boxes and the user's remaining credit balance, or:
//   - [ErrBoxUnavailable] if any requested box is missing or already
//     selected (including identical resubmissions after success);
//   - [ErrInsufficientCredits] if the balance would drop below zero;
//   - [ErrNoUserWasFound] if the user does not exist;
//   - a wrapped low-level error on any driver failure.
func (r *boxRepository) SubmitSelection(ctx context.Context, userID int64, boxIDs []int64) ([]models.MysteryBox, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBoxesQuery(userID, boxIDs)
	if err != nil {
		log.Err(err).Str("func", "*boxRepository.SubmitSelection").Msg("failed to create query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*boxRepository.SubmitSelection").Msg("error during opening transaction")
		return nil, 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// claim ownership of every requested, still-free box
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*boxRepository.SubmitSelection").Int64("user_id", userID).Msg("failed to execute box ownership update")
		return nil, 0, r.db.wrapDriverError(err)
	}

	selectedBoxes, err := scanBoxes(rows)
	rows.Close()
	if err != nil {
		return nil, 0, err
	}

	if len(selectedBoxes) != len(boxIDs) {
		log.Warn().
			Str("func", "*boxRepository.SubmitSelection").
			Int64("user_id", userID).
			Int("requested", len(boxIDs)).
			Int("claimed", len(selectedBoxes)).
			Msg("selection rejected: at least one box is missing or already selected")
		return nil, 0, ErrBoxUnavailable
	}

	// deduct one credit per box, guarded against a negative balance
	cost := int64(len(boxIDs))
	var remaining int64
	if err := tx.QueryRowContext(ctx, deductUserCredits, userID, cost).Scan(&remaining); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*boxRepository.SubmitSelection").Int64("user_id", userID).Msg("failed to deduct credits")
			return nil, 0, r.db.wrapDriverError(err)
		}

		// distinguish a missing user from an underfunded one
		var balance int64
		if balanceErr := tx.QueryRowContext(ctx, getUserCredits, userID).Scan(&balance); balanceErr != nil {
			if errors.Is(balanceErr, sql.ErrNoRows) {
				return nil, 0, ErrNoUserWasFound
			}
			return nil, 0, r.db.wrapDriverError(balanceErr)
		}

		log.Warn().
			Str("func", "*boxRepository.SubmitSelection").
			Int64("user_id", userID).
			Int64("balance", balance).
			Int64("cost", cost).
			Msg("selection rejected: insufficient credits")
		return nil, 0, ErrInsufficientCredits
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*boxRepository.SubmitSelection").Msg("error during committing transaction")
		return nil, 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return selectedBoxes, remaining, nil
}

// ResetAllSelections clears selected_by on every box and returns the number
// of boxes released. Credits are not refunded; reconciling balances is a
// separate administrative concern.
func (r *boxRepository) ResetAllSelections(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, resetAllSelections)
	if err != nil {
		log.Err(err).Str("func", "*boxRepository.ResetAllSelections").Msg("failed to reset box selections")
		return 0, r.db.wrapDriverError(err)
	}

	released, _ := result.RowsAffected()
	return released, nil
}

// scanBoxes drains a box result set into a slice, normalising scan and
// iteration failures to the package sentinels.
func scanBoxes(rows *sql.Rows) ([]models.MysteryBox, error) {
	results := make([]models.MysteryBox, 0, 16)

	for rows.Next() {
		var box models.MysteryBox
		if err := rows.Scan(&box.ID, &box.Name, &box.Description, &box.ImageURL, &box.SelectedBy, &box.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, box)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}
