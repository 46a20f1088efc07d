package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, password_hash, email, credits)
    VALUES ($1, $2, $3, $4)
    RETURNING id, username, email, password_hash, credits, created_at;`

	findUserByUsername = `SELECT id, username, email, password_hash, credits, created_at
    FROM users
    WHERE LOWER(username) = LOWER($1);`

	getUserByID = `SELECT id, username, email, password_hash, credits, created_at
    FROM users
    WHERE id = $1;`

	getAllUsers = `SELECT id, username, email, password_hash, credits, created_at
    FROM users
    ORDER BY id;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	updateUserCredits = `UPDATE users
    SET credits = $2
    WHERE id = $1
    RETURNING id, username, email, password_hash, credits, created_at;`

	deductUserCredits = `UPDATE users
    SET credits = credits - $2
    WHERE id = $1 AND credits >= $2
    RETURNING credits;`

	getUserCredits = `SELECT credits FROM users WHERE id = $1;`

	createAdmin = `INSERT INTO admins (username, password_hash)
    VALUES ($1, $2)
    RETURNING id, username, password_hash, created_at;`

	findAdminByUsername = `SELECT id, username, password_hash, created_at
    FROM admins
    WHERE LOWER(username) = LOWER($1);`

	countAdmins = `SELECT COUNT(*) FROM admins;`

	getBoxes = `SELECT id, name, description, image_url, selected_by, created_at
    FROM mystery_boxes
    ORDER BY id;`

	getBoxByID = `SELECT id, name, description, image_url, selected_by, created_at
    FROM mystery_boxes
    WHERE id = $1;`

	resetAllSelections = `UPDATE mystery_boxes
    SET selected_by = NULL
    WHERE selected_by IS NOT NULL;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSearchUsersQuery builds a case-insensitive substring search over
// usernames. The term is wrapped in % wildcards on both sides.
func buildSearchUsersQuery(term string) (string, []any, error) {
	return psql.
		Select("id", "username", "email", "password_hash", "credits", "created_at").
		From("users").
		Where(sq.ILike{"username": "%" + term + "%"}).
		OrderBy("id").
		ToSql()
}

// buildSelectBoxesQuery builds the conditional ownership update at the core
// of the selection workflow. The "selected_by IS NULL" predicate makes the
// update a compare-and-set: rows already owned by any user (including the
// requester) are skipped, which both prevents silent reassignment and makes
// identical resubmissions fail instead of double-charging.
func buildSelectBoxesQuery(userID int64, boxIDs []int64) (string, []any, error) {
	return psql.
		Update("mystery_boxes").
		Set("selected_by", userID).
		Where(sq.Eq{"id": boxIDs}).
		Where(sq.Eq{"selected_by": nil}).
		Suffix("RETURNING id, name, description, image_url, selected_by, created_at").
		ToSql()
}

// buildUpsertSettingQuery builds the setting write. Creating and updating a
// setting are the same operation keyed on setting_name.
func buildUpsertSettingQuery(name, value string) (string, []any, error) {
	return psql.
		Insert("global_settings").
		Columns("setting_name", "setting_value", "updated_at").
		Values(name, value, sq.Expr("NOW()")).
		Suffix(`ON CONFLICT (setting_name) DO UPDATE
    SET setting_value = EXCLUDED.setting_value, updated_at = EXCLUDED.updated_at
    RETURNING setting_name, setting_value, updated_at`).
		ToSql()
}

// buildGetSettingsQuery builds a lookup of several settings by name.
func buildGetSettingsQuery(names []string) (string, []any, error) {
	return psql.
		Select("setting_name", "setting_value", "updated_at").
		From("global_settings").
		Where(sq.Eq{"setting_name": names}).
		OrderBy("setting_name").
		ToSql()
}
