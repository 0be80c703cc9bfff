package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipeasy/internal/common"
	"github.com/dmitrijs2005/recipeasy/internal/dbx"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = "id, email, password_hash, default_protein_goal, default_max_time, created_at, updated_at"

func scanUser(row *sql.Row) (*User, error) {
	user := &User{}
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash,
		&user.DefaultProteinGoal, &user.DefaultMaxTime, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {

	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO users (id, email, password_hash, default_protein_goal, default_max_time)
         VALUES ($1, $2, $3, $4, $5)
		 RETURNING ` + userColumns

	created, err := scanUser(r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.DefaultProteinGoal, user.DefaultMaxTime))

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, common.ErrEmailTaken
		}
		return nil, err
	}

	return created, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

// UpdatePreferences applies a partial preference update and refreshes
// updated_at. The read and write run in one transaction; concurrent writers
// resolve last-write-wins.
func (r *PostgresRepository) UpdatePreferences(ctx context.Context, id string, prefs Preferences) (*User, error) {
	var updated *User

	err := dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		current, err := scanUser(tx.QueryRowContext(ctx,
			`SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			return err
		}

		proteinGoal := current.DefaultProteinGoal
		if prefs.ProteinGoal != nil {
			proteinGoal = *prefs.ProteinGoal
		}
		maxTime := current.DefaultMaxTime
		if prefs.MaxTime != nil {
			maxTime = *prefs.MaxTime
		}

		updated, err = scanUser(tx.QueryRowContext(ctx,
			`UPDATE users
			 SET default_protein_goal = $2, default_max_time = $3, updated_at = now()
			 WHERE id = $1
			 RETURNING `+userColumns, id, proteinGoal, maxTime))
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
