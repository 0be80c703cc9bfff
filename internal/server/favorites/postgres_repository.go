package favorites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipeasy/internal/common"
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

const favoriteColumns = "id, user_id, recipe_id, title, image, ready_in_minutes, protein_grams, calories, created_at"

func scanFavorite(scan func(dest ...any) error) (*Favorite, error) {
	f := &Favorite{}
	err := scan(&f.ID, &f.UserID, &f.RecipeID, &f.Title, &f.Image,
		&f.ReadyInMinutes, &f.ProteinGrams, &f.Calories, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return f, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Favorite, error) {
	query := `SELECT ` + favoriteColumns + ` FROM favorites WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := make([]*Favorite, 0)
	for rows.Next() {
		f, err := scanFavorite(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByUserAndRecipe(ctx context.Context, userID string, recipeID int64) (*Favorite, error) {
	query := `SELECT ` + favoriteColumns + ` FROM favorites WHERE user_id = $1 AND recipe_id = $2`
	return scanFavorite(r.db.QueryRowContext(ctx, query, userID, recipeID).Scan)
}

func (r *PostgresRepository) Create(ctx context.Context, favorite *Favorite) (*Favorite, error) {

	if favorite.ID == "" {
		favorite.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO favorites (id, user_id, recipe_id, title, image, ready_in_minutes, protein_grams, calories)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING ` + favoriteColumns

	created, err := scanFavorite(r.db.QueryRowContext(ctx, query,
		favorite.ID, favorite.UserID, favorite.RecipeID, favorite.Title, favorite.Image,
		favorite.ReadyInMinutes, favorite.ProteinGrams, favorite.Calories).Scan)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			// already saved by this user; surface the existing row
			return r.GetByUserAndRecipe(ctx, favorite.UserID, favorite.RecipeID)
		}
		return nil, err
	}

	return created, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID string, recipeID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND recipe_id = $2`, userID, recipeID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}
