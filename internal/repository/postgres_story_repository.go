package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"CoastRisk-App/internal/domain/model"
	"CoastRisk-App/internal/domain/repository"
	"CoastRisk-App/internal/infrastructure/database"
)

type PostgresStoryRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresStoryRepository(client *database.PostgreSQLClient) repository.StoryRepository {
	return &PostgresStoryRepository{
		client: client,
	}
}

func (r *PostgresStoryRepository) GetByID(ctx context.Context, id string) (*model.Story, error) {
	story := &model.Story{}

	row := r.client.DB.QueryRowContext(ctx, `SELECT id, title FROM stories WHERE id = $1`, id)
	if err := row.Scan(&story.ID, &story.Title); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", model.ErrStoryNotFound, id)
		}
		return nil, fmt.Errorf("ストーリーの取得失敗: %w", err)
	}

	query := `
		SELECT idx, title, description, lon, lat, zoom, pitch, bearing, layer_key
		FROM story_waypoints
		WHERE story_id = $1
		ORDER BY idx`

	rows, err := r.client.DB.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("ウェイポイントの取得失敗: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var wp model.Waypoint
		var description sql.NullString
		if err := rows.Scan(&wp.Index, &wp.Title, &description,
			&wp.Center.Longitude, &wp.Center.Latitude,
			&wp.Zoom, &wp.Pitch, &wp.Bearing, &wp.LayerKey); err != nil {
			return nil, fmt.Errorf("ウェイポイントの読み込み失敗: %w", err)
		}
		wp.Description = description.String
		story.Waypoints = append(story.Waypoints, wp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ウェイポイントの読み込み失敗: %w", err)
	}

	return story, nil
}
