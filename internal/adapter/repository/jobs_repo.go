package repository

import (
	"context"
	"encoding/json"

	"resume-templates/internal/domain"

	"github.com/jackc/pgx/v4/pgxpool"
)

// JobsRepo persists export jobs. A nil pool turns every operation into a
// no-op so the service keeps rendering when the database is unavailable.
type JobsRepo struct {
	pool *pgxpool.Pool
}

func NewJobsRepo(pool *pgxpool.Pool) *JobsRepo {
	return &JobsRepo{pool: pool}
}

func (r *JobsRepo) Save(ctx context.Context, j *domain.ExportJob) error {
	if r.pool == nil {
		return nil
	}

	metaB, _ := json.Marshal(j.Metadata)
	resumeB, _ := json.Marshal(j.Resume)

	_, err := r.pool.Exec(ctx, `INSERT INTO export_jobs (id, user_id, template_key, language, resume, status, metadata, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET template_key = EXCLUDED.template_key, language = EXCLUDED.language, resume = EXCLUDED.resume, status = EXCLUDED.status, metadata = EXCLUDED.metadata, updated_at = EXCLUDED.updated_at`,
		j.ID, j.UserID, j.TemplateKey, j.Language, resumeB, j.Status, metaB, j.CreatedAt, j.UpdatedAt)
	return err
}

// ListForUser returns the user's export jobs, newest first, as generic
// JSON objects suitable for the API response.
func (r *JobsRepo) ListForUser(ctx context.Context, userID string) ([]map[string]interface{}, error) {
	if r.pool == nil {
		return nil, nil
	}

	var raw []byte
	err := r.pool.QueryRow(ctx,
		`SELECT coalesce(json_agg(row_to_json(j) ORDER BY j.created_at DESC), '[]')
		 FROM export_jobs j WHERE j.user_id::text = $1`, userID).Scan(&raw)
	if err != nil {
		return nil, err
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a single job as a generic JSON object, or nil when the
// job does not exist.
func (r *JobsRepo) GetByID(ctx context.Context, id string) (map[string]interface{}, error) {
	if r.pool == nil {
		return nil, nil
	}

	var raw []byte
	err := r.pool.QueryRow(ctx,
		`SELECT row_to_json(j) FROM export_jobs j WHERE j.id::text = $1 LIMIT 1`, id).Scan(&raw)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
