package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/venturewayfinder/backend/domain"
	"github.com/venturewayfinder/backend/repository"
)

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a Postgres-backed business profile repository.
// One structured row per user replaces the loosely-typed blob older clients
// kept; legacy shapes are converted before they reach this layer.
func NewProfileRepository(pool *pgxpool.Pool) repository.ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) GetByUser(ctx context.Context, userID string) (*domain.BusinessProfile, error) {
	const query = `
	SELECT id, user_id, business_name, problem, solution, target_market, revenue_model, stage, notes, version, created_at, updated_at
	FROM business_profiles
	WHERE user_id = $1
	`
	row := r.pool.QueryRow(ctx, query, userID)

	var profile domain.BusinessProfile
	if err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.BusinessName,
		&profile.Problem,
		&profile.Solution,
		&profile.TargetMarket,
		&profile.RevenueModel,
		&profile.Stage,
		&profile.Notes,
		&profile.Version,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Save(ctx context.Context, profile *domain.BusinessProfile) error {
	if profile == nil || profile.ID == "" || profile.UserID == "" {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO business_profiles (id, user_id, business_name, problem, solution, target_market, revenue_model, stage, notes, version, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, COALESCE($11, NOW()), NOW())
	ON CONFLICT (user_id) DO UPDATE
	SET business_name = EXCLUDED.business_name,
		problem = EXCLUDED.problem,
		solution = EXCLUDED.solution,
		target_market = EXCLUDED.target_market,
		revenue_model = EXCLUDED.revenue_model,
		stage = EXCLUDED.stage,
		notes = EXCLUDED.notes,
		version = EXCLUDED.version,
		updated_at = NOW()
	RETURNING created_at, updated_at
	`

	return r.pool.QueryRow(ctx, query,
		profile.ID,
		profile.UserID,
		profile.BusinessName,
		profile.Problem,
		profile.Solution,
		profile.TargetMarket,
		profile.RevenueModel,
		profile.Stage,
		profile.Notes,
		profile.Version,
		nullTime(profile.CreatedAt),
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}
