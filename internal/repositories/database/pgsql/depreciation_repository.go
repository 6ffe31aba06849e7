package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_app/internal/models"
	"github.com/SscSPs/backoffice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDepreciationRepository struct {
	BaseRepository
}

func newPgxDepreciationRepository(pool *pgxpool.Pool) portsrepo.DepreciationRepositoryFacade {
	return &PgxDepreciationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DepreciationRepositoryFacade = (*PgxDepreciationRepository)(nil)

const depreciationColumns = `depreciation_id, asset_id, method, useful_life_years, salvage_value, start_date,
	created_at, created_by, last_updated_at, last_updated_by`

func scanSchedule(row pgx.Row) (models.DepreciationSchedule, error) {
	var m models.DepreciationSchedule
	err := row.Scan(
		&m.DepreciationID, &m.AssetID, &m.Method, &m.UsefulLifeYears, &m.SalvageValue, &m.StartDate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveSchedule relies on the unique asset_id constraint to reject a second schedule.
func (r *PgxDepreciationRepository) SaveSchedule(ctx context.Context, schedule domain.DepreciationSchedule) error {
	m := mapping.ToModelDepreciationSchedule(schedule)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO asset_depreciation (`+depreciationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		m.DepreciationID, m.AssetID, m.Method, m.UsefulLifeYears, m.SalvageValue, m.StartDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "save depreciation schedule")
}

func (r *PgxDepreciationRepository) FindScheduleByAssetID(ctx context.Context, assetID string) (*domain.DepreciationSchedule, error) {
	m, err := scanSchedule(r.Pool.QueryRow(ctx, `SELECT `+depreciationColumns+` FROM asset_depreciation WHERE asset_id = $1;`, assetID))
	if err != nil {
		return nil, translateError(err, "find depreciation schedule")
	}
	schedule := mapping.ToDomainDepreciationSchedule(m)
	return &schedule, nil
}

func (r *PgxDepreciationRepository) FindSchedulesByAssetIDs(ctx context.Context, assetIDs []string) (map[string]domain.DepreciationSchedule, error) {
	out := make(map[string]domain.DepreciationSchedule, len(assetIDs))
	if len(assetIDs) == 0 {
		return out, nil
	}
	rows, err := r.Pool.Query(ctx, `SELECT `+depreciationColumns+` FROM asset_depreciation WHERE asset_id = ANY($1);`, assetIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query depreciation schedules: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan depreciation row: %w", err)
		}
		out[m.AssetID] = mapping.ToDomainDepreciationSchedule(m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating depreciation rows: %w", rows.Err())
	}
	return out, nil
}
