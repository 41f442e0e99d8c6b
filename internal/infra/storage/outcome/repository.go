package outcome

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/pkg/psqlbuilder"
)

// Repository репозиторий журнала решений о допуске бронирований.
// Журнал append-only: записи никогда не обновляются и не удаляются.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает решение о допуске в журнал
func (r *Repository) Create(ctx context.Context, record *domain.AdmissionOutcome) (*domain.AdmissionOutcome, error) {
	query, args, err := psqlbuilder.Insert("admission_outcomes").
		Columns(
			"id",
			"entry_point",
			"requester_name",
			"package",
			"offering",
			"requested_start",
			"outcome",
			"detail",
			"idempotency_token",
			"external_booking_id",
		).
		Values(
			record.ID,
			record.EntryPoint,
			record.RequesterName,
			record.Package,
			record.Offering,
			record.RequestedStart,
			record.Outcome,
			record.Detail,
			record.IdempotencyToken,
			record.ExternalBookingID,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time
	return record, nil
}

// ListByPeriod получает записи журнала за период [from, to), сначала новые
func (r *Repository) ListByPeriod(ctx context.Context, from, to time.Time) ([]*domain.AdmissionOutcome, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"entry_point",
		"requester_name",
		"package",
		"offering",
		"requested_start",
		"outcome",
		"detail",
		"idempotency_token",
		"external_booking_id",
		"created_at",
	).
		From("admission_outcomes").
		Where(squirrel.GtOrEq{"requested_start": from}).
		Where(squirrel.Lt{"requested_start": to}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanOutcomes(rows)
}

// scanOutcomes сканирует результаты запроса в слайс записей журнала
func (r *Repository) scanOutcomes(rows *sql.Rows) ([]*domain.AdmissionOutcome, error) {
	records := make([]*domain.AdmissionOutcome, 0)

	for rows.Next() {
		var record domain.AdmissionOutcome
		var createdAt sql.NullTime

		err := rows.Scan(
			&record.ID,
			&record.EntryPoint,
			&record.RequesterName,
			&record.Package,
			&record.Offering,
			&record.RequestedStart,
			&record.Outcome,
			&record.Detail,
			&record.IdempotencyToken,
			&record.ExternalBookingID,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanOutcomes - scan row: %v", ErrScanRow, err)
		}

		record.CreatedAt = createdAt.Time
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanOutcomes - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
