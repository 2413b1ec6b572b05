package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/unesleaf/unesleaf-server/internal/logger"
	"github.com/unesleaf/unesleaf-server/models"
)

// recordRepository is the PostgreSQL-backed implementation of
// [RecordRepository]. It persists point geometries under SRID 4326 and lists
// them newest first, always filtered by owner.
type recordRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		db:     db,
		logger: logger,
	}
}

// CreateRecord inserts a registro owned by record.UserID with a point
// geometry built from record.Lng / record.Lat, and returns the record with
// its server-assigned ID and CreadoEn timestamp.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrRecordOwnerMissing];
//     the owner row was deleted between authentication and insert.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *recordRepository) CreateRecord(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createRecord,
		record.UserID, record.Lng, record.Lat, record.Texto, record.Tipo)

	if err := row.Scan(&record.ID, &record.CreadoEn); err != nil {
		if ClassifyConstraint(err) == ForeignKeyViolation {
			return models.Record{}, ErrRecordOwnerMissing
		}

		log.Err(err).Str("func", "*recordRepository.CreateRecord").Msg("error: inserting record")
		return models.Record{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return record, nil
}

// ListRecordsByUser returns up to limit records owned by userID, newest
// first, joining the users table for the owner's current username. The
// coordinates are unpacked from the stored geometry with ST_X / ST_Y.
//
// The caller is responsible for clamping limit to a sane range.
func (r *recordRepository) ListRecordsByUser(ctx context.Context, userID int64, limit int) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.
		Select(
			"r.id",
			"u.username",
			"r.texto_busqueda",
			"r.tipo",
			"r.creado_en",
			"ST_X(r.geom) AS lng",
			"ST_Y(r.geom) AS lat",
		).
		From("registros r").
		Join("users u ON u.id = r.usuario_id").
		Where(sq.Eq{"r.usuario_id": userID}).
		OrderBy("r.creado_en DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.ListRecordsByUser").Msg("error: executing list query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, limit)
	for rows.Next() {
		record := models.Record{UserID: userID}
		if err := rows.Scan(
			&record.ID,
			&record.Username,
			&record.Texto,
			&record.Tipo,
			&record.CreadoEn,
			&record.Lng,
			&record.Lat,
		); err != nil {
			log.Err(err).Str("func", "*recordRepository.ListRecordsByUser").Msg("error: scanning record row")
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return records, nil
}
