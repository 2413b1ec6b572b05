package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/unesleaf/unesleaf-server/internal/logger"
	"github.com/unesleaf/unesleaf-server/models"
)

// layerRepository is the PostgreSQL/PostGIS-backed implementation of
// [LayerRepository]. It turns one catalog table or view into a complete
// GeoJSON FeatureCollection in a single aggregate query.
type layerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLayerRepository constructs a [LayerRepository] backed by the provided
// database connection and logger.
func NewLayerRepository(db *DB, logger *logger.Logger) LayerRepository {
	logger.Debug().Msg("creating layer repository")
	return &layerRepository{
		db:     db,
		logger: logger,
	}
}

// GetFeatureCollection aggregates every row of the layer's backing table
// into one GeoJSON FeatureCollection object and returns it as raw JSON.
//
// The table name is interpolated from the static catalog entry only; it is
// never derived from caller input, which preserves the injection-safety
// invariant of the layer API. An empty table produces a FeatureCollection
// with an empty features array, not an error.
func (r *layerRepository) GetFeatureCollection(ctx context.Context, layer models.Layer) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	query := fmt.Sprintf(layerFeatureCollection, layer.Table)

	var geojson []byte
	row := r.db.QueryRowContext(ctx, query)
	if err := row.Scan(&geojson); err != nil {
		log.Err(err).Str("func", "*layerRepository.GetFeatureCollection").
			Str("table", layer.Table).Msg("error: querying feature collection")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return geojson, nil
}
