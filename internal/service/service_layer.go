package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/unesleaf/unesleaf-server/internal/logger"
	"github.com/unesleaf/unesleaf-server/internal/store"
	"github.com/unesleaf/unesleaf-server/models"
)

// layerCatalog is the fixed, process-wide enumeration of exposed layers.
// Defined in code, never derived from the database schema: the backing table
// name is the only identifier ever interpolated into layer SQL, so keeping
// the catalog static is what makes the layer API injection-safe.
//
// Ids 1-4 are base tables; 5-6 are analysis views.
var layerCatalog = []models.Layer{
	{ID: 1, Name: "Sitios Unesco", GeometryType: "Point", Table: "sitios_unesco"},
	{ID: 2, Name: "Ciudades del Mundo", GeometryType: "Point", Table: "ciudades_mundo"},
	{ID: 3, Name: "Hidrografía del Mundo", GeometryType: "MultiLineString", Table: "hidrografia_mundo"},
	{ID: 4, Name: "Continentes", GeometryType: "MultiPolygon", Table: "continentes"},
	{ID: 5, Name: "Ciudades: buffer 200 km (conteo UNESCO)", GeometryType: "Polygon", Table: "v_ciudades_buffer200_conteo"},
	{ID: 6, Name: "UNESCO por continente (conteo)", GeometryType: "MultiPolygon", Table: "v_unesco_continentes_conteo"},
}

// layerService is the concrete implementation of LayerService.
type layerService struct {
	layerRepository store.LayerRepository
	logger          *logger.Logger
}

// NewLayerService constructs a LayerService over the given repository.
func NewLayerService(layerRepository store.LayerRepository, logger *logger.Logger) LayerService {
	return &layerService{
		layerRepository: layerRepository,
		logger:          logger,
	}
}

// ListLayers returns the static catalog. The result shares no state with the
// internal catalog slice, so callers may not mutate the catalog through it.
func (s *layerService) ListLayers() []models.Layer {
	layers := make([]models.Layer, len(layerCatalog))
	copy(layers, layerCatalog)
	return layers
}

// GetLayerByID renders the layer with the given id as a GeoJSON
// FeatureCollection.
//
// Returns ErrLayerNotFound for ids outside the static catalog before any
// database work happens.
func (s *layerService) GetLayerByID(ctx context.Context, id int) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	layer, ok := lookupLayer(id)
	if !ok {
		return nil, ErrLayerNotFound
	}

	geojson, err := s.layerRepository.GetFeatureCollection(ctx, layer)
	if err != nil {
		log.Err(err).Int("layer_id", id).Msg("feature collection query ended with error")
		return nil, fmt.Errorf("feature collection query ended with error: %w", err)
	}

	return geojson, nil
}

func lookupLayer(id int) (models.Layer, bool) {
	for _, layer := range layerCatalog {
		if layer.ID == id {
			return layer, true
		}
	}
	return models.Layer{}, false
}
