package service

import (
	"context"
	"fmt"

	"github.com/unesleaf/unesleaf-server/internal/logger"
	"github.com/unesleaf/unesleaf-server/internal/store"
	"github.com/unesleaf/unesleaf-server/models"
)

// Bounds applied to the list endpoint's limit parameter.
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// recordService is the concrete implementation of RecordService.
type recordService struct {
	recordRepository store.RecordRepository
	logger           *logger.Logger
}

// NewRecordService constructs a RecordService over the given repository.
func NewRecordService(recordRepository store.RecordRepository, logger *logger.Logger) RecordService {
	return &recordService{
		recordRepository: recordRepository,
		logger:           logger,
	}
}

// CreateRecord validates the coordinates and persists the record.
//
// Longitude must lie in [-180,180] and latitude in [-90,90]; violations
// return ErrCoordinatesOutOfRange before any SQL is issued. A missing owner
// surfaces as store.ErrRecordOwnerMissing (wrapped).
func (s *recordService) CreateRecord(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	if record.Lng < -180 || record.Lng > 180 || record.Lat < -90 || record.Lat > 90 {
		return models.Record{}, ErrCoordinatesOutOfRange
	}
	if record.UserID == 0 {
		return models.Record{}, ErrInvalidDataProvided
	}

	created, err := s.recordRepository.CreateRecord(ctx, record)
	if err != nil {
		log.Err(err).Int64("user_id", record.UserID).Msg("record creation ended with error")
		return models.Record{}, fmt.Errorf("record creation ended with error: %w", err)
	}

	return created, nil
}

// ListRecords returns the caller's records, newest first.
//
// The limit is clamped to [1, MaxListLimit]; a non-positive limit selects
// DefaultListLimit. Ownership filtering happens in SQL, never in Go.
func (s *recordService) ListRecords(ctx context.Context, userID int64, limit int) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return nil, ErrInvalidDataProvided
	}

	records, err := s.recordRepository.ListRecordsByUser(ctx, userID, ClampLimit(limit))
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("record listing ended with error")
		return nil, fmt.Errorf("record listing ended with error: %w", err)
	}

	return records, nil
}

// ClampLimit normalizes a caller-supplied page size: non-positive values
// fall back to DefaultListLimit, values above MaxListLimit are capped.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
