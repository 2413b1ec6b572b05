package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unesleaf/unesleaf-server/internal/store"
	"github.com/unesleaf/unesleaf-server/models"
)

// TestCreateRecord_Success verifies that a valid body results in 201 with the
// assigned id and timestamp, and that the owner comes from the token claims.
func TestCreateRecord_Success(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	records := &mockRecordService{
		createRecordFn: func(_ context.Context, record models.Record) (models.Record, error) {
			require.Equal(t, int64(7), record.UserID)
			require.InDelta(t, -3.7, record.Lng, 1e-9)
			require.InDelta(t, 40.4, record.Lat, 1e-9)
			record.ID = 12
			record.CreadoEn = createdAt
			return record, nil
		},
	}

	h := newTestHandler(t, nil, nil, records)
	body := `{"lng":-3.7,"lat":40.4,"texto":"Madrid","tipo":"ciudad"}`
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/registros", strings.NewReader(body)), 7)
	rec := httptest.NewRecorder()

	h.createRecord(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.CreateRecordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, int64(12), resp.ID)
	assert.True(t, resp.CreadoEn.Equal(createdAt))
}

// TestCreateRecord_ZeroCoordinates verifies that lng=0, lat=0 is valid input
// and is not confused with missing coordinates.
func TestCreateRecord_ZeroCoordinates(t *testing.T) {
	records := &mockRecordService{
		createRecordFn: func(_ context.Context, record models.Record) (models.Record, error) {
			require.Zero(t, record.Lng)
			require.Zero(t, record.Lat)
			record.ID = 1
			return record, nil
		},
	}

	h := newTestHandler(t, nil, nil, records)
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/registros", strings.NewReader(`{"lng":0,"lat":0}`)), 7)
	rec := httptest.NewRecorder()

	h.createRecord(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

// TestCreateRecord_Validation verifies that missing or out-of-range
// coordinates are rejected with 400 before any service call.
func TestCreateRecord_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing lng", body: `{"lat":40.4}`},
		{name: "missing lat", body: `{"lng":-3.7}`},
		{name: "lat above range", body: `{"lng":-3.7,"lat":91}`},
		{name: "lng below range", body: `{"lng":-181,"lat":40.4}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := &mockRecordService{
				createRecordFn: func(_ context.Context, _ models.Record) (models.Record, error) {
					t.Fatal("service must not be called for an invalid body")
					return models.Record{}, nil
				},
			}

			h := newTestHandler(t, nil, nil, records)
			req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/registros", strings.NewReader(tt.body)), 7)
			rec := httptest.NewRecorder()

			h.createRecord(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

// TestCreateRecord_OwnerDeleted verifies that a foreign key violation on the
// owner maps to 400.
func TestCreateRecord_OwnerDeleted(t *testing.T) {
	records := &mockRecordService{
		createRecordFn: func(_ context.Context, _ models.Record) (models.Record, error) {
			return models.Record{}, store.ErrRecordOwnerMissing
		},
	}

	h := newTestHandler(t, nil, nil, records)
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/registros", strings.NewReader(`{"lng":1,"lat":2}`)), 7)
	rec := httptest.NewRecorder()

	h.createRecord(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "user no longer exists")
}

// TestCreateRecord_NoClaims verifies that a request without claims in its
// context is rejected with 401.
func TestCreateRecord_NoClaims(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockRecordService{})
	req := httptest.NewRequest(http.MethodPost, "/api/registros", strings.NewReader(`{"lng":1,"lat":2}`))
	rec := httptest.NewRecorder()

	h.createRecord(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// listRecords
// ─────────────────────────────────────────────

// TestListRecords_Success verifies the response envelope and that the
// authenticated user id reaches the service.
func TestListRecords_Success(t *testing.T) {
	records := &mockRecordService{
		listRecordsFn: func(_ context.Context, userID int64, limit int) ([]models.Record, error) {
			require.Equal(t, int64(7), userID)
			require.Equal(t, 0, limit)
			return []models.Record{{ID: 2, Username: "alice"}, {ID: 1, Username: "alice"}}, nil
		},
	}

	h := newTestHandler(t, nil, nil, records)
	req := authedRequest(httptest.NewRequest(http.MethodGet, "/api/registros", nil), 7)
	rec := httptest.NewRecorder()

	h.listRecords(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ListRecordsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, int64(2), resp.Items[0].ID)
}

// TestListRecords_LimitParsing verifies that the limit query parameter is
// forwarded as parsed and unparseable values fall back to zero, leaving the
// clamping to the service.
func TestListRecords_LimitParsing(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
	}{
		{name: "no limit", query: "", wantLimit: 0},
		{name: "numeric limit", query: "?limit=25", wantLimit: 25},
		{name: "huge limit forwarded", query: "?limit=9999", wantLimit: 9999},
		{name: "garbage limit", query: "?limit=abc", wantLimit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := &mockRecordService{
				listRecordsFn: func(_ context.Context, _ int64, limit int) ([]models.Record, error) {
					require.Equal(t, tt.wantLimit, limit)
					return []models.Record{}, nil
				},
			}

			h := newTestHandler(t, nil, nil, records)
			req := authedRequest(httptest.NewRequest(http.MethodGet, "/api/registros"+tt.query, nil), 7)
			rec := httptest.NewRecorder()

			h.listRecords(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

// TestListRecords_EmptyIsArray verifies that a user with no records receives
// an empty items array, not null.
func TestListRecords_EmptyIsArray(t *testing.T) {
	records := &mockRecordService{
		listRecordsFn: func(_ context.Context, _ int64, _ int) ([]models.Record, error) {
			return []models.Record{}, nil
		},
	}

	h := newTestHandler(t, nil, nil, records)
	req := authedRequest(httptest.NewRequest(http.MethodGet, "/api/registros", nil), 7)
	rec := httptest.NewRecorder()

	h.listRecords(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}

// TestListRecords_DBError verifies that a storage failure maps to 500.
func TestListRecords_DBError(t *testing.T) {
	records := &mockRecordService{
		listRecordsFn: func(_ context.Context, _ int64, _ int) ([]models.Record, error) {
			return nil, errors.New("db connection lost")
		},
	}

	h := newTestHandler(t, nil, nil, records)
	req := authedRequest(httptest.NewRequest(http.MethodGet, "/api/registros", nil), 7)
	rec := httptest.NewRecorder()

	h.listRecords(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
