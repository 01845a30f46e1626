package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gigs/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGigByID(t *testing.T) {
	router := newTestRouter(&recordingPublisher{}, blurHydePark())

	req := httptest.NewRequest(http.MethodGet, "/gigs/blur-hyde-park", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var gig entities.Gig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gig))
	assert.Equal(t, blurHydePark(), gig)
}

func TestGetGigByIDNotFound(t *testing.T) {
	router := newTestRouter(&recordingPublisher{})

	req := httptest.NewRequest(http.MethodGet, "/gigs/no-such-gig", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostGigsThenList(t *testing.T) {
	router := newTestRouter(&recordingPublisher{})

	body := `{
		"gig_id": "pulp-finsbury-park",
		"band": "Pulp",
		"city": "London",
		"date": "2026-08-15",
		"collection_point": "main entrance",
		"collection_time": "18:30"
	}`
	req := httptest.NewRequest(http.MethodPost, "/gigs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/gigs", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var gigs []entities.Gig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gigs))
	require.Len(t, gigs, 1)
	assert.Equal(t, "pulp-finsbury-park", gigs[0].GigID)
}

func TestPostGigsRequiresAnID(t *testing.T) {
	router := newTestRouter(&recordingPublisher{})

	req := httptest.NewRequest(http.MethodPost, "/gigs", strings.NewReader(`{"band":"Pulp"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
