package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TechSynnovate-com/Rentnova-sub002/internal/matching"
	"github.com/TechSynnovate-com/Rentnova-sub002/internal/models"
	"github.com/TechSynnovate-com/Rentnova-sub002/internal/queue"
)

// MockStore is a mock implementation of the Store interface
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetAllProperties(city string) ([]models.Property, error) {
	args := m.Called(city)
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockStore) GetCities() ([]string, error) {
	args := m.Called()
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStore) GetAreaStats(city string) (models.AreaStats, error) {
	args := m.Called(city)
	return args.Get(0).(models.AreaStats), args.Error(1)
}

func (m *MockStore) GetCityCoordinates(city string) ([]models.Coordinate, error) {
	args := m.Called(city)
	return args.Get(0).([]models.Coordinate), args.Error(1)
}

func testListings() []models.Property {
	return []models.Property{
		{
			ID:           "l1",
			Address:      "24 Marina Road, Lagos Island",
			City:         "Lagos",
			State:        "Lagos State",
			Country:      "Nigeria",
			PropertyType: "apartment",
			Price:        450000,
			Bedrooms:     3,
			Amenities:    models.StringList{"parking", "generator"},
		},
		{
			ID:           "l2",
			Address:      "7 Gwarinpa Estate Road",
			City:         "Abuja",
			State:        "FCT",
			Country:      "Nigeria",
			PropertyType: "duplex",
			Price:        900000,
			Bedrooms:     5,
		},
	}
}

func setupRouter(store Store) (*gin.Engine, *queue.ListingQueue) {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	q := queue.NewListingQueue(10, logger)
	handler := NewHandler(store, q, logger, 2, matching.DefaultWeights())
	router := gin.New()
	SetupRoutes(router, handler)
	return router, q
}

func TestSearchProperties(t *testing.T) {
	store := &MockStore{}
	store.On("GetAllProperties", "").Return(testListings(), nil)
	router, _ := setupRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search?q=Lagos", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Query   string `json:"query"`
		Results []struct {
			CandidateID string  `json:"candidate_id"`
			Score       float64 `json:"score"`
			Tier        string  `json:"tier"`
			Label       string  `json:"label"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	require.Len(t, body.Results, 2)
	assert.Equal(t, "l1", body.Results[0].CandidateID)
	assert.Equal(t, "exact", body.Results[0].Tier)
	assert.Equal(t, "Exact Location Match", body.Results[0].Label)
	assert.Equal(t, 95.0, body.Results[0].Score)
}

func TestSearchProperties_MissingQuery(t *testing.T) {
	router, _ := setupRouter(&MockStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommend(t *testing.T) {
	store := &MockStore{}
	store.On("GetAllProperties", "").Return(testListings(), nil)
	router, _ := setupRouter(store)

	payload := `{
		"budget": {"min": 400000, "max": 500000},
		"desired_types": ["apartment"],
		"min_bedrooms": 2,
		"desired_amenities": ["parking"],
		"preferred_locations": ["Lagos"]
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Results []struct {
			CandidateID string   `json:"candidate_id"`
			Score       float64  `json:"score"`
			TopReasons  []string `json:"top_reasons"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	require.Len(t, body.Results, 2)
	assert.Equal(t, "l1", body.Results[0].CandidateID)
	assert.Equal(t, 100.0, body.Results[0].Score)
	assert.NotEmpty(t, body.Results[0].TopReasons)
}

func TestRecommend_InvalidWeights(t *testing.T) {
	store := &MockStore{}
	store.On("GetAllProperties", "").Return(testListings(), nil)
	router, _ := setupRouter(store)

	payload := `{"weights": {"location": 0, "price": 0, "type": 0, "bedrooms": 0, "amenities": 0}}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "scoring configuration")
}

func TestSuggestCities(t *testing.T) {
	store := &MockStore{}
	store.On("GetCities").Return([]string{"Lagos", "Abuja", "Ibadan", "Enugu"}, nil)
	router, _ := setupRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/suggestions?q=lago", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Suggestions)
	assert.Equal(t, "Lagos", body.Suggestions[0])
}

func TestGetAreaStats(t *testing.T) {
	store := &MockStore{}
	store.On("GetAreaStats", "Lagos").Return(models.AreaStats{
		City:          "Lagos",
		PropertyCount: 2,
		AveragePrice:  675000,
	}, nil)
	store.On("GetCityCoordinates", "Lagos").Return([]models.Coordinate{
		{Latitude: 6.45, Longitude: 3.40},
		{Latitude: 6.60, Longitude: 3.35},
	}, nil)
	router, _ := setupRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/areas/Lagos", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"property_count":2`)
	assert.Contains(t, w.Body.String(), "centroid")
}

func TestIngestProperties(t *testing.T) {
	router, q := setupRouter(&MockStore{})

	payload := `[{"address": "5 Allen Avenue", "city": "Ikeja", "price": 250000}]`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/properties", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, 1, q.Len())

	// An identifier is minted for listings that arrive without one.
	var body struct {
		Listings []models.Property `json:"listings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Listings, 1)
	assert.NotEmpty(t, body.Listings[0].ID)
}

func TestIngestProperties_QueueFull(t *testing.T) {
	store := &MockStore{}
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	q := queue.NewListingQueue(1, logger)
	handler := NewHandler(store, q, logger, 2, matching.DefaultWeights())
	router := gin.New()
	SetupRoutes(router, handler)

	payload := `[{"address": "5 Allen Avenue", "city": "Ikeja"}]`
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/properties", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if i == 0 {
			assert.Equal(t, http.StatusAccepted, w.Code)
		} else {
			assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		}
	}
}
