package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/moonveil/tarot-backend/internal/config"
	"github.com/moonveil/tarot-backend/internal/dto"
	"github.com/moonveil/tarot-backend/internal/middleware"
	"github.com/moonveil/tarot-backend/internal/readings"
	"github.com/moonveil/tarot-backend/internal/tarot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec(`
		CREATE TABLE readings (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			theme TEXT NOT NULL,
			spread_type TEXT NOT NULL,
			cards TEXT NOT NULL,
			created_at DATETIME
		)`).Error)

	cfg := &config.Config{
		JWTSecret:       "test-secret",
		DefaultPageSize: 12,
		MaxPageSize:     100,
	}

	catalog := tarot.NewEmbeddedCatalog()
	require.NoError(t, catalog.Load())

	h := NewReadingHandler(
		tarot.NewGenerator(catalog, tarot.NewRand(7)),
		readings.NewService(db),
		cfg,
	)

	app := fiber.New()
	app.Get("/api/readings/options", h.Options)
	app.Post("/api/readings/draw", h.Draw)
	app.Post("/api/readings", middleware.JWTProtected(cfg), h.Create)
	app.Get("/api/readings", middleware.JWTProtected(cfg), h.List)
	return app
}

func accessToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(15 * time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestOptionsEndpoint(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest("GET", "/api/readings/options", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.OptionsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.ElementsMatch(t,
		[]string{"love", "career", "relationship", "health", "self-exploration"},
		body.Themes)

	counts := make(map[string]int)
	for _, s := range body.Spreads {
		counts[s.Type] = s.CardCount
	}
	assert.Equal(t, map[string]int{"single": 1, "three": 3, "celtic-cross": 10}, counts)
}

func TestDrawEndpoint(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest("POST", "/api/readings/draw",
		jsonBody(t, dto.DrawRequest{Theme: "love", SpreadType: "three"}))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.DrawResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "love", body.Theme)
	require.Len(t, body.Cards, 3)
	for _, c := range body.Cards {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Meaning.Summary)
	}
}

func TestDrawEndpoint_InvalidInputs(t *testing.T) {
	app := testApp(t)

	for _, payload := range []dto.DrawRequest{
		{Theme: "destiny", SpreadType: "three"},
		{Theme: "love", SpreadType: "hexagram"},
	} {
		req := httptest.NewRequest("POST", "/api/readings/draw", jsonBody(t, payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	}
}

func TestCreateAndListEndpoints(t *testing.T) {
	app := testApp(t)
	owner := uuid.New()
	token := accessToken(t, owner)

	create := dto.CreateReadingRequest{
		Theme:      "career",
		SpreadType: "single",
		Cards: []readings.CardSnapshot{
			{Name: "The Sun", IsReversed: false, Meaning: tarot.Meaning{Summary: "clarity", Details: []string{}}},
		},
	}
	req := httptest.NewRequest("POST", "/api/readings", jsonBody(t, create))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/readings?sort=newest&page=1", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var history dto.HistoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&history))
	assert.Equal(t, 1, history.TotalItems)
	require.Len(t, history.Items, 1)
	assert.Equal(t, "career", history.Items[0].Theme)

	// A different user sees an empty history.
	req = httptest.NewRequest("GET", "/api/readings", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, uuid.New()))

	resp, err = app.Test(req)
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&history))
	assert.Zero(t, history.TotalItems)
	assert.Empty(t, history.Items)
}

func TestEndpoints_RequireAuth(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest("GET", "/api/readings", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("POST", "/api/readings",
		jsonBody(t, dto.CreateReadingRequest{Theme: "love", SpreadType: "single"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestListEndpoint_BadQuery(t *testing.T) {
	app := testApp(t)
	token := accessToken(t, uuid.New())

	for _, path := range []string{
		"/api/readings?range=fortnight",
		"/api/readings?sort=sideways",
	} {
		req := httptest.NewRequest("GET", path, nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, path)
	}
}
