package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dicefit-api/internal/config"
	"dicefit-api/internal/core"
	"dicefit-api/internal/handlers"
	"dicefit-api/internal/mocks"
	"dicefit-api/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	handler  http.Handler
	auth     *mocks.MockAuthService
	catalog  *mocks.MockCatalogService
	training *mocks.MockTrainingService
}

func newTestServer() *testServer {
	ts := &testServer{
		auth:     new(mocks.MockAuthService),
		catalog:  new(mocks.MockCatalogService),
		training: new(mocks.MockTrainingService),
	}
	app := &config.Application{
		Config: config.Config{
			App_Env:              "test",
			CORS_Allowed_Origins: []string{"http://localhost:3000"},
		},
		Logger: zerolog.Nop(),
	}
	ts.handler = Setup(app, handlers.Services{
		Auth:     ts.auth,
		Catalog:  ts.catalog,
		Training: ts.training,
		Feedback: new(mocks.MockFeedbackService),
	})
	return ts
}

func (ts *testServer) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func TestProtectedRoutes(t *testing.T) {
	ts := newTestServer()
	ts.auth.On("Authenticate", mock.Anything, "valid").Return(int64(3), nil)
	ts.auth.On("Authenticate", mock.Anything, "expired").Return(int64(0), core.ErrUnauthenticated)
	ts.auth.On("GetPlan", mock.Anything, int64(3)).Return(&models.UserPlan{PlanID: 1, Name: "Basico"}, nil)

	t.Run("MissingToken", func(t *testing.T) {
		rec := ts.do(http.MethodGet, BasePath+"/perfil/plano", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "authorization token required", body["error"])
		assert.NotEmpty(t, body["request_id"])
	})

	t.Run("RejectedToken", func(t *testing.T) {
		rec := ts.do(http.MethodGet, BasePath+"/perfil/plano", "expired")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ValidToken", func(t *testing.T) {
		rec := ts.do(http.MethodGet, BasePath+"/perfil/plano", "valid")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"plano":"Basico"`)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	})

	for _, route := range []struct{ method, path string }{
		{http.MethodPut, "/password/update"},
		{http.MethodGet, "/perfil"},
		{http.MethodPut, "/perfil/update"},
		{http.MethodGet, "/planos"},
		{http.MethodPost, "/treino/create"},
		{http.MethodPut, "/treino/usuario/update"},
		{http.MethodPut, "/treino/treino-exercicio/update"},
		{http.MethodPost, "/send-rating"},
	} {
		t.Run("Guarded"+route.path, func(t *testing.T) {
			rec := ts.do(route.method, BasePath+route.path, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestPublicRoutes(t *testing.T) {
	ts := newTestServer()
	ts.catalog.On("ListExercises", mock.Anything, "Costas").
		Return([]models.Exercise{{ID: 2, Name: "Remada", Type: "Costas"}}, nil)
	ts.training.On("ListTrainingsForClient", mock.Anything, int64(3)).
		Return([]models.TrainingWithExercises{}, nil)

	rec := ts.do(http.MethodGet, BasePath+"/treino/exercicios/tipos/Costas", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Remada")

	rec = ts.do(http.MethodGet, BasePath+"/treino/usuario/3", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	ts.auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestCORS(t *testing.T) {
	ts := newTestServer()

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, BasePath+"/login", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type, Authorization")
		rec := httptest.NewRecorder()
		ts.handler.ServeHTTP(rec, req)

		assert.Less(t, rec.Code, 300)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("UnknownOrigin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, BasePath+"/login", nil)
		req.Header.Set("Origin", "http://evil.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		ts.handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("SimpleRequest", func(t *testing.T) {
		ts.catalog.On("ListExercises", mock.Anything, "").
			Return([]models.Exercise{{ID: 1, Name: "Supino", Type: "Peito"}}, nil)

		req := httptest.NewRequest(http.MethodGet, BasePath+"/treino/exercicios", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		ts.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestOperationalRoutes(t *testing.T) {
	ts := newTestServer()

	t.Run("HealthWithoutDatabase", func(t *testing.T) {
		rec := ts.do(http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "degraded", body["status"])
	})

	t.Run("Metrics", func(t *testing.T) {
		rec := ts.do(http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("UnknownRoute", func(t *testing.T) {
		rec := ts.do(http.MethodGet, BasePath+"/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
