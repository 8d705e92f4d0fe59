package integrationtest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/fakhrymubarak/kloudly/internal/handler"
	"github.com/fakhrymubarak/kloudly/internal/middleware"
	"github.com/fakhrymubarak/kloudly/internal/service"
	"github.com/fakhrymubarak/kloudly/internal/weatherapi"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const testAPIKey = "test_api_key"

type MockResponse struct {
	Code int
	Body string
}

// mockOWM is a stand-in for api.openweathermap.org. Responses are keyed by path;
// requests without the test key are answered with 401 like the real service.
type mockOWM struct {
	*httptest.Server
	mu        sync.Mutex
	responses map[string]MockResponse
	requests  []*http.Request
}

func newMockOWM() *mockOWM {
	m := &mockOWM{responses: map[string]MockResponse{}}
	m.Server = httptest.NewServer(http.HandlerFunc(m.serve))
	return m
}

func (m *mockOWM) serve(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.requests = append(m.requests, r.Clone(r.Context()))
	resp, ok := m.responses[r.URL.Path]
	m.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.URL.Query().Get("appid") != testAPIKey:
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key."}`))
	case !ok:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404","message":"Internal error"}`))
	default:
		w.WriteHeader(resp.Code)
		_, _ = w.Write([]byte(resp.Body))
	}
}

func (m *mockOWM) set(path string, resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[path] = resp
}

func (m *mockOWM) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = map[string]MockResponse{}
	m.requests = nil
}

// lastRequestTo returns the most recent request whose path ends with suffix.
func (m *mockOWM) lastRequestTo(suffix string) *http.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.requests) - 1; i >= 0; i-- {
		if strings.HasSuffix(m.requests[i].URL.Path, suffix) {
			return m.requests[i]
		}
	}
	return nil
}

func setupIntegrationTestServer(cfg weatherapi.Config) *httptest.Server {
	gin.SetMode(gin.TestMode)
	svc := service.NewWeatherService(weatherapi.New(cfg))
	svc.Logger = zap.NewNop().Sugar()

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(svc.Logger))
	handler.NewWeatherHandler(svc).RegisterRoutes(r)
	return httptest.NewServer(r)
}

func configWithKey(baseURL, key string) weatherapi.Config {
	return weatherapi.Config{
		BaseURL: baseURL + "/data/2.5",
		GeoURL:  baseURL + "/geo/1.0",
		APIKey:  key,
	}
}
