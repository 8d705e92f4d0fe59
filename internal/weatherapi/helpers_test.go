package weatherapi

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// RoundTripperFunc lets tests stub the transport of an http.Client.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// recordingServer is a stub OpenWeatherMap that remembers the last request it saw.
type recordingServer struct {
	*httptest.Server
	mu       sync.Mutex
	path     string
	query    url.Values
	rawQuery string
}

func newRecordingServer(t *testing.T, status int, body string) *recordingServer {
	t.Helper()
	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.mu.Lock()
		rs.path = r.URL.Path
		rs.query = r.URL.Query()
		rs.rawQuery = r.URL.RawQuery
		rs.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(rs.Close)
	return rs
}

func (rs *recordingServer) lastRequest() (string, url.Values, string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.path, rs.query, rs.rawQuery
}

func (rs *recordingServer) client() *Client {
	return New(Config{
		BaseURL: rs.URL + "/data/2.5",
		GeoURL:  rs.URL + "/geo/1.0/",
		APIKey:  "test_api_key",
	})
}
