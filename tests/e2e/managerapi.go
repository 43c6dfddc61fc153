//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
)

const DefaultManagerUUID = "7f1c2f6e-3c1a-4a55-9a0b-2d9b8f7d1e01"

// FakeManager is the payload the availability service returns per manager.
type FakeManager struct {
	UUID          string  `json:"uuid"`
	Name          string  `json:"name"`
	ProfileImage  string  `json:"profileImage,omitempty"`
	AverageRate   float64 `json:"averageRate"`
	IntroduceText string  `json:"introduceText,omitempty"`
}

// FakeManagerAPI stands in for the external manager availability service.
type FakeManagerAPI struct {
	server *httptest.Server

	mu       sync.Mutex
	managers []FakeManager
	status   int
	calls    atomic.Int32
}

func NewFakeManagerAPI(t *testing.T) *FakeManagerAPI {
	t.Helper()

	f := &FakeManagerAPI{}
	f.Reset()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/managers/available", f.available)
	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *FakeManagerAPI) URL() string {
	return f.server.URL
}

// Reset restores the single default manager and a 200 response.
func (f *FakeManagerAPI) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.managers = []FakeManager{{
		UUID:        DefaultManagerUUID,
		Name:        "김매니저",
		AverageRate: 4.8,
	}}
	f.status = http.StatusOK
	f.calls.Store(0)
}

func (f *FakeManagerAPI) SetManagers(managers ...FakeManager) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.managers = managers
}

func (f *FakeManagerAPI) SetStatus(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
}

func (f *FakeManagerAPI) Calls() int {
	return int(f.calls.Load())
}

func (f *FakeManagerAPI) available(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)

	var body struct {
		Address   string `json:"address"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.StartTime == "" || body.EndTime == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	status, managers := f.status, append([]FakeManager(nil), f.managers...)
	f.mu.Unlock()

	if status != http.StatusOK {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(managers)
}
