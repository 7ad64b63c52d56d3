package proxy

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func forward(t *testing.T, target string, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	p, err := New(target)
	assert.NoError(t, err)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = p.Handle(c)
	return rec
}

func TestForwardsPathAndQueryVerbatim(t *testing.T) {
	var gotPath, gotQuery string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusOK)
	}))
	defer backend.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/jobs?skill=spark&location=remote", nil)
	rec := forward(t, backend.URL, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/api/jobs", gotPath)
	assert.Equal(t, "skill=spark&location=remote", gotQuery)
}

func TestRelaysBackendResponseUnchanged(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Request-Id", "abc123")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"ok":false}`))
	}))
	defer backend.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/anything", nil)
	rec := forward(t, backend.URL, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "abc123", rec.Header().Get("X-Request-Id"))
	assert.Equal(t, `{"ok":false}`, rec.Body.String())
}

func TestForwardsMethodHeadersAndBody(t *testing.T) {
	var gotMethod, gotAuth, gotBody string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusCreated)
	}))
	defer backend.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/applications", strings.NewReader(`{"job_id":"j1"}`))
	req.Header.Set("Authorization", "Bearer token123")
	req.Header.Set("Content-Type", "application/json")
	rec := forward(t, backend.URL, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "Bearer token123", gotAuth)
	assert.Equal(t, `{"job_id":"j1"}`, gotBody)
}

func TestRewritesHostHeader(t *testing.T) {
	var gotHost string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHost = r.Host
		w.WriteHeader(http.StatusOK)
	}))
	defer backend.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	req.Host = "edge.example.com"
	rec := forward(t, backend.URL, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, strings.TrimPrefix(backend.URL, "http://"), gotHost)
}

func TestBackendUnreachableYields500JSON(t *testing.T) {
	// a closed server guarantees a connection failure
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	rec := forward(t, backend.URL, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
}
