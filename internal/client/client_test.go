package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttachesBearerOnlyWhenTokenPresent(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	storage := NewMemoryStorage()
	c := New(server.URL, storage)

	_, err := c.Me(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, gotAuth)

	assert.NoError(t, storage.Save("tok123"))
	_, err = c.Me(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestNon2xxUsesMessageField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"already applied to this job"}`))
	}))
	defer server.Close()

	c := New(server.URL, NewMemoryStorage())
	_, err := c.Apply(context.Background(), "j1", "")
	assert.Error(t, err)

	apiErr, ok := err.(*APIError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "already applied to this job", apiErr.Message)
}

func TestNon2xxFallsBackToGenericMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	c := New(server.URL, NewMemoryStorage())
	_, err := c.Me(context.Background())
	assert.Error(t, err)

	apiErr, ok := err.(*APIError)
	assert.True(t, ok)
	assert.Equal(t, fallbackErrMsg, apiErr.Message)
}

func TestLoginPersistsAccessToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/auth/login":
			_, _ = w.Write([]byte(`{"access_token":"issued-token","refresh_token":"r1","user":{"email":"a@b.c"}}`))
		case "/api/users/me":
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`{"email":"a@b.c"}`))
		}
	}))
	defer server.Close()

	storage := NewMemoryStorage()
	c := New(server.URL, storage)

	resp, err := c.Login(context.Background(), "a@b.c", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "issued-token", resp.AccessToken)

	token, ok := storage.Token()
	assert.True(t, ok)
	assert.Equal(t, "issued-token", token)

	_, err = c.Me(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Bearer issued-token", gotAuth)
}

func TestLogoutClearsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	storage := NewMemoryStorage()
	assert.NoError(t, storage.Save("tok123"))

	c := New(server.URL, storage)
	assert.NoError(t, c.Logout(context.Background(), "r1"))

	_, ok := storage.Token()
	assert.False(t, ok)
}

func TestUploadCVRejectsBadTypeLocally(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	c := New(server.URL, NewMemoryStorage())
	_, err := c.UploadCV(context.Background(), "cv.exe", "application/octet-stream", []byte("x"))
	assert.Error(t, err)
	assert.Equal(t, 0, requests, "no request should be issued for a rejected type")
}

func TestUploadCVFollowsTicketProtocol(t *testing.T) {
	var putBody int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/cv/upload":
			_, _ = w.Write([]byte(`{"ticket":"t1","upload_url":"/api/cv/files/t1","path":"cv/t1.pdf"}`))
		case r.Method == http.MethodPut && r.URL.Path == "/api/cv/files/t1":
			buf := make([]byte, 16)
			n, _ := r.Body.Read(buf)
			putBody = n
			_, _ = w.Write([]byte(`{"path":"cv/t1.pdf"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := New(server.URL, NewMemoryStorage())
	path, err := c.UploadCV(context.Background(), "cv.pdf", "application/pdf", []byte("%PDF-1.4"))
	assert.NoError(t, err)
	assert.Equal(t, "cv/t1.pdf", path)
	assert.Equal(t, len("%PDF-1.4"), putBody)
}
