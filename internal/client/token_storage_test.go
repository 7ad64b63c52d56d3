package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewFileStorage(path)

	_, ok := s.Token()
	assert.False(t, ok)

	assert.NoError(t, s.Save("tok123"))
	token, ok := s.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok123", token)

	assert.NoError(t, s.Clear())
	_, ok = s.Token()
	assert.False(t, ok)
}

func TestFileStorageClearIsIdempotent(t *testing.T) {
	s := NewFileStorage(filepath.Join(t.TempDir(), "session.json"))
	assert.NoError(t, s.Clear())
	assert.NoError(t, s.Clear())
}
