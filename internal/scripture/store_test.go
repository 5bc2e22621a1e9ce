package scripture

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStore_MissingFileFallsBack(t *testing.T) {
	s := NewStore("does/not/exist.json", zap.NewNop())

	assert.Equal(t, len(defaultVerses), s.Len())
	assert.NotEmpty(t, s.Random())
}

func TestStore_MalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verses.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewStore(path, zap.NewNop())
	assert.Equal(t, len(defaultVerses), s.Len())
}

func TestStore_EmptyFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verses.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	s := NewStore(path, zap.NewNop())
	assert.Equal(t, len(defaultVerses), s.Len())
}

func TestStore_LoadsVerses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verses.json")
	data := `[{"reference":"John 3:16","text":"For God so loved the world."}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s := NewStore(path, zap.NewNop())
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "John 3:16 - For God so loved the world.", s.Random())
}

func TestStore_RandomFormat(t *testing.T) {
	s := NewStore("does/not/exist.json", zap.NewNop())

	verse := s.Random()
	assert.Contains(t, verse, " - ", "verse is formatted as reference - text")
}

func TestStore_GivingVerses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verses.json")
	data := `[
		{"reference":"2 Corinthians 9:7","text":"God loves a cheerful giver."},
		{"reference":"Psalm 23:1","text":"The Lord is my shepherd."},
		{"reference":"Luke 6:38","text":"Give, and it will be given to you."}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s := NewStore(path, zap.NewNop())
	giving := s.GivingVerses()

	require.Len(t, giving, 2)
	for _, v := range giving {
		lower := strings.ToLower(v.Text)
		assert.True(t, strings.Contains(lower, "give") || strings.Contains(lower, "cheerful"))
	}
}
