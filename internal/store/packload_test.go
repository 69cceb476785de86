package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePack(t *testing.T, pack Pack) string {
	t.Helper()
	data, err := json.Marshal(pack)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "pack.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestValidatePack(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Pack)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(p *Pack) {},
		},
		{
			name:    "empty category name",
			mutate:  func(p *Pack) { p.Categories[0].Name = "" },
			wantErr: "empty name",
		},
		{
			name:    "empty question text",
			mutate:  func(p *Pack) { p.Categories[0].Questions[0].Text = "" },
			wantErr: "empty text",
		},
		{
			name:    "answer not among choices",
			mutate:  func(p *Pack) { p.Categories[0].Questions[0].Answer = "elsewhere" },
			wantErr: "answer",
		},
		{
			name: "too many choices",
			mutate: func(p *Pack) {
				p.Categories[0].Questions[0].Choices = []string{"a", "b", "c", "d", "e"}
			},
			wantErr: "choices",
		},
		{
			name:    "difficulty out of range",
			mutate:  func(p *Pack) { p.Categories[0].Questions[0].Difficulty = 9 },
			wantErr: "difficulty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pack := testPack()
			tt.mutate(&pack)
			err := validatePack(&pack)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadPack_ReimportReplacesCategory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	n, err := s.LoadPack(ctx, writePack(t, testPack()))
	require.NoError(t, err)
	require.Equal(t, 4, n)

	// Shrink the category and import again under the same id.
	smaller := testPack()
	smaller.Categories[0].Questions = smaller.Categories[0].Questions[:2]
	n, err = s.LoadPack(ctx, writePack(t, smaller))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	cats, err := s.Content().Categories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, 2, cats[0].QuestionCount)

	ids, err := s.Content().QuestionIDs(ctx, 1, false)
	require.NoError(t, err)
	assert.Len(t, ids, 2)
}

func TestLoadPack_MissingFile(t *testing.T) {
	s := openTestStore(t)

	_, err := s.LoadPack(context.Background(), filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
