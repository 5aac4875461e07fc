package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "activities.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	reg := Default()

	require.NotEmpty(t, reg.Activities)

	names := make(map[string]Activity, len(reg.Activities))
	for _, activity := range reg.Activities {
		_, dup := names[activity.Name]
		require.False(t, dup, "duplicate seed activity %q", activity.Name)
		names[activity.Name] = activity
	}

	// Seed expectations the API tests depend on.
	soccer, exists := names["Soccer Team"]
	require.True(t, exists)
	assert.Contains(t, soccer.Participants, "james@mergington.edu")
	for _, required := range []string{"Chess Club", "Programming Class", "Art Club", "Drama Club"} {
		assert.Contains(t, names, required)
	}
}

func TestSaveRegistry_DefaultSeedSatisfiesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.json")
	require.NoError(t, SaveRegistry(path, Default()))

	loaded, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded)
}

func TestLoadRegistry(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "valid file",
			content: `{
				"version": "1.0.0",
				"lastUpdated": "2024-09-01",
				"activities": [
					{
						"name": "Robotics Club",
						"description": "Build and program robots",
						"schedule": "Mondays, 3:30 PM - 5:00 PM",
						"max_participants": 16,
						"participants": ["a@mergington.edu"]
					}
				]
			}`,
		},
		{
			name:    "missing activities key",
			content: `{"version": "1.0.0"}`,
			wantErr: "seed file invalid",
		},
		{
			name: "missing required activity field",
			content: `{
				"activities": [
					{"name": "Robotics Club", "description": "x", "schedule": "y", "participants": []}
				]
			}`,
			wantErr: "seed file invalid",
		},
		{
			name: "negative capacity",
			content: `{
				"activities": [
					{"name": "Robotics Club", "description": "x", "schedule": "y", "max_participants": -1, "participants": []}
				]
			}`,
			wantErr: "seed file invalid",
		},
		{
			name: "duplicate names",
			content: `{
				"activities": [
					{"name": "Robotics Club", "description": "x", "schedule": "y", "max_participants": 5, "participants": []},
					{"name": "Robotics Club", "description": "z", "schedule": "w", "max_participants": 5, "participants": []}
				]
			}`,
			wantErr: "duplicate activity name",
		},
		{
			name:    "malformed json",
			content: `{"activities": [`,
			wantErr: "schema validation error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSeedFile(t, tt.content)

			reg, err := LoadRegistry(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, reg.Activities, 1)
			assert.Equal(t, "Robotics Club", reg.Activities[0].Name)
			assert.Equal(t, 16, reg.Activities[0].MaxParticipants)
		})
	}
}

func TestLoadRegistry_FileMissing(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
