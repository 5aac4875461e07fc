// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// LoadRegistry reads and validates a seed file. The file is rejected as a
// whole on any schema violation or duplicate activity name.
func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := Validate(data); err != nil {
		return nil, fmt.Errorf("registry file %s: %w", path, err)
	}

	var reg ActivityRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// Validate checks raw seed JSON against SeedSchema and rejects duplicate
// activity names.
func Validate(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(SeedSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, resultErr := range result.Errors() {
			msgs = append(msgs, resultErr.String())
		}
		return fmt.Errorf("seed file invalid: %s", strings.Join(msgs, "; "))
	}

	var reg ActivityRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return err
	}

	seen := make(map[string]bool, len(reg.Activities))
	for _, activity := range reg.Activities {
		if seen[activity.Name] {
			return fmt.Errorf("duplicate activity name: %s", activity.Name)
		}
		seen[activity.Name] = true
	}

	return nil
}

// SaveRegistry writes a registry back to disk with stable formatting.
func SaveRegistry(path string, reg *ActivityRegistry) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return err
	}
	if err := Validate(data); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Default returns the built-in seed set the service starts with when no
// registry file is configured.
func Default() *ActivityRegistry {
	return &ActivityRegistry{
		Version:     "1.0.0",
		LastUpdated: "2024-09-01",
		Activities: []Activity{
			{
				Name:            "Chess Club",
				Description:     "Learn strategies and compete in chess tournaments",
				Schedule:        "Fridays, 3:30 PM - 5:00 PM",
				MaxParticipants: 12,
				Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
			},
			{
				Name:            "Programming Class",
				Description:     "Learn programming fundamentals and build software projects",
				Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
				MaxParticipants: 20,
				Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
			},
			{
				Name:            "Gym Class",
				Description:     "Physical education and sports activities",
				Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
				MaxParticipants: 30,
				Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
			},
			{
				Name:            "Soccer Team",
				Description:     "Join the school soccer team and compete in matches",
				Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
				MaxParticipants: 22,
				Participants:    []string{"james@mergington.edu", "alexander@mergington.edu"},
			},
			{
				Name:            "Basketball Team",
				Description:     "Practice and play basketball with the school team",
				Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
				MaxParticipants: 15,
				Participants:    []string{"ava@mergington.edu", "mia@mergington.edu"},
			},
			{
				Name:            "Art Club",
				Description:     "Explore your creativity through painting and drawing",
				Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
				MaxParticipants: 15,
				Participants:    []string{"isabella@mergington.edu", "amelia@mergington.edu"},
			},
			{
				Name:            "Drama Club",
				Description:     "Act, direct, and produce plays and performances",
				Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
				MaxParticipants: 20,
				Participants:    []string{"ella@mergington.edu", "scarlett@mergington.edu"},
			},
			{
				Name:            "Math Club",
				Description:     "Solve challenging problems and prepare for math competitions",
				Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
				MaxParticipants: 10,
				Participants:    []string{"charlotte@mergington.edu", "henry@mergington.edu"},
			},
			{
				Name:            "Debate Team",
				Description:     "Develop public speaking and argumentation skills",
				Schedule:        "Fridays, 4:00 PM - 5:30 PM",
				MaxParticipants: 12,
				Participants:    []string{"lucas@mergington.edu", "grace@mergington.edu"},
			},
		},
	}
}
