// Package activities holds the in-memory activity registry and the three
// operations that act on it: list, signup, unregister.
package activities

import (
	"sync"

	"mergington-activities/internal/common/errors"
	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/metrics"
	"mergington-activities/pkg/registry"
)

// Activity is one registry record as exposed over the API. MaxParticipants
// is advisory: signup never checks it.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Store owns the registry for the process lifetime. One mutex guards the
// whole map; each check-then-mutate pair is a single critical section, so
// concurrent signups cannot produce duplicate roster entries.
type Store struct {
	mu         sync.RWMutex
	activities map[string]*Activity
	logger     logger.Logger
}

// NewStore builds the registry from a seed. Participant slices are copied so
// the caller's seed cannot alias live rosters.
func NewStore(seed *registry.ActivityRegistry, log logger.Logger) *Store {
	acts := make(map[string]*Activity, len(seed.Activities))
	for _, a := range seed.Activities {
		participants := make([]string, len(a.Participants))
		copy(participants, a.Participants)
		acts[a.Name] = &Activity{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    participants,
		}
		metrics.RosterSize.WithLabelValues(a.Name).Set(float64(len(participants)))
	}

	return &Store{
		activities: acts,
		logger:     log.WithFields(map[string]interface{}{"component": "activities-store"}),
	}
}

// List returns a snapshot of the whole registry. Rosters are deep-copied so
// callers cannot mutate the store through the returned value.
func (s *Store) List() map[string]Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Activity, len(s.activities))
	for name, a := range s.activities {
		participants := make([]string, len(a.Participants))
		copy(participants, a.Participants)
		out[name] = Activity{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    participants,
		}
	}
	return out
}

// Signup appends email to the activity's roster. Capacity is not enforced;
// only existence and non-duplication are checked.
func (s *Store) Signup(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, exists := s.activities[name]
	if !exists {
		return errors.NewActivityNotFoundError(name)
	}

	for _, participant := range activity.Participants {
		if participant == email {
			return errors.NewAlreadyRegisteredError(email, name)
		}
	}

	activity.Participants = append(activity.Participants, email)
	metrics.SignupsTotal.WithLabelValues(name).Inc()
	metrics.RosterSize.WithLabelValues(name).Set(float64(len(activity.Participants)))

	s.logger.Info("participant signed up", map[string]interface{}{
		"activity":   name,
		"email":      email,
		"rosterSize": len(activity.Participants),
	})
	return nil
}

// Unregister removes email from the activity's roster.
func (s *Store) Unregister(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, exists := s.activities[name]
	if !exists {
		return errors.NewActivityNotFoundError(name)
	}

	idx := -1
	for i, participant := range activity.Participants {
		if participant == email {
			idx = i
			break
		}
	}
	if idx == -1 {
		return errors.NewNotRegisteredError(email, name)
	}

	activity.Participants = append(activity.Participants[:idx], activity.Participants[idx+1:]...)
	metrics.UnregistrationsTotal.WithLabelValues(name).Inc()
	metrics.RosterSize.WithLabelValues(name).Set(float64(len(activity.Participants)))

	s.logger.Info("participant unregistered", map[string]interface{}{
		"activity":   name,
		"email":      email,
		"rosterSize": len(activity.Participants),
	})
	return nil
}
