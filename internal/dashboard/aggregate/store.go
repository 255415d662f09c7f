// Package aggregate holds the in-memory model of checks grouped by folder.
//
// Checks are owned by exactly one datasource. Every write replaces the checks of a single
// datasource under the store lock, so readers only ever see fully committed cycles.
package aggregate

import (
	"VCS_Status_Dashboard/internal/dashboard/feed"
	"VCS_Status_Dashboard/internal/dashboard/model"
	"context"
	"sync"
)

// SourceStates tells the store which datasources currently contribute to rollups.
type SourceStates interface {
	IsEnabled(name string) bool
}

type Options struct {
	Ratings            model.RatingTable
	IgnoreFolderPrefix string
}

type Snapshot struct {
	Version uint64
	Folders []model.Folder
	Checks  []model.Check
}

type Store struct {
	mu           sync.RWMutex
	states       SourceStates
	ratings      model.RatingTable
	ignorePrefix string
	sourceOrder  []string
	checks       map[string][]model.Check
	folderOrder  []string
	rollups      map[string]model.Percent
	version      uint64
	changed      chan struct{}
}

func NewStore(states SourceStates, opts Options) *Store {
	return &Store{
		states:       states,
		ratings:      opts.Ratings,
		ignorePrefix: opts.IgnoreFolderPrefix,
		checks:       make(map[string][]model.Check),
		rollups:      make(map[string]model.Percent),
		changed:      make(chan struct{}),
	}
}

// IngestChecks replaces every check owned by datasource with checks and returns how many were kept.
func (s *Store) IngestChecks(datasource string, checks []model.Check) int {
	prepared := s.prepare(datasource, checks)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceLocked(datasource, prepared)
	s.bumpLocked()
	return len(prepared)
}

// IngestAvailability assigns the availability breakdown to the checks of datasource, matching by id,
// then recomputes the folder rollups. It returns how many records matched a check.
func (s *Store) IngestAvailability(datasource string, records []model.AvailabilityRecord) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := s.applyAvailabilityLocked(datasource, records)
	s.recomputeRollupsLocked()
	s.bumpLocked()
	return matched
}

// IngestCycle commits the checks and the availability of one polling cycle as a single change.
func (s *Store) IngestCycle(datasource string, checks []model.Check, records []model.AvailabilityRecord) (kept int, matched int) {
	prepared := s.prepare(datasource, checks)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceLocked(datasource, prepared)
	matched = s.applyAvailabilityLocked(datasource, records)
	s.recomputeRollupsLocked()
	s.bumpLocked()
	return len(prepared), matched
}

// RecomputeRollups refreshes the rollups after the set of enabled datasources changed.
func (s *Store) RecomputeRollups() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recomputeRollupsLocked()
	s.bumpLocked()
}

func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// WaitForChange blocks until the version is greater than since or ctx is done.
func (s *Store) WaitForChange(ctx context.Context, since uint64) (uint64, error) {
	for {
		s.mu.RLock()
		version, changed := s.version, s.changed
		s.mu.RUnlock()
		if version > since {
			return version, nil
		}
		select {
		case <-changed:
		case <-ctx.Done():
			return version, ctx.Err()
		}
	}
}

// Snapshot returns a copy of the model. Folders keep the order in which they were first seen.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	grouped := s.groupLocked(false)
	res := Snapshot{
		Version: s.version,
		Folders: make([]model.Folder, 0, len(s.folderOrder)),
	}
	for _, name := range s.folderOrder {
		res.Folders = append(res.Folders, model.Folder{
			Name:          name,
			Checks:        grouped[name],
			SuccessRollup: s.rollups[name],
		})
	}
	for _, source := range s.sourceOrder {
		res.Checks = append(res.Checks, s.checks[source]...)
	}
	return res
}

func (s *Store) prepare(datasource string, checks []model.Check) []model.Check {
	prepared := make([]model.Check, 0, len(checks))
	for _, check := range checks {
		if feed.IsIgnoredFolder(check.Folder, s.ignorePrefix) {
			continue
		}
		check.Datasource = datasource
		check.Rating = s.ratings.RatingFor(check.Type)
		check.ApplyAvailability(model.AvailabilityRecord{ID: check.ID})
		prepared = append(prepared, check)
	}
	return prepared
}

func (s *Store) replaceLocked(datasource string, checks []model.Check) {
	if _, found := s.checks[datasource]; !found {
		s.sourceOrder = append(s.sourceOrder, datasource)
	}
	s.checks[datasource] = checks
	for _, check := range checks {
		if _, found := s.rollups[check.Folder]; !found {
			s.folderOrder = append(s.folderOrder, check.Folder)
			s.rollups[check.Folder] = model.DefaultRollup
		}
	}
}

// applyAvailabilityLocked writes into a fresh slice so earlier snapshots stay untouched.
// When a datasource repeats an id, only the first check with that id receives the record.
func (s *Store) applyAvailabilityLocked(datasource string, records []model.AvailabilityRecord) int {
	current, found := s.checks[datasource]
	if !found {
		return 0
	}
	updated := make([]model.Check, len(current))
	copy(updated, current)
	firstByID := make(map[string]int, len(updated))
	for i := range updated {
		if _, seen := firstByID[updated[i].ID]; !seen {
			firstByID[updated[i].ID] = i
		}
	}
	matched := 0
	for _, record := range records {
		if i, ok := firstByID[record.ID]; ok {
			updated[i].ApplyAvailability(record)
			matched++
		}
	}
	s.checks[datasource] = updated
	return matched
}

// recomputeRollupsLocked sets each folder rollup to the rating weighted average of the success score
// of its enabled, not held checks. A folder without a positive weighted sum keeps its previous rollup.
func (s *Store) recomputeRollupsLocked() {
	for name, checks := range s.groupLocked(true) {
		var sum, ratings float64
		for _, check := range checks {
			if check.Result.IsHeld() {
				continue
			}
			sum += check.Success.Float() * float64(check.Rating)
			ratings += float64(check.Rating)
		}
		if sum > 0 && ratings > 0 {
			s.rollups[name] = model.NewPercent(sum / ratings)
		}
	}
}

func (s *Store) groupLocked(enabledOnly bool) map[string][]model.Check {
	grouped := make(map[string][]model.Check, len(s.folderOrder))
	for _, source := range s.sourceOrder {
		if enabledOnly && !s.isEnabled(source) {
			continue
		}
		for _, check := range s.checks[source] {
			grouped[check.Folder] = append(grouped[check.Folder], check)
		}
	}
	return grouped
}

func (s *Store) isEnabled(datasource string) bool {
	return s.states == nil || s.states.IsEnabled(datasource)
}

func (s *Store) bumpLocked() {
	s.version++
	close(s.changed)
	s.changed = make(chan struct{})
}
