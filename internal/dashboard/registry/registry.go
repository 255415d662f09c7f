package registry

import (
	apperrors "VCS_Status_Dashboard/internal/dashboard/errors"
	"VCS_Status_Dashboard/internal/dashboard/model"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
)

// Registry holds the configured datasources and their runtime state.
// Methods return copies; callers never hold a pointer into the registry.
type Registry struct {
	mu      sync.RWMutex
	sources []model.Datasource
}

func NewRegistry(sources []model.Datasource) *Registry {
	r := &Registry{
		sources: make([]model.Datasource, 0, len(sources)),
	}
	for _, source := range sources {
		if _, found := r.indexOf(source.Name); found {
			continue
		}
		r.sources = append(r.sources, source)
	}
	return r
}

func (r *Registry) indexOf(name string) (int, bool) {
	for i := range r.sources {
		if strings.EqualFold(r.sources[i].Name, name) {
			return i, true
		}
	}
	return -1, false
}

func (r *Registry) List() []model.Datasource {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]model.Datasource, len(r.sources))
	copy(res, r.sources)
	return res
}

func (r *Registry) Enabled() []model.Datasource {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []model.Datasource
	for _, source := range r.sources {
		if source.Enabled {
			res = append(res, source)
		}
	}
	return res
}

// Get looks a datasource up by name, ignoring case.
func (r *Registry) Get(name string) (model.Datasource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, found := r.indexOf(name)
	if !found {
		return model.Datasource{}, fmt.Errorf("Registry.Get %q: %w", name, apperrors.ErrDatasourceNotFound)
	}
	return r.sources[i], nil
}

// IsEnabled reports false for unknown datasources.
func (r *Registry) IsEnabled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, found := r.indexOf(name)
	return found && r.sources[i].Enabled
}

func (r *Registry) SetEnabled(name string, enabled bool) (model.Datasource, error) {
	return r.update(name, func(source *model.Datasource) {
		source.Enabled = enabled
	})
}

func (r *Registry) Toggle(name string) (model.Datasource, error) {
	return r.update(name, func(source *model.Datasource) {
		source.Enabled = !source.Enabled
	})
}

// ApplyEnabledSet enables exactly the named datasources and disables the others.
// It returns the names that did not match any datasource.
func (r *Registry) ApplyEnabledSet(names []string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := make(map[string]bool, len(names))
	for i := range r.sources {
		r.sources[i].Enabled = false
		for _, name := range names {
			if strings.EqualFold(r.sources[i].Name, name) {
				r.sources[i].Enabled = true
				matched[strings.ToLower(name)] = true
			}
		}
	}
	var unknown []string
	for _, name := range names {
		if !matched[strings.ToLower(name)] {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

func (r *Registry) RecordChecksUpdate(name string, refreshedAt time.Time) error {
	_, err := r.update(name, func(source *model.Datasource) {
		source.LastChecksUpdate = refreshedAt
		source.LastError = ""
		source.LastErrorAt = time.Time{}
	})
	return err
}

// RecordAvailabilityWindow stores the end of the window and its length in whole days, rounded up.
func (r *Registry) RecordAvailabilityWindow(name string, from time.Time, to time.Time) error {
	_, err := r.update(name, func(source *model.Datasource) {
		source.LastAvailabilityUpdate = to
		source.AvailabilitySpanDays = SpanInDays(from, to)
	})
	return err
}

func (r *Registry) RecordFailure(name string, cause error, at time.Time) error {
	_, err := r.update(name, func(source *model.Datasource) {
		source.LastError = cause.Error()
		source.LastErrorAt = at
	})
	return err
}

func (r *Registry) update(name string, fn func(source *model.Datasource)) (model.Datasource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, found := r.indexOf(name)
	if !found {
		return model.Datasource{}, fmt.Errorf("Registry.update %q: %w", name, apperrors.ErrDatasourceNotFound)
	}
	fn(&r.sources[i])
	return r.sources[i], nil
}

// SpanInDays is 0 when either end of the window is unknown or the window is reversed.
func SpanInDays(from time.Time, to time.Time) int {
	if from.IsZero() || to.IsZero() || !to.After(from) {
		return 0
	}
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}
