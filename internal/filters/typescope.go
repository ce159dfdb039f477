package filters

import (
	"fmt"
	"strings"

	"github.com/typelog/typelog/core"
	"github.com/typelog/typelog/selflog"
)

// allTypesMarker is the scope token that turns per-type scoping off.
const allTypesMarker = "ALL"

// TypeScopeFilter decides whether an event's severity passes either the
// global floor or a per-subject-type floor. While per-type scoping is on,
// the scope map is an allow-list: subject types without an entry are never
// logged. The filter is not synchronized; the owning logger serializes
// access.
type TypeScopeFilter struct {
	defaultFloor core.Severity
	logAll       bool
	scopes       map[string]core.Severity
	known        map[string]struct{}
}

// NewTypeScopeFilter creates a filter that logs every subject type against
// an unrestricted floor.
func NewTypeScopeFilter() *TypeScopeFilter {
	return &TypeScopeFilter{
		defaultFloor: core.All,
		logAll:       true,
		scopes:       make(map[string]core.Severity),
		known:        make(map[string]struct{}),
	}
}

// SetDefaultFloor sets the global minimum severity applied while per-type
// scoping is off.
func (f *TypeScopeFilter) SetDefaultFloor(floor core.Severity) {
	f.defaultFloor = floor
}

// DefaultFloor returns the global minimum severity.
func (f *TypeScopeFilter) DefaultFloor() core.Severity {
	return f.defaultFloor
}

// SetAll turns per-type scoping off; decisions fall back to the global
// floor. Recorded scope entries are kept for a later SetScope or Configure.
func (f *TypeScopeFilter) SetAll() {
	f.logAll = true
}

// LogsAll reports whether per-type scoping is off.
func (f *TypeScopeFilter) LogsAll() bool {
	return f.logAll
}

// RegisterName marks a subject type name as resolvable for Configure.
func (f *TypeScopeFilter) RegisterName(name string) {
	f.known[name] = struct{}{}
}

// SetScope turns per-type scoping on and upserts the floor for one subject
// type. The literal token "ALL" stores the always-pass marker; a token that
// fails to parse degrades to always-pass with a selflog warning rather than
// failing the caller.
func (f *TypeScopeFilter) SetScope(name, floorToken string) {
	f.logAll = false
	f.scopes[name] = parseFloorToken(name, floorToken)
}

// Scope returns the recorded floor for a subject type name.
func (f *TypeScopeFilter) Scope(name string) (core.Severity, bool) {
	floor, ok := f.scopes[name]
	return floor, ok
}

// Configure applies an ordered list of scope tokens, each either the
// all-types marker "ALL" or "Name[:SEVERITY]" (a bare name means
// always-pass). Entries are applied independently: a bad severity token
// degrades that entry to always-pass, while an unregistered subject type
// name aborts the rest of the call with core.ErrUnknownSubjectType, leaving
// earlier entries applied. The all-types marker takes precedence over
// specific entries in the same call regardless of order; those entries are
// still recorded, but per-type scoping stays off.
func (f *TypeScopeFilter) Configure(entries []string) error {
	sawMarker := false
	for _, entry := range entries {
		token := strings.TrimSpace(entry)
		if strings.EqualFold(token, allTypesMarker) {
			sawMarker = true
			f.logAll = true
			continue
		}
		name, floorToken, _ := strings.Cut(token, ":")
		if _, ok := f.known[name]; !ok {
			return fmt.Errorf("%w: %q", core.ErrUnknownSubjectType, name)
		}
		f.scopes[name] = parseFloorToken(name, floorToken)
		if !sawMarker {
			f.logAll = false
		}
	}
	return nil
}

// IsEnabled decides whether an event passes. With per-type scoping off the
// global floor applies to everything; with it on, the subject's resolved
// type name is looked up in the allow-list and its entry becomes the floor.
func (f *TypeScopeFilter) IsEnabled(severity core.Severity, subject any) bool {
	if f.logAll {
		return severity.Meets(f.defaultFloor)
	}
	name := core.SubjectName(subject)
	if name == "" {
		return false
	}
	floor, ok := f.scopes[name]
	if !ok {
		return false
	}
	return severity.Meets(floor)
}

func parseFloorToken(name, token string) core.Severity {
	if token == "" || strings.EqualFold(token, allTypesMarker) {
		return core.All
	}
	floor, err := core.ParseSeverity(token)
	if err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[scope] %v for %q, defaulting to ALL", err, name)
		}
		return core.All
	}
	return floor
}
