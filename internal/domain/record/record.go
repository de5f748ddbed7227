// Package record defines the draft record: the client-held, not yet
// persisted representation of an entity being created through the admin
// backend.
package record

import "maps"

// Record is a draft record. Params holds the current field values, Errors
// the per-field validation messages reported by the last failed submission,
// and Populated the fields that were touched or derived (display hints only).
//
// Values built with New, WithField, WithErrors, or Clone always carry
// non-nil maps so consumers can read them unconditionally.
type Record struct {
	ID        string
	Title     string
	Params    map[string]any
	Errors    map[string]string
	Populated map[string]any
}

// File is a file-like param value. Encoders send it as a file part.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// New seeds a draft from an optional initial record. Missing mappings
// default to empty maps. The initial record is copied, never aliased.
func New(initial *Record) Record {
	if initial == nil {
		return Record{
			Params:    map[string]any{},
			Errors:    map[string]string{},
			Populated: map[string]any{},
		}
	}
	return initial.Clone()
}

// Clone returns a copy with fresh maps. Values are copied shallowly.
func (r Record) Clone() Record {
	return Record{
		ID:        r.ID,
		Title:     r.Title,
		Params:    cloneAny(r.Params),
		Errors:    cloneStrings(r.Errors),
		Populated: cloneAny(r.Populated),
	}
}

// WithField returns a copy with Params[name] set to value. Other params,
// Errors and Populated are preserved.
func (r Record) WithField(name string, value any) Record {
	next := r.Clone()
	next.Params[name] = value
	return next
}

// WithErrors returns a copy whose Errors mapping is replaced by errs.
// Params and Populated are preserved.
func (r Record) WithErrors(errs map[string]string) Record {
	next := r.Clone()
	next.Errors = cloneStrings(errs)
	return next
}

func cloneAny(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return maps.Clone(m)
}

func cloneStrings(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return maps.Clone(m)
}
