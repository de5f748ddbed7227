package draft

import "github.com/jsamuelsen11/draftdesk/internal/domain/record"

// Change is a tagged draft edit: either FieldChange or RecordChange. The
// caller picks the variant; the controller never inspects argument shapes.
type Change interface {
	change()
}

// FieldChange sets a single param.
type FieldChange struct {
	Name  string
	Value any
}

// RecordChange replaces the whole draft.
type RecordChange struct {
	Record record.Record
}

func (FieldChange) change()  {}
func (RecordChange) change() {}
