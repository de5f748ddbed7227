package record

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial *Record
		want    Record
	}{
		{
			name: "nil initial yields empty mappings",
			want: Record{
				Params:    map[string]any{},
				Errors:    map[string]string{},
				Populated: map[string]any{},
			},
		},
		{
			name:    "missing mappings default to empty",
			initial: &Record{ID: "7", Params: map[string]any{"age": 30}},
			want: Record{
				ID:        "7",
				Params:    map[string]any{"age": 30},
				Errors:    map[string]string{},
				Populated: map[string]any{},
			},
		},
		{
			name: "all mappings carried over",
			initial: &Record{
				Params:    map[string]any{"name": "Alice"},
				Errors:    map[string]string{"name": "too short"},
				Populated: map[string]any{"owner": "u1"},
			},
			want: Record{
				Params:    map[string]any{"name": "Alice"},
				Errors:    map[string]string{"name": "too short"},
				Populated: map[string]any{"owner": "u1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := New(tt.initial)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("New() mismatch (-want +got):\n%s", diff)
			}
			if got.Params == nil || got.Errors == nil || got.Populated == nil {
				t.Error("New() returned a nil mapping")
			}
		})
	}
}

func TestNew_DoesNotAliasInitial(t *testing.T) {
	t.Parallel()

	initial := &Record{Params: map[string]any{"a": 1}}
	got := New(initial)
	got.Params["a"] = 2

	if initial.Params["a"] != 1 {
		t.Errorf("initial.Params[a] = %v, want 1 (New must copy)", initial.Params["a"])
	}
}

func TestWithField(t *testing.T) {
	t.Parallel()

	base := Record{
		Params:    map[string]any{"age": 30},
		Errors:    map[string]string{"age": "too young"},
		Populated: map[string]any{"team": "core"},
	}

	got := base.WithField("name", "Alice")

	want := Record{
		Params:    map[string]any{"age": 30, "name": "Alice"},
		Errors:    map[string]string{"age": "too young"},
		Populated: map[string]any{"team": "core"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WithField() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := base.Params["name"]; ok {
		t.Error("WithField() mutated the receiver's params")
	}
}

func TestWithField_Overwrites(t *testing.T) {
	t.Parallel()

	got := New(nil).WithField("name", "Alice").WithField("name", "Bob")
	if got.Params["name"] != "Bob" {
		t.Errorf("Params[name] = %v, want Bob", got.Params["name"])
	}
}

func TestWithErrors(t *testing.T) {
	t.Parallel()

	base := Record{
		Params:    map[string]any{"email": "x"},
		Errors:    map[string]string{"name": "required"},
		Populated: map[string]any{},
	}

	got := base.WithErrors(map[string]string{"email": "invalid"})
	if diff := cmp.Diff(map[string]string{"email": "invalid"}, got.Errors); diff != "" {
		t.Errorf("Errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(base.Params, got.Params); diff != "" {
		t.Errorf("Params changed (-want +got):\n%s", diff)
	}

	cleared := got.WithErrors(nil)
	if cleared.Errors == nil || len(cleared.Errors) != 0 {
		t.Errorf("WithErrors(nil).Errors = %v, want empty non-nil map", cleared.Errors)
	}
}
