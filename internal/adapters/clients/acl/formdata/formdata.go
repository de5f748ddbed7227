// Package formdata encodes draft records as multipart/form-data bodies in
// the layout the admin backend's action endpoints parse.
//
// Only params are sent. Nested values are flattened into dotted paths
// ("tags.0", "address.city") and values that multipart cannot express are
// replaced by markers the backend turns back into their typed form:
//
//	nil          -> __FORM_VALUE_NULL__
//	[]T{}        -> __FORM_VALUE_EMPTY_ARRAY__
//	map{}        -> __FORM_VALUE_EMPTY_OBJECT__
//	record.File  -> file part
//	time.Time    -> RFC 3339
package formdata

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/draftdesk/internal/domain/record"
	"github.com/jsamuelsen11/draftdesk/internal/ports"
)

// Marker values understood by the admin backend.
const (
	NullValue        = "__FORM_VALUE_NULL__"
	EmptyArrayValue  = "__FORM_VALUE_EMPTY_ARRAY__"
	EmptyObjectValue = "__FORM_VALUE_EMPTY_OBJECT__"
)

const defaultFileContentType = "application/octet-stream"

// ErrUnsupportedValue is returned for param values with no form encoding
// (functions, channels, arbitrary structs).
var ErrUnsupportedValue = errors.New("unsupported param value")

// Compile-time interface check.
var _ ports.PayloadEncoder = (*Encoder)(nil)

// Field is one flattened form field. File is set for file parts; Value
// holds the text otherwise.
type Field struct {
	Name  string
	Value string
	File  *record.File
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithBoundary fixes the multipart boundary. Tests use it to get
// byte-stable bodies; production code should keep the random default.
func WithBoundary(boundary string) Option {
	return func(e *Encoder) { e.boundary = boundary }
}

// Encoder implements ports.PayloadEncoder for multipart/form-data.
type Encoder struct {
	boundary string
}

// New creates an Encoder.
func New(opts ...Option) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode flattens r.Params and writes them as a multipart body in the
// order Flatten returns.
func (e *Encoder) Encode(r record.Record) (ports.Payload, error) {
	fields, err := Flatten(r.Params)
	if err != nil {
		return ports.Payload{}, err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if e.boundary != "" {
		if err := w.SetBoundary(e.boundary); err != nil {
			return ports.Payload{}, fmt.Errorf("setting boundary: %w", err)
		}
	}

	for _, f := range fields {
		if err := writeField(w, f); err != nil {
			return ports.Payload{}, fmt.Errorf("writing field %s: %w", f.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return ports.Payload{}, fmt.Errorf("closing multipart writer: %w", err)
	}

	return ports.Payload{Body: buf.Bytes(), ContentType: w.FormDataContentType()}, nil
}

// Flatten converts params into form fields. Top-level and map keys are
// visited in sorted order, list elements in index order.
func Flatten(params map[string]any) ([]Field, error) {
	var fields []Field
	for _, name := range sortedKeys(params) {
		var err error
		fields, err = appendValue(fields, name, params[name])
		if err != nil {
			return nil, err
		}
	}
	return fields, nil
}

func writeField(w *multipart.Writer, f Field) error {
	if f.File == nil {
		return w.WriteField(f.Name, f.Value)
	}

	ct := f.File.ContentType
	if ct == "" {
		ct = defaultFileContentType
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		escapeQuotes(f.Name), escapeQuotes(f.File.Name)))
	h.Set("Content-Type", ct)

	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(f.File.Data)
	return err
}

func appendValue(fields []Field, name string, v any) ([]Field, error) {
	switch v := v.(type) {
	case nil:
		return append(fields, Field{Name: name, Value: NullValue}), nil
	case string:
		return append(fields, Field{Name: name, Value: v}), nil
	case bool:
		return append(fields, Field{Name: name, Value: strconv.FormatBool(v)}), nil
	case []byte:
		return append(fields, Field{Name: name, Value: string(v)}), nil
	case time.Time:
		return append(fields, Field{Name: name, Value: v.Format(time.RFC3339)}), nil
	case *time.Time:
		if v == nil {
			return append(fields, Field{Name: name, Value: NullValue}), nil
		}
		return append(fields, Field{Name: name, Value: v.Format(time.RFC3339)}), nil
	case record.File:
		return append(fields, Field{Name: name, File: &v}), nil
	case *record.File:
		if v == nil {
			return append(fields, Field{Name: name, Value: NullValue}), nil
		}
		f := *v
		return append(fields, Field{Name: name, File: &f}), nil
	case fmt.Stringer:
		return append(fields, Field{Name: name, Value: v.String()}), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return append(fields, Field{Name: name, Value: strconv.FormatInt(rv.Int(), 10)}), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return append(fields, Field{Name: name, Value: strconv.FormatUint(rv.Uint(), 10)}), nil
	case reflect.Float32, reflect.Float64:
		return append(fields, Field{Name: name, Value: strconv.FormatFloat(rv.Float(), 'f', -1, 64)}), nil
	case reflect.String:
		return append(fields, Field{Name: name, Value: rv.String()}), nil
	case reflect.Bool:
		return append(fields, Field{Name: name, Value: strconv.FormatBool(rv.Bool())}), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return append(fields, Field{Name: name, Value: NullValue}), nil
		}
		return appendValue(fields, name, rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		return appendList(fields, name, rv)
	case reflect.Map:
		return appendMap(fields, name, rv)
	default:
		return nil, fmt.Errorf("param %q of type %T: %w", name, v, ErrUnsupportedValue)
	}
}

func appendList(fields []Field, name string, rv reflect.Value) ([]Field, error) {
	if rv.Len() == 0 {
		return append(fields, Field{Name: name, Value: EmptyArrayValue}), nil
	}

	var err error
	for i := range rv.Len() {
		fields, err = appendValue(fields, name+"."+strconv.Itoa(i), rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
	}
	return fields, nil
}

func appendMap(fields []Field, name string, rv reflect.Value) ([]Field, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("param %q: map keys must be strings: %w", name, ErrUnsupportedValue)
	}
	if rv.Len() == 0 {
		return append(fields, Field{Name: name, Value: EmptyObjectValue}), nil
	}

	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	var err error
	for _, k := range keys {
		val := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
		fields, err = appendValue(fields, name+"."+k, val.Interface())
		if err != nil {
			return nil, err
		}
	}
	return fields, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
