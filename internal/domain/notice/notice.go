// Package notice defines short user-facing status messages with a severity
// tag. Notices are fire-and-forget: the core emits them to a sink and never
// reads them back.
package notice

// Type is the severity tag of a Notice. Backends may send values outside
// the defined constants; they are preserved verbatim.
type Type string

const (
	TypeSuccess Type = "success"
	TypeInfo    Type = "info"
	TypeError   Type = "error"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// Notice is a message plus severity tag.
type Notice struct {
	Message string
	Type    Type
}

// Error builds an error-severity notice.
func Error(message string) Notice {
	return Notice{Message: message, Type: TypeError}
}
