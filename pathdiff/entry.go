package pathdiff

import (
	"fmt"
	"strconv"
)

type Type int

const (
	ScalarType Type = iota
	ArrayType
	ObjectType
	NullType
)

func (t Type) String() string {
	d, err := t.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (t Type) MarshalText() ([]byte, error) {
	switch t {
	case ScalarType:
		return []byte("scalar"), nil
	case ArrayType:
		return []byte("array"), nil
	case ObjectType:
		return []byte("object"), nil
	case NullType:
		return []byte("null"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not an entry type>", t)
	}
}

func (t *Type) UnmarshalText(d []byte) error {
	switch string(d) {
	case "scalar":
		*t = ScalarType
	case "array":
		*t = ArrayType
	case "object":
		*t = ObjectType
	case "null":
		*t = NullType
	default:
		return fmt.Errorf("unknown entry type %q", d)
	}
	return nil
}

// Entry is one flattened leaf of a document.
type Entry struct {
	Path string `json:"path"`
	Type Type   `json:"type"`
	// Scalar is the source type of a scalar: string, number or boolean.
	// Tree entries use attribute, text or element.
	Scalar string `json:"scalar,omitempty"`
	Value  string `json:"value"`
}

// TypeName returns the scalar type name of e if any, and its type
// otherwise.
func (e *Entry) TypeName() string {
	if e.Scalar != "" {
		return e.Scalar
	}
	return e.Type.String()
}

// Display returns the value of e, quoted when it is a string.
func (e *Entry) Display() string {
	if e.Scalar == "string" {
		return strconv.Quote(e.Value)
	}
	return e.Value
}
