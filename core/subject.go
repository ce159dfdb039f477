package core

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnknownSubjectType is returned when a scope entry names a subject type
// that has not been registered with the logger.
var ErrUnknownSubjectType = errors.New("unknown subject type")

// SubjectName resolves the display and registry name for a subject.
// A reflect.Type names itself, a string is taken verbatim, and any other
// value is named by its runtime type with pointers dereferenced. The empty
// string means the subject is unresolvable.
func SubjectName(subject any) string {
	switch v := subject.(type) {
	case nil:
		return ""
	case reflect.Type:
		return typeName(v)
	case string:
		return v
	}
	return typeName(reflect.TypeOf(subject))
}

func typeName(typ reflect.Type) string {
	for typ != nil && typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ == nil {
		return ""
	}
	if name := typ.Name(); name != "" {
		return name
	}
	// Unnamed types (slices, maps, anonymous structs) fall back to their
	// full string form.
	return typ.String()
}

// SubjectValue renders the subject's default string conversion. This is the
// only serialization hook; no structured serialization is attempted.
func SubjectValue(subject any) string {
	if subject == nil {
		return ""
	}
	return fmt.Sprint(subject)
}
