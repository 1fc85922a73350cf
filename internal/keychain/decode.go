package keychain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var errTrailingData = errors.New("trailing data after value")

// decodeStrict decodes data into a T and fails when the bytes do not describe
// a T exactly: unknown object fields, missing required fields, null where T
// cannot be nil, or trailing data. Pointer fields and fields tagged omitempty
// are optional.
func decodeStrict[T any](data []byte) (T, error) {
	var value T
	if err := checkShape(data, reflect.TypeOf(&value).Elem()); err != nil {
		return value, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&value); err != nil {
		return value, err
	}
	if dec.More() {
		return value, errTrailingData
	}
	return value, nil
}

// checkShape enforces what encoding/json tolerates: null for non-nilable
// types and absent struct fields. Nested structs are checked recursively.
func checkShape(data []byte, t reflect.Type) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		if nilable(t) {
			return nil
		}
		return fmt.Errorf("null is not a %s", t)
	}
	if t.Kind() != reflect.Struct || len(data) == 0 || data[0] != '{' {
		return nil
	}
	if reflect.PointerTo(t).Implements(reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()) {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		name, optional := jsonField(f)
		if name == "-" {
			continue
		}
		raw, ok := lookupField(fields, name)
		if !ok {
			if optional || f.Type.Kind() == reflect.Pointer {
				continue
			}
			return fmt.Errorf("missing field %q", name)
		}
		if err := checkShape(raw, f.Type); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
	}
	return nil
}

func jsonField(f reflect.StructField) (name string, optional bool) {
	name = f.Name
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return name, false
	}
	parts := strings.Split(tag, ",")
	if parts[0] == "-" && len(parts) == 1 {
		return "-", true
	}
	if parts[0] != "" {
		name = parts[0]
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" || opt == "omitzero" {
			optional = true
		}
	}
	return name, optional
}

// lookupField matches keys the way encoding/json does, preferring an exact
// match over a case-insensitive one.
func lookupField(fields map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	if raw, ok := fields[name]; ok {
		return raw, true
	}
	for k, raw := range fields {
		if strings.EqualFold(k, name) {
			return raw, true
		}
	}
	return nil, false
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	}
	return false
}
