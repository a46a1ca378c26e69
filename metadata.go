package resource

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// MetadataConverter lets a metadata type build its own fields instead of
// having them walked by FlattenMetadata.
type MetadataConverter interface {
	MetadataFields() []MetadataField
}

type ErrUnsupportedMetadata struct {
	Type reflect.Type
}

func (err ErrUnsupportedMetadata) Error() string {
	return fmt.Sprintf("metadata must be a struct, got %s", err.Type)
}

// FlattenMetadata turns a metadata record into the name/value list the host
// expects.
//
// Fields are emitted in declaration order. The name is the field's json tag
// name, or the Go field name when there is no tag. The value is the field's
// compact JSON encoding, except that strings are emitted as their raw
// contents:
//
//	struct {
//		Commit string `json:"commit"`
//		MRIID  int    `json:"mr_iid"`
//	}{"sha", 1}
//
// flattens to [{commit sha} {mr_iid 1}].
//
// Fields tagged json:"-" and unexported fields are skipped, untagged embedded
// structs are inlined and omitempty drops empty values. A record with no
// fields flattens to an empty, non-nil list.
func FlattenMetadata(metadata interface{}) ([]MetadataField, error) {
	switch m := metadata.(type) {
	case MetadataConverter:
		fields := m.MetadataFields()
		if fields == nil {
			fields = []MetadataField{}
		}
		return fields, nil
	case []MetadataField:
		return append([]MetadataField{}, m...), nil
	}

	value := reflect.ValueOf(metadata)
	for value.Kind() == reflect.Ptr || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return []MetadataField{}, nil
		}

		value = value.Elem()

		switch m := value.Interface().(type) {
		case MetadataConverter, []MetadataField:
			return FlattenMetadata(m)
		}
	}

	if value.Kind() != reflect.Struct {
		return nil, ErrUnsupportedMetadata{Type: reflect.TypeOf(metadata)}
	}

	if !value.CanAddr() {
		addressable := reflect.New(value.Type()).Elem()
		addressable.Set(value)
		value = addressable
	}

	return appendFields([]MetadataField{}, value)
}

func appendFields(fields []MetadataField, value reflect.Value) ([]MetadataField, error) {
	structType := value.Type()

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}

		name, options := parseTag(tag)
		fieldValue := value.Field(i)

		if field.Anonymous && name == "" && embedsStruct(field.Type) {
			embedded, ok := embeddedStruct(field, fieldValue)
			if ok {
				var err error
				fields, err = appendFields(fields, embedded)
				if err != nil {
					return nil, err
				}
			}

			continue
		}

		if !field.IsExported() {
			continue
		}

		if name == "" {
			name = field.Name
		}

		if options.contains("omitempty") && isEmptyValue(fieldValue) {
			continue
		}

		// pointer receivers of MarshalJSON only apply to addressable values
		rendered, err := renderValue(fieldValue.Addr().Interface())
		if err != nil {
			return nil, errors.Wrapf(err, "metadata field '%s'", name)
		}

		fields = append(fields, MetadataField{
			Name:  name,
			Value: rendered,
		})
	}

	return fields, nil
}

func embedsStruct(fieldType reflect.Type) bool {
	if fieldType.Kind() == reflect.Ptr {
		fieldType = fieldType.Elem()
	}

	return fieldType.Kind() == reflect.Struct
}

// embeddedStruct resolves an embedded struct field to the struct whose fields
// are promoted. Nil embedded pointers are skipped, as are pointers to
// unexported struct types.
func embeddedStruct(field reflect.StructField, value reflect.Value) (reflect.Value, bool) {
	if value.Kind() == reflect.Ptr {
		if !field.IsExported() || value.IsNil() {
			return reflect.Value{}, false
		}

		value = value.Elem()
	}

	return value, true
}

func renderValue(value interface{}) (string, error) {
	buf := new(bytes.Buffer)

	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)

	err := encoder.Encode(value)
	if err != nil {
		return "", err
	}

	raw := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	if len(raw) > 0 && raw[0] == '"' {
		var str string
		err := json.Unmarshal(raw, &str)
		if err != nil {
			return "", err
		}

		return str, nil
	}

	return string(raw), nil
}

type tagOptions string

func parseTag(tag string) (string, tagOptions) {
	if idx := strings.Index(tag, ","); idx != -1 {
		return tag[:idx], tagOptions(tag[idx+1:])
	}

	return tag, ""
}

func (options tagOptions) contains(name string) bool {
	for _, option := range strings.Split(string(options), ",") {
		if option == name {
			return true
		}
	}

	return false
}

// same notion of empty as encoding/json's omitempty
func isEmptyValue(value reflect.Value) bool {
	switch value.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return value.Len() == 0
	case reflect.Bool:
		return !value.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return value.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return value.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return value.IsNil()
	}

	return false
}
