package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Generate builds a JSON schema for the given Go struct type by reflection.
// Field names come from json tags, and the description, enum, minimum, and
// maximum tags carry over to the corresponding schema keywords.
//
// Example:
//
//	type Settings struct {
//	  Mode    string `json:"mode" description:"Render mode" enum:"draft,final"`
//	  Seconds int    `json:"seconds" minimum:"1" maximum:"60"`
//	}
//	s, err := schema.Generate(Settings{})
func Generate(v any) (*Schema, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, fmt.Errorf("cannot generate schema for nil value")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot generate schema for non-struct type %s", t.Kind())
	}
	prop, err := reflectType(t)
	if err != nil {
		return nil, err
	}
	additional := false
	return &Schema{
		Type:                 prop.Type,
		Properties:           prop.Properties,
		Required:             prop.Required,
		AdditionalProperties: &additional,
	}, nil
}

func reflectType(t reflect.Type) (*Property, error) {
	switch t.Kind() {
	case reflect.String:
		return &Property{Type: String}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Property{Type: Integer}, nil
	case reflect.Float32, reflect.Float64:
		return &Property{Type: Number}, nil
	case reflect.Bool:
		return &Property{Type: Boolean}, nil
	case reflect.Slice, reflect.Array:
		items, err := reflectType(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("failed to reflect element type: %w", err)
		}
		return &Property{Type: Array, Items: items}, nil
	case reflect.Ptr:
		return reflectType(t.Elem())
	case reflect.Struct:
		return reflectStruct(t)
	default:
		return nil, fmt.Errorf("unsupported type: %s", t.Kind())
	}
}

func reflectStruct(t reflect.Type) (*Property, error) {
	properties := make(map[string]*Property)
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, isRequired := parseJSONTag(field)
		if name == "-" {
			continue
		}
		prop, err := reflectType(field.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to reflect field %s: %w", field.Name, err)
		}
		applyFieldTags(prop, field)
		if isRequired {
			required = append(required, name)
		}
		properties[name] = prop
	}

	return &Property{
		Type:       Object,
		Properties: properties,
		Required:   required,
	}, nil
}

// parseJSONTag extracts the JSON field name and returns whether the field is
// required. Fields without omitempty are required.
func parseJSONTag(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name, true
	}
	parts := strings.Split(tag, ",")
	name := parts[0]
	if name == "" {
		name = field.Name
	}
	for _, part := range parts[1:] {
		if part == "omitempty" {
			return name, false
		}
	}
	return name, true
}

func applyFieldTags(prop *Property, field reflect.StructField) {
	if desc := field.Tag.Get("description"); desc != "" {
		prop.Description = desc
	}
	if enum := field.Tag.Get("enum"); enum != "" {
		prop.Enum = strings.Split(enum, ",")
	}
	if min := field.Tag.Get("minimum"); min != "" {
		if value, err := strconv.ParseFloat(min, 64); err == nil {
			prop.Minimum = &value
		}
	}
	if max := field.Tag.Get("maximum"); max != "" {
		if value, err := strconv.ParseFloat(max, 64); err == nil {
			prop.Maximum = &value
		}
	}
}
