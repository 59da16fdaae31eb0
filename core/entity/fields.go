package entity

import (
	"fmt"

	"pokemasdb/core/frozen"
	"pokemasdb/core/utils"

	"github.com/tidwall/gjson"
)

// present reports whether r holds a non-null value.
func present(r gjson.Result) bool {
	return r.Exists() && r.Type != gjson.Null
}

func typeName(r gjson.Result) string {
	switch {
	case r.IsObject():
		return "object"
	case r.IsArray():
		return "array"
	case r.Type == gjson.Number:
		return "number"
	case r.Type == gjson.String:
		return "string"
	case r.Type == gjson.True, r.Type == gjson.False:
		return "boolean"
	default:
		return "null"
	}
}

// objectOf checks that r is a JSON object before any field is read from it.
func objectOf(entity string, r gjson.Result) error {
	if !present(r) {
		return newParseError(entity, "", "missing record")
	}
	if !r.IsObject() {
		return newParseError(entity, "", fmt.Sprintf("expected object, got %s", typeName(r)))
	}
	return nil
}

func requiredString(entity string, obj gjson.Result, field string) (string, error) {
	r := obj.Get(field)
	if !present(r) {
		return "", newParseError(entity, field, "missing")
	}
	if r.Type != gjson.String {
		return "", newParseError(entity, field, fmt.Sprintf("expected string, got %s", typeName(r)))
	}
	return r.String(), nil
}

func optionalString(entity string, obj gjson.Result, field string) (string, error) {
	r := obj.Get(field)
	if !present(r) {
		return "", nil
	}
	if r.Type != gjson.String {
		return "", newParseError(entity, field, fmt.Sprintf("expected string, got %s", typeName(r)))
	}
	return r.String(), nil
}

// lenientInt accepts a JSON number or numeric text. Absent and null are 0.
func lenientInt(entity string, obj gjson.Result, field string) (int, error) {
	r := obj.Get(field)
	if !present(r) {
		return 0, nil
	}
	if r.Type != gjson.Number && r.Type != gjson.String {
		return 0, newParseError(entity, field, fmt.Sprintf("expected number or string, got %s", typeName(r)))
	}
	return utils.ToInt(r.Value()), nil
}

// stringList reads an optional array of strings into a frozen sequence.
func stringList(entity string, obj gjson.Result, field string) (*frozen.Seq[string], error) {
	out := frozen.New[string]()
	r := obj.Get(field)
	if !present(r) {
		out.Freeze()
		return out, nil
	}
	if !r.IsArray() {
		return nil, newParseError(entity, field, fmt.Sprintf("expected array, got %s", typeName(r)))
	}
	for i, item := range r.Array() {
		if item.Type != gjson.String {
			return nil, newParseError(entity, fmt.Sprintf("%s[%d]", field, i), fmt.Sprintf("expected string, got %s", typeName(item)))
		}
		_ = out.Append(item.String())
	}
	out.Freeze()
	return out, nil
}

// list parses an optional array of objects with parse and freezes the result.
func list[T any](entity string, obj gjson.Result, field string, parse func(gjson.Result) (T, error)) (*frozen.Seq[T], error) {
	out := frozen.New[T]()
	r := obj.Get(field)
	if !present(r) {
		out.Freeze()
		return out, nil
	}
	if !r.IsArray() {
		return nil, newParseError(entity, field, fmt.Sprintf("expected array, got %s", typeName(r)))
	}
	for i, item := range r.Array() {
		v, err := parse(item)
		if err != nil {
			return nil, within(err, fmt.Sprintf("%s[%d]", field, i))
		}
		_ = out.Append(v)
	}
	out.Freeze()
	return out, nil
}

// parseBytes validates raw JSON before handing the value tree to parse.
func parseBytes[T any](entity string, data []byte, parse func(gjson.Result) (T, error)) (T, error) {
	if !gjson.ValidBytes(data) {
		var zero T
		return zero, newParseError(entity, "", "malformed JSON")
	}
	return parse(gjson.ParseBytes(data))
}
