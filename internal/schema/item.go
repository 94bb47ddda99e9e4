// Package schema validates inbound item payloads before they are echoed
// back to the caller. Validation is pure: no I/O, no shared state, same
// input always yields the same result.
package schema

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ErrorKind classifies why a field failed validation.
type ErrorKind string

const (
	// KindMissingField means a required field was absent from the payload.
	KindMissingField ErrorKind = "missing_field"
	// KindTypeError means a field was present but its value could not be
	// coerced to the expected type.
	KindTypeError ErrorKind = "type_error"
)

// FieldError describes a single field-level validation failure.
type FieldError struct {
	Field   string    `json:"field"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Item is a validated item representation. Description and Tax are nil
// when the payload omitted them, which serializes as JSON null rather
// than an empty string or zero.
type Item struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       float64  `json:"price"`
	Tax         *float64 `json:"tax"`
}

// UpdateResult pairs a caller-supplied identifier with the validated item.
type UpdateResult struct {
	ItemID int  `json:"item_id"`
	Item   Item `json:"item"`
}

// ValidateItem checks payload against the item schema and, on success,
// returns it paired with itemID. Fields are checked in a fixed order
// (name, price, description, tax) and validation stops at the first
// failure. Negative or non-finite numbers are deliberately not rejected;
// only the value's type is checked.
func ValidateItem(itemID int, payload map[string]any) (*UpdateResult, *FieldError) {
	item := Item{}

	raw, ok := payload["name"]
	if !ok {
		return nil, &FieldError{Field: "name", Kind: KindMissingField, Message: "field required"}
	}
	name, ok := coerceString(raw)
	if !ok || name == "" {
		return nil, &FieldError{Field: "name", Kind: KindTypeError, Message: "value is not a valid non-empty string"}
	}
	item.Name = name

	raw, ok = payload["price"]
	if !ok {
		return nil, &FieldError{Field: "price", Kind: KindMissingField, Message: "field required"}
	}
	price, ok := coerceFloat(raw)
	if !ok {
		return nil, &FieldError{Field: "price", Kind: KindTypeError, Message: "value is not a valid float"}
	}
	item.Price = price

	// JSON null counts as absent for the optional fields.
	if raw, ok = payload["description"]; ok && raw != nil {
		desc, ok := coerceString(raw)
		if !ok {
			return nil, &FieldError{Field: "description", Kind: KindTypeError, Message: "value is not a valid string"}
		}
		item.Description = &desc
	}

	if raw, ok = payload["tax"]; ok && raw != nil {
		tax, ok := coerceFloat(raw)
		if !ok {
			return nil, &FieldError{Field: "tax", Kind: KindTypeError, Message: "value is not a valid float"}
		}
		item.Tax = &tax
	}

	return &UpdateResult{ItemID: itemID, Item: item}, nil
}

// coerceString accepts JSON strings as-is and renders scalar numbers as
// text. Booleans, nulls, arrays and objects do not coerce.
func coerceString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case int:
		return strconv.Itoa(s), true
	case json.Number:
		return s.String(), true
	default:
		return "", false
	}
}

// coerceFloat accepts JSON numbers and strings that parse unambiguously
// as a float. Everything else fails.
func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
