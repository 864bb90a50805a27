package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const missingAnimalsMessage = "Missing animals data in request"

// errMissingAnimals marks a body that is unparsable or has no animals field.
var errMissingAnimals = errors.New("missing animals data")

// CountError reports a head count that is not a JSON number.
type CountError struct {
	Animal string
	Got    string
}

func (e *CountError) Error() string {
	return fmt.Sprintf("invalid count for %q: expected a number, got %s", e.Animal, e.Got)
}

type calculateRequest struct {
	Animals map[string]float64
}

// decodeCalculateRequest parses {"animals": {...}}. Counts are only checked for
// animals the known func accepts, so unknown entries never fail a request.
func decodeCalculateRequest(r io.Reader, known func(string) bool) (calculateRequest, error) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return calculateRequest{}, errMissingAnimals
	}

	raw, ok := body["animals"]
	if !ok {
		return calculateRequest{}, errMissingAnimals
	}

	var entries map[string]any
	if err := json.Unmarshal(raw, &entries); err != nil || entries == nil {
		return calculateRequest{}, fmt.Errorf("animals must be an object mapping animal to count, got %s", jsonKind(raw))
	}

	req := calculateRequest{Animals: make(map[string]float64, len(entries))}
	for animal, value := range entries {
		if !known(animal) {
			continue
		}
		count, ok := value.(float64)
		if !ok {
			return calculateRequest{}, &CountError{Animal: animal, Got: kindOf(value)}
		}
		req.Animals[animal] = count
	}

	return req, nil
}

func jsonKind(raw json.RawMessage) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "invalid JSON"
	}
	return kindOf(v)
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
