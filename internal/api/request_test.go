package api

import (
	"errors"
	"strings"
	"testing"
)

func knownFarmAnimal(id string) bool {
	switch id {
	case "chicken", "pig":
		return true
	}
	return false
}

func TestDecodeCalculateRequest(t *testing.T) {
	t.Parallel()

	req, err := decodeCalculateRequest(strings.NewReader(`{"animals": {"chicken": 10, "pig": 2.5, "dragon": "lots"}}`), knownFarmAnimal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(req.Animals) != 2 {
		t.Fatalf("expected two known animals, got %v", req.Animals)
	}
	if req.Animals["chicken"] != 10 || req.Animals["pig"] != 2.5 {
		t.Fatalf("unexpected counts: %v", req.Animals)
	}
}

func TestDecodeCalculateRequestMissingAnimals(t *testing.T) {
	t.Parallel()

	bodies := []string{
		``,
		`not json`,
		`{}`,
		`{"animal": {"chicken": 1}}`,
		`[1, 2, 3]`,
		`{"animals": `,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			_, err := decodeCalculateRequest(strings.NewReader(body), knownFarmAnimal)
			if !errors.Is(err, errMissingAnimals) {
				t.Fatalf("expected errMissingAnimals, got %v", err)
			}
		})
	}
}

func TestDecodeCalculateRequestInvalidAnimals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		wantText string
	}{
		{name: "NullAnimals", body: `{"animals": null}`, wantText: "got null"},
		{name: "ArrayAnimals", body: `{"animals": ["chicken"]}`, wantText: "got array"},
		{name: "StringCount", body: `{"animals": {"chicken": "ten"}}`, wantText: `"chicken": expected a number, got string`},
		{name: "NullCount", body: `{"animals": {"pig": null}}`, wantText: "got null"},
		{name: "BoolCount", body: `{"animals": {"pig": true}}`, wantText: "got boolean"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeCalculateRequest(strings.NewReader(tc.body), knownFarmAnimal)
			if err == nil {
				t.Fatalf("expected error")
			}
			if errors.Is(err, errMissingAnimals) {
				t.Fatalf("expected an internal fault, got missing animals")
			}
			if !strings.Contains(err.Error(), tc.wantText) {
				t.Fatalf("expected error to contain %q, got %q", tc.wantText, err.Error())
			}
		})
	}
}

func TestDecodeCalculateRequestCountErrorType(t *testing.T) {
	t.Parallel()

	_, err := decodeCalculateRequest(strings.NewReader(`{"animals": {"chicken": [1]}}`), knownFarmAnimal)

	var countErr *CountError
	if !errors.As(err, &countErr) {
		t.Fatalf("expected CountError, got %T", err)
	}
	if countErr.Animal != "chicken" || countErr.Got != "array" {
		t.Fatalf("unexpected CountError: %+v", countErr)
	}
}
