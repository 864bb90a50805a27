package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/eugenenazirov/homestead-calculator/internal/calculator"
)

func TestRunCalculate(t *testing.T) {
	var out bytes.Buffer
	if err := runCalculate(&out, map[string]string{"cow_dairy": "1", "unicorn": "many"}); err != nil {
		t.Fatalf("runCalculate returned error: %v", err)
	}

	var body struct {
		AnimalData  map[string]json.RawMessage `json:"animal_data"`
		MinAcreage  float64                    `json:"min_acreage"`
		MaxAcreage  float64                    `json:"max_acreage"`
		TotalYields map[string]float64         `json:"total_yields"`
	}
	if err := json.Unmarshal(out.Bytes(), &body); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}

	if len(body.AnimalData) != 1 {
		t.Fatalf("expected only cow_dairy, got %v", body.AnimalData)
	}
	if body.MinAcreage != 0.9 || body.MaxAcreage != 2 {
		t.Fatalf("unexpected acreage: %v-%v", body.MinAcreage, body.MaxAcreage)
	}
	if body.TotalYields["milk"] != 2190 {
		t.Fatalf("unexpected milk total: %v", body.TotalYields)
	}
}

func TestRunCalculateRejectsBadCounts(t *testing.T) {
	var out bytes.Buffer

	err := runCalculate(&out, map[string]string{"pig": "two"})
	if err == nil || !strings.Contains(err.Error(), `"pig"`) {
		t.Fatalf("expected parse error naming pig, got %v", err)
	}

	err = runCalculate(&out, map[string]string{"pig": "-2"})
	if !errors.Is(err, calculator.ErrInvalidCount) {
		t.Fatalf("expected ErrInvalidCount, got %v", err)
	}
}

func TestRunCalculateRejectsOverflow(t *testing.T) {
	for _, pairs := range []map[string]string{
		{"cow_dairy": "1e305"},
		{"duck": "1e306"},
	} {
		var out bytes.Buffer
		err := runCalculate(&out, pairs)
		if !errors.Is(err, calculator.ErrOverflow) {
			t.Fatalf("%v: expected ErrOverflow, got %v", pairs, err)
		}
		if out.Len() != 0 {
			t.Fatalf("%v: expected no output, got %s", pairs, out.String())
		}
	}
}
