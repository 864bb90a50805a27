package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eugenenazirov/homestead-calculator/internal/api"
	"github.com/eugenenazirov/homestead-calculator/internal/calculator"
	"github.com/eugenenazirov/homestead-calculator/internal/catalog"
)

// runCalculate computes an estimate for animal=count pairs and writes the
// same document POST /calculate returns.
func runCalculate(w io.Writer, pairs map[string]string) error {
	cat := catalog.National()

	counts := make(map[string]float64, len(pairs))
	for animal, raw := range pairs {
		if _, ok := cat.Lookup(animal); !ok {
			continue
		}
		count, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("invalid count for %q: %w", animal, err)
		}
		counts[animal] = count
	}

	result, err := calculator.New(cat).Compute(counts)
	if err != nil {
		return fmt.Errorf("calculate: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(api.NewCalculateResponse(result))
}
