// Package testutil provides shared test infrastructure for the streaming
// simulator. It consolidates golden scenario types and assertion helpers used
// across sim/ and its strategy sub-packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenScenarios represents the structure of testdata/scenarios.json: the
// numeric reference scenarios a conforming implementation is checked against.
type GoldenScenarios struct {
	Scenarios []GoldenScenario `json:"scenarios"`
}

// GoldenScenario is a single named reference case, e.g. the BOLA buffer sweep
// or the hybrid allocator trust sweep.
type GoldenScenario struct {
	Name              string      `json:"name"`
	Ladder            []float64   `json:"ladder"`
	TilingCount       int         `json:"tiling_count"`
	BudgetMbps        float64     `json:"budget_mbps"`
	Distribution      []float64   `json:"distribution"`
	BufferSeconds     []float64   `json:"buffer_seconds"`
	TrustLevels       []float64   `json:"trust_levels"`
	ExpectedBitrateID [][]int     `json:"expected_bitrate_ids"`
	ExpectedPositions [][][]float64 `json:"expected_positions"`
}

// LoadGoldenScenarios loads the golden scenario set from testdata/scenarios.json.
// The path is resolved relative to this source file: sim/internal/testutil/ -> testdata/.
func LoadGoldenScenarios(t *testing.T) *GoldenScenarios {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "scenarios.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden scenarios: %v", err)
	}

	var scenarios GoldenScenarios
	if err := json.Unmarshal(data, &scenarios); err != nil {
		t.Fatalf("failed to parse golden scenarios: %v", err)
	}

	return &scenarios
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// AssertFloat64SliceEqual compares two float64 slices elementwise with an
// absolute tolerance, as used for distribution and bitrate comparisons.
func AssertFloat64SliceEqual(t *testing.T, name string, want, got []float64, absTol float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Errorf("%s: length mismatch, want %d got %d", name, len(want), len(got))
		return
	}
	for i := range want {
		if math.Abs(want[i]-got[i]) > absTol {
			t.Errorf("%s[%d]: got %v, want %v", name, i, got[i], want[i])
		}
	}
}
