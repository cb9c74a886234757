package sim

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.csv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing test CSV: %v", err)
	}
	return path
}

func TestConvertCSVTrace_ParsesThroughputAndPoseColumns(t *testing.T) {
	path := writeCSV(t, "time_seconds,throughput_mbps,latitude_deg,longitude_deg\n"+
		"0,8,0,0\n"+
		"1,32,10,20\n"+
		"2,24,-5,-170\n")

	tf, err := ConvertCSVTrace(path, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tf.NetworkTraces) != 1 {
		t.Fatalf("expected 1 network trace, got %d", len(tf.NetworkTraces))
	}
	wantThroughput := []float64{8, 32, 24}
	got := tf.NetworkTraces[0].SamplesMbps
	if len(got) != len(wantThroughput) {
		t.Fatalf("got %d throughput samples, want %d", len(got), len(wantThroughput))
	}
	for i := range wantThroughput {
		if got[i] != wantThroughput[i] {
			t.Errorf("sample %d: got %v, want %v", i, got[i], wantThroughput[i])
		}
	}

	if len(tf.ViewportTraces) != 1 || len(tf.ViewportTraces[0].Samples) != 3 {
		t.Fatalf("unexpected viewport traces: %+v", tf.ViewportTraces)
	}
	lastPose := tf.ViewportTraces[0].Samples[2]
	if lastPose.LatitudeDeg != -5 || lastPose.LongitudeDeg != -170 {
		t.Errorf("got %+v, want {-5 -170}", lastPose)
	}
}

func TestConvertCSVTrace_InvalidNumberIsADescriptiveError(t *testing.T) {
	path := writeCSV(t, "time_seconds,throughput_mbps,latitude_deg,longitude_deg\n"+
		"0,not-a-number,0,0\n")

	_, err := ConvertCSVTrace(path, 1)
	if err == nil {
		t.Fatal("expected an error for a non-numeric throughput column")
	}
}

func TestConvertCSVTrace_EmptyPathIsAnError(t *testing.T) {
	if _, err := ConvertCSVTrace("", 1); err == nil {
		t.Fatal("expected an error for an empty path")
	}
}

func TestConvertCSVTrace_NoDataRowsIsAnError(t *testing.T) {
	path := writeCSV(t, "time_seconds,throughput_mbps,latitude_deg,longitude_deg\n")
	if _, err := ConvertCSVTrace(path, 1); err == nil {
		t.Fatal("expected an error for a CSV file with no data rows")
	}
}

func TestConvertCSVTrace_MissingFileIsAnError(t *testing.T) {
	if _, err := ConvertCSVTrace(filepath.Join(t.TempDir(), "missing.csv"), 1); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
