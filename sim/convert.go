package sim

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ConvertCSVTrace converts a legacy CSV trace file into a TracesFile
// holding a single session. The CSV format has columns:
// time_seconds, throughput_mbps, latitude_deg, longitude_deg. intervalSeconds
// is the fixed sample spacing the resulting NetworkTrace/ViewportTrace use;
// rows are expected (but not required) to be evenly spaced by that amount.
func ConvertCSVTrace(path string, intervalSeconds float64) (TracesFile, error) {
	if path == "" {
		return TracesFile{}, fmt.Errorf("CSV trace path must not be empty")
	}
	file, err := os.Open(path)
	if err != nil {
		return TracesFile{}, fmt.Errorf("opening CSV trace %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only file

	reader := csv.NewReader(file)
	if _, err := reader.Read(); err != nil {
		return TracesFile{}, fmt.Errorf("reading CSV header from %s: %w", path, err)
	}

	var throughputs []float64
	var poses []SphericalPosition
	rowIdx := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return TracesFile{}, fmt.Errorf("CSV %s row %d: %w", path, rowIdx, err)
		}
		if len(record) < 4 {
			return TracesFile{}, fmt.Errorf("CSV %s row %d: expected at least 4 columns, got %d", path, rowIdx, len(record))
		}

		throughput, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return TracesFile{}, fmt.Errorf("CSV %s row %d: invalid throughput_mbps %q: %w", path, rowIdx, record[1], err)
		}
		lat, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return TracesFile{}, fmt.Errorf("CSV %s row %d: invalid latitude_deg %q: %w", path, rowIdx, record[2], err)
		}
		lon, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return TracesFile{}, fmt.Errorf("CSV %s row %d: invalid longitude_deg %q: %w", path, rowIdx, record[3], err)
		}

		throughputs = append(throughputs, throughput)
		poses = append(poses, SphericalPosition{LatitudeDeg: lat, LongitudeDeg: lon})
		rowIdx++
	}

	if len(throughputs) == 0 {
		return TracesFile{}, fmt.Errorf("CSV %s: no data rows", path)
	}

	return TracesFile{
		NetworkTraces:  []NetworkTrace{{SamplesMbps: throughputs, IntervalSeconds: intervalSeconds}},
		ViewportTraces: []ViewportTrace{{Samples: poses, IntervalSeconds: intervalSeconds}},
	}, nil
}
