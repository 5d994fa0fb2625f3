// Package frames holds the tabular data model for candidate evaluation runs:
// per-frame candidate rows, per-frame solution rows, best-candidate
// selection, and the derived yaw errors against the solution.
package frames

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/banshee-data/orientation.report/internal/angles"
)

// ErrMissingColumn indicates that a required column is absent from a table's
// header row.
var ErrMissingColumn = errors.New("required column missing")

// FrameRecord is one candidate evaluation row. A frame usually has many
// records, one per yaw offset tried for that frame.
type FrameRecord struct {
	FrameIndex   int
	YawDeg       float64
	PitchDeg     float64
	RollDeg      float64
	YawOffsetDeg float64
	WeightedRMSE float64
}

// CandidateYaw returns the candidate's absolute yaw, wrapped into
// (-180, 180].
func (r FrameRecord) CandidateYaw() float64 {
	return angles.WrapDeg(r.YawDeg + r.YawOffsetDeg)
}

// SolutionRecord is one per-frame row of a results table: the solved pose
// for that frame, plus its weighted RMSE when the table carries one.
type SolutionRecord struct {
	FrameIndex   int
	YawDeg       float64
	PitchDeg     float64
	RollDeg      float64
	WeightedRMSE float64 // NaN when the table has no weighted_rmse column
}

// ZenithDeg returns the zenith tilt angle derived from the solved pitch and
// roll.
func (s SolutionRecord) ZenithDeg() float64 {
	return angles.ZenithDeg(s.PitchDeg, s.RollDeg)
}

// Column names shared by all input tables.
const (
	colFrameIndex   = "frame_index"
	colYawDeg       = "car_yaw_deg"
	colPitchDeg     = "car_pitch_deg"
	colRollDeg      = "car_roll_deg"
	colYawOffsetDeg = "yaw_offset_deg"
	colWeightedRMSE = "weighted_rmse"
)

// header maps column names to field positions for one CSV table. Unknown
// columns are retained but ignored.
type header map[string]int

func readHeader(cr *csv.Reader, required ...string) (header, error) {
	row, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty table: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	h := make(header, len(row))
	for i, name := range row {
		h[name] = i
	}
	for _, name := range required {
		if _, ok := h[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	return h, nil
}

func (h header) intField(row []string, name string) (int, error) {
	v, err := strconv.Atoi(row[h[name]])
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", name, err)
	}
	return v, nil
}

func (h header) floatField(row []string, name string) (float64, error) {
	v, err := strconv.ParseFloat(row[h[name]], 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", name, err)
	}
	return v, nil
}

// ReadFrameRecords parses a candidate evaluation table. The header must
// contain frame_index, car_yaw_deg, car_pitch_deg, car_roll_deg,
// yaw_offset_deg and weighted_rmse; extra columns are ignored. A table with
// a header but no data rows parses to an empty slice.
func ReadFrameRecords(r io.Reader) ([]FrameRecord, error) {
	cr := csv.NewReader(r)

	h, err := readHeader(cr,
		colFrameIndex, colYawDeg, colPitchDeg, colRollDeg, colYawOffsetDeg, colWeightedRMSE)
	if err != nil {
		return nil, err
	}

	var records []FrameRecord
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		line++

		var rec FrameRecord
		if rec.FrameIndex, err = h.intField(row, colFrameIndex); err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		fields := []struct {
			name string
			dst  *float64
		}{
			{colYawDeg, &rec.YawDeg},
			{colPitchDeg, &rec.PitchDeg},
			{colRollDeg, &rec.RollDeg},
			{colYawOffsetDeg, &rec.YawOffsetDeg},
			{colWeightedRMSE, &rec.WeightedRMSE},
		}
		for _, f := range fields {
			if *f.dst, err = h.floatField(row, f.name); err != nil {
				return nil, fmt.Errorf("row %d: %w", line, err)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadSolutionRecords parses a per-frame results table. The header must
// contain frame_index, car_yaw_deg, car_pitch_deg and car_roll_deg;
// weighted_rmse is read when present and NaN otherwise.
func ReadSolutionRecords(r io.Reader) ([]SolutionRecord, error) {
	cr := csv.NewReader(r)

	h, err := readHeader(cr, colFrameIndex, colYawDeg, colPitchDeg, colRollDeg)
	if err != nil {
		return nil, err
	}
	_, hasRMSE := h[colWeightedRMSE]

	var records []SolutionRecord
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		line++

		rec := SolutionRecord{WeightedRMSE: math.NaN()}
		if rec.FrameIndex, err = h.intField(row, colFrameIndex); err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		fields := []struct {
			name string
			dst  *float64
		}{
			{colYawDeg, &rec.YawDeg},
			{colPitchDeg, &rec.PitchDeg},
			{colRollDeg, &rec.RollDeg},
		}
		for _, f := range fields {
			if *f.dst, err = h.floatField(row, f.name); err != nil {
				return nil, fmt.Errorf("row %d: %w", line, err)
			}
		}
		if hasRMSE {
			if rec.WeightedRMSE, err = h.floatField(row, colWeightedRMSE); err != nil {
				return nil, fmt.Errorf("row %d: %w", line, err)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
