package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/san-kum/animchart/internal/series"
)

var (
	// ErrMissingColumn indicates a CSV header without an x, y or t column.
	ErrMissingColumn = errors.New("dataset: csv header must contain x, y and t columns")

	// ErrUnknownFormat indicates a file extension that is neither csv nor json.
	ErrUnknownFormat = errors.New("dataset: unknown file format")
)

// Dataset is a set of samples plus the labels that describe them.
type Dataset struct {
	XUnit   string          `json:"x_unit,omitempty"`
	YUnit   string          `json:"y_unit,omitempty"`
	Caption string          `json:"caption,omitempty"`
	Samples []series.Sample `json:"-"`
}

type jsonSample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	T float64 `json:"t"`
}

type jsonDataset struct {
	Dataset
	Samples []jsonSample `json:"samples"`
}

// Load reads a dataset from a .csv or .json file.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ds *Dataset
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		ds, err = ReadCSV(f)
	case ".json":
		ds, err = ReadJSON(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if ds.Caption == "" {
		ds.Caption = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return ds, nil
}

// ReadCSV parses rows with a header naming the x, y and t columns. Other
// columns are ignored, as are rows whose values do not parse.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrMissingColumn
	}

	cols := map[string]int{"x": -1, "y": -1, "t": -1}
	for i, name := range records[0] {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "time" {
			name = "t"
		}
		if _, ok := cols[name]; ok {
			cols[name] = i
		}
	}
	for _, idx := range cols {
		if idx < 0 {
			return nil, ErrMissingColumn
		}
	}

	ds := &Dataset{Samples: make([]series.Sample, 0, len(records)-1)}
	for _, record := range records[1:] {
		x, okx := parseField(record, cols["x"])
		y, oky := parseField(record, cols["y"])
		t, okt := parseField(record, cols["t"])
		if !okx || !oky || !okt {
			continue
		}
		ds.Samples = append(ds.Samples, series.Sample{X: x, Y: y, T: t})
	}
	return ds, nil
}

func parseField(record []string, idx int) (float64, bool) {
	if idx >= len(record) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
	return v, err == nil
}

func ReadJSON(r io.Reader) (*Dataset, error) {
	var raw jsonDataset
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	ds := raw.Dataset
	ds.Samples = make([]series.Sample, len(raw.Samples))
	for i, s := range raw.Samples {
		ds.Samples[i] = series.Sample{X: s.X, Y: s.Y, T: s.T}
	}
	return &ds, nil
}

func WriteCSV(w io.Writer, samples []series.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "t"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.X, 'g', -1, 64),
			strconv.FormatFloat(s.Y, 'g', -1, 64),
			strconv.FormatFloat(s.T, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, ds *Dataset) error {
	raw := jsonDataset{Dataset: *ds, Samples: make([]jsonSample, len(ds.Samples))}
	for i, s := range ds.Samples {
		raw.Samples[i] = jsonSample{X: s.X, Y: s.Y, T: s.T}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(raw)
}

// Save writes ds to path, choosing the format from the extension.
func Save(path string, ds *Dataset) (err error) {
	var write func(io.Writer) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		write = func(w io.Writer) error { return WriteCSV(w, ds.Samples) }
	case ".json":
		write = func(w io.Writer) error { return WriteJSON(w, ds) }
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierror.Append(err, cerr).ErrorOrNil()
		}
	}()
	return write(f)
}
