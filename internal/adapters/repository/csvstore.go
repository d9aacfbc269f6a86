package repository

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/okian/bikeshare/internal/domain/model"
	"github.com/okian/bikeshare/pkg/logger"
)

// Default start time layouts, tried in order.
var defaultTimeLayouts = []string{ //nolint:gochecknoglobals // read-only defaults
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// PathResolver resolves a city to its source file.
type PathResolver interface {
	Path(city string) (string, error)
}

// CSVStore loads trips from one CSV file per city. The file is read fully
// and closed before Load returns.
type CSVStore struct {
	paths    PathResolver
	layouts  []string
	location *time.Location
	logger   logger.Logger
}

// NewCSVStore creates a store resolving files through paths.
func NewCSVStore(paths PathResolver, opts ...Option) *CSVStore {
	s := &CSVStore{
		paths:    paths,
		layouts:  defaultTimeLayouts,
		location: time.UTC,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load implements Store.
func (s *CSVStore) Load(ctx context.Context, city string) (*model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.paths.Path(city)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	fr, err := s.readFrame(path)
	if err != nil {
		return nil, err
	}

	ds, err := s.toDataset(city, fr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	s.logger.Debug(ctx, "trip file loaded",
		logger.String("city", city),
		logger.String("path", path),
		logger.Int("rows", ds.Len()),
		logger.Any("schema", ds.Schema),
		logger.Float64("elapsed_ms", float64(time.Since(started).Microseconds())/1000),
	)
	return ds, nil
}

// frame is a parsed source file. header holds the column names as written;
// the dataframe renames blank and duplicate names.
type frame struct {
	header []string
	df     dataframe.DataFrame
	rows   int
}

// readFrame reads the whole file as string columns. A file holding only a
// header yields a frame with zero rows.
func (s *CSVStore) readFrame(path string) (frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return frame{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	r := csv.NewReader(bytes.NewReader(data))
	header, err := r.Read()
	if err != nil {
		return frame{}, fmt.Errorf("%w: %s: read header: %w", ErrMalformedSource, path, err)
	}
	if _, err := r.Read(); errors.Is(err, io.EOF) {
		return frame{header: header}, nil
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return frame{}, fmt.Errorf("%w: %s: %w", ErrMalformedSource, path, df.Err)
	}
	if df.Ncol() != len(header) {
		return frame{}, fmt.Errorf("%w: %s: header has %d columns, data has %d", ErrMalformedSource, path, len(header), df.Ncol())
	}
	return frame{header: header, df: df, rows: df.Nrow()}, nil
}

// toDataset converts the frame into typed records.
func (s *CSVStore) toDataset(city string, fr frame) (*model.Dataset, error) {
	names := fr.header
	for _, col := range model.RequiredColumns {
		if !slices.Contains(names, col) {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedSource, col)
		}
	}

	ds := &model.Dataset{
		City:    city,
		Columns: names,
		Schema: model.Schema{
			HasGender:    slices.Contains(names, model.ColGender),
			HasBirthYear: slices.Contains(names, model.ColBirthYear),
		},
		Records: []model.TripRecord{},
	}
	if fr.rows == 0 {
		return ds, nil
	}

	// Columns are matched by position; the frame's own names may differ.
	frameNames := fr.df.Names()
	columns := make([][]string, len(names))
	for i := range names {
		columns[i] = fr.df.Col(frameNames[i]).Records()
	}
	column := func(name string) []string {
		return columns[slices.Index(names, name)]
	}

	starts := column(model.ColStartTime)
	startStations := column(model.ColStartStation)
	endStations := column(model.ColEndStation)
	durations := column(model.ColTripDuration)
	userTypes := column(model.ColUserType)
	var genders, years []string
	if ds.Schema.HasGender {
		genders = column(model.ColGender)
	}
	if ds.Schema.HasBirthYear {
		years = column(model.ColBirthYear)
	}

	nrows := fr.rows
	ds.Records = make([]model.TripRecord, nrows)
	for i := 0; i < nrows; i++ {
		// Row numbers in messages are 1-based and count the header line.
		line := i + 2
		r := &ds.Records[i]

		ts, err := s.parseTime(starts[i])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d column %q: %w", ErrMalformedSource, line, model.ColStartTime, err)
		}
		r.StartTime = ts
		r.Derive()

		r.Duration, err = strconv.ParseFloat(strings.TrimSpace(durations[i]), 64)
		if err != nil || math.IsNaN(r.Duration) {
			return nil, fmt.Errorf("%w: line %d column %q: invalid duration %q", ErrMalformedSource, line, model.ColTripDuration, durations[i])
		}

		r.StartStation = cell(startStations[i])
		r.EndStation = cell(endStations[i])
		r.UserType = cell(userTypes[i])
		if genders != nil {
			r.Gender = cell(genders[i])
		}
		if years != nil {
			r.BirthYear, err = parseYear(years[i])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %q: %w", ErrMalformedSource, line, model.ColBirthYear, err)
			}
		}

		r.Raw = make([]string, len(columns))
		for c := range columns {
			r.Raw[c] = columns[c][i]
		}
	}
	return ds, nil
}

func (s *CSVStore) parseTime(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range s.layouts {
		if t, err := time.ParseInLocation(layout, v, s.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", v)
}

// cell maps blank and NaN cells to the empty string.
func cell(v string) string {
	v = strings.TrimSpace(v)
	if v == "NaN" {
		return ""
	}
	return v
}

// parseYear accepts "1989" and "1989.0"; blank cells yield zero.
func parseYear(v string) (int, error) {
	v = cell(v)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("invalid birth year %q", v)
	}
	return int(f), nil
}
