// Package model contains domain models passed between layers.
package model

import "time"

// Source column names shared by every city file.
const (
	ColStartTime    = "Start Time"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColTripDuration = "Trip Duration"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// RequiredColumns must be present in every source file.
var RequiredColumns = []string{ //nolint:gochecknoglobals // fixed schema
	ColStartTime,
	ColStartStation,
	ColEndStation,
	ColTripDuration,
	ColUserType,
}

// TripRecord is one bike-share trip. Empty strings and a zero BirthYear mark
// cells that were blank in the source.
type TripRecord struct {
	StartTime    time.Time
	StartStation string
	EndStation   string
	Duration     float64 // seconds
	UserType     string
	Gender       string
	BirthYear    int

	// Derived at load time from StartTime.
	Month   int // 1-12
	Weekday int // 0=Monday .. 6=Sunday

	// Raw holds the source cells in Dataset.Columns order.
	Raw []string
}

// Schema records which optional columns a source file declares.
type Schema struct {
	HasGender    bool
	HasBirthYear bool
}

// Dataset is the ordered set of trips for one city.
type Dataset struct {
	City    string
	Columns []string
	Schema  Schema
	Records []TripRecord
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// MondayWeekday converts a time.Weekday (Sunday=0) to Monday=0 numbering.
func MondayWeekday(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// Derive fills the month and weekday fields from StartTime.
func (r *TripRecord) Derive() {
	r.Month = int(r.StartTime.Month())
	r.Weekday = MondayWeekday(r.StartTime.Weekday())
}
