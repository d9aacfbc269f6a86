// Package stats computes the descriptive statistics shown for a dataset.
// Every function is a pure read of its input and is defined for empty input.
package stats

import (
	"github.com/okian/bikeshare/internal/domain/model"
)

// TripSeparator joins start and end station into a trip label.
const TripSeparator = " to "

// TimeStats holds the most frequent times of travel.
type TimeStats struct {
	Month   int
	Weekday int // 0=Monday
	Hour    int
	OK      bool // false when there were no records
}

// StationStats holds the most popular stations and trip.
type StationStats struct {
	StartStation string
	EndStation   string
	Trip         string
	OK           bool
}

// DurationStats holds total and mean trip duration in seconds.
type DurationStats struct {
	Total float64
	Mean  float64
	Count int
}

// BirthYearStats summarizes the birth year column.
type BirthYearStats struct {
	Earliest   int
	MostRecent int
	MostCommon int
	OK         bool // false when every cell was blank
}

// UserStats holds user demographics. Gender and BirthYear are only
// meaningful when the matching Has flag is set.
type UserStats struct {
	UserTypes    []Count[string]
	HasGender    bool
	Genders      []Count[string]
	HasBirthYear bool
	BirthYear    BirthYearStats
}

// ComputeTime returns the modal month, weekday and start hour. The hour is
// taken from the start time here rather than at load time.
func ComputeTime(records []model.TripRecord) TimeStats {
	if len(records) == 0 {
		return TimeStats{}
	}
	months := make([]int, len(records))
	days := make([]int, len(records))
	hours := make([]int, len(records))
	for i, r := range records {
		months[i] = r.Month
		days[i] = r.Weekday
		hours[i] = r.StartTime.Hour()
	}
	month, _ := Mode(months)
	day, _ := Mode(days)
	hour, _ := Mode(hours)
	return TimeStats{Month: month, Weekday: day, Hour: hour, OK: true}
}

// ComputeStations returns the most common start station, end station and
// start-to-end trip. Blank stations are skipped.
func ComputeStations(records []model.TripRecord) StationStats {
	starts := make([]string, 0, len(records))
	ends := make([]string, 0, len(records))
	trips := make([]string, 0, len(records))
	for _, r := range records {
		if r.StartStation != "" {
			starts = append(starts, r.StartStation)
		}
		if r.EndStation != "" {
			ends = append(ends, r.EndStation)
		}
		if r.StartStation != "" && r.EndStation != "" {
			trips = append(trips, r.StartStation+TripSeparator+r.EndStation)
		}
	}

	var s StationStats
	var okStart, okEnd, okTrip bool
	s.StartStation, _, okStart = MostCommon(starts)
	s.EndStation, _, okEnd = MostCommon(ends)
	s.Trip, _, okTrip = MostCommon(trips)
	s.OK = okStart || okEnd || okTrip
	return s
}

// ComputeDuration returns the sum and arithmetic mean of trip durations.
// Mean is zero when there are no records.
func ComputeDuration(records []model.TripRecord) DurationStats {
	var d DurationStats
	for _, r := range records {
		d.Total += r.Duration
	}
	d.Count = len(records)
	if d.Count > 0 {
		d.Mean = d.Total / float64(d.Count)
	}
	return d
}

// ComputeUsers returns the user type distribution and, when the dataset
// declares them, the gender distribution and birth year summary.
func ComputeUsers(ds *model.Dataset) UserStats {
	u := UserStats{
		HasGender:    ds.Schema.HasGender,
		HasBirthYear: ds.Schema.HasBirthYear,
	}

	userTypes := make([]string, 0, ds.Len())
	var genders []string
	var years []int
	for _, r := range ds.Records {
		if r.UserType != "" {
			userTypes = append(userTypes, r.UserType)
		}
		if u.HasGender && r.Gender != "" {
			genders = append(genders, r.Gender)
		}
		if u.HasBirthYear && r.BirthYear != 0 {
			years = append(years, r.BirthYear)
		}
	}

	u.UserTypes = ValueCounts(userTypes)
	if u.HasGender {
		u.Genders = ValueCounts(genders)
	}
	if u.HasBirthYear && len(years) > 0 {
		by := BirthYearStats{Earliest: years[0], MostRecent: years[0], OK: true}
		for _, y := range years[1:] {
			by.Earliest = min(by.Earliest, y)
			by.MostRecent = max(by.MostRecent, y)
		}
		by.MostCommon, _ = Mode(years)
		u.BirthYear = by
	}
	return u
}
