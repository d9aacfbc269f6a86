package model

import "strconv"

// All disables filtering on an axis.
const All = "all"

// FilterSelection holds the validated choices for one session pass.
type FilterSelection struct {
	City  string
	Month string // month number as text, or All
	Day   string // 0=Monday .. 6=Sunday as text, or All
}

// Matches reports whether r passes both the month and the day filter.
// Values are compared as text, so "01" never matches January.
func (f FilterSelection) Matches(r TripRecord) bool {
	if f.Month != All && strconv.Itoa(r.Month) != f.Month {
		return false
	}
	if f.Day != All && strconv.Itoa(r.Weekday) != f.Day {
		return false
	}
	return true
}

// Filter returns a new Dataset holding the records of ds that match sel, in
// their original order. ds is not modified.
func Filter(ds *Dataset, sel FilterSelection) *Dataset {
	out := &Dataset{
		City:    ds.City,
		Columns: ds.Columns,
		Schema:  ds.Schema,
	}
	if sel.Month == All && sel.Day == All {
		out.Records = append([]TripRecord(nil), ds.Records...)
		return out
	}
	out.Records = make([]TripRecord, 0, len(ds.Records))
	for _, r := range ds.Records {
		if sel.Matches(r) {
			out.Records = append(out.Records, r)
		}
	}
	return out
}
