package tripgen

import "time"

// File permission constants.
const (
	directoryPermission = 0o750
	filePermission      = 0o600
)

// Generation defaults.
const (
	DefaultRows = 1000
	DefaultSeed = 2017
)

// Trip shape constants.
const (
	minDurationSeconds = 60
	maxDurationSeconds = 3600
	endTimeSkew        = time.Second
	birthYearMin       = 1940
	birthYearRange     = 61 // up to 2000
	blankEvery         = 20 // roughly one blank demographic cell in twenty
	customerShare      = 4  // one customer in four riders
)

// Generated trips start in the first half of 2017.
var (
	periodStart = time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC) //nolint:gochecknoglobals // fixed period
	periodEnd   = time.Date(2017, time.July, 1, 0, 0, 0, 0, time.UTC)    //nolint:gochecknoglobals // fixed period
)

var cities = []citySpec{ //nolint:gochecknoglobals // fixed city set
	{
		Name:         "chicago",
		Demographics: true,
		Stations: []string{
			"Clinton St & Washington Blvd", "Streeter Dr & Grand Ave", "Lake Shore Dr & Monroe St",
			"Canal St & Adams St", "Wood St & Hubbard St", "Theater on the Lake",
		},
	},
	{
		Name:         "new york city",
		Demographics: true,
		Stations: []string{
			"Pershing Square North", "W 21 St & 6 Ave", "E 17 St & Broadway",
			"Broadway & E 22 St", "West St & Chambers St", "8 Ave & W 31 St",
		},
	},
	{
		Name:       "washington",
		Fractional: true,
		Stations: []string{
			"Columbus Circle / Union Station", "Lincoln Memorial", "Jefferson Dr & 14th St SW",
			"Massachusetts Ave & Dupont Circle NW", "14th & Belmont St NW", "15th & K St NW",
		},
	},
}
