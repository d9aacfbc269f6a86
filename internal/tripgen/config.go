package tripgen

import "time"

// Config holds configuration for the trip generator
type Config struct {
	Dir      string // Directory the city files are written to
	Rows     int    // Rows per city file
	Seed     uint64 // Seed for the random source; equal seeds give equal files
	LogLevel string // Log level for generator output
}

// Stats holds generation statistics
type Stats struct {
	FilesWritten int
	RowsWritten  int
	RowsVerified int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
}

// citySpec describes one generated city file.
type citySpec struct {
	Name         string
	Demographics bool // Gender and Birth Year columns
	Fractional   bool // durations with millisecond fractions
	Stations     []string
}
