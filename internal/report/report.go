// Package report prints the descriptive statistics of a dataset.
package report

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/okian/bikeshare/internal/domain/model"
	"github.com/okian/bikeshare/internal/domain/registry"
	"github.com/okian/bikeshare/internal/domain/stats"
	"github.com/okian/bikeshare/pkg/logger"
)

// Reporter names, used as metric labels.
const (
	NameTime     = "time"
	NameStation  = "station"
	NameDuration = "duration"
	NameUser     = "user"
)

// NoData is printed where an aggregate over zero records would be undefined.
const NoData = "No data available for the selected filters."

const separator = "----------------------------------------"

// Reporter prints the four statistics reports. Each report reads the dataset
// without modifying it and ends with the time it took.
type Reporter struct {
	out     io.Writer
	now     func() time.Time
	logger  logger.Logger
	observe func(string, time.Duration)
}

// New creates a Reporter printing to stdout unless overridden.
func New(opts ...Option) *Reporter {
	r := &Reporter{
		out:     os.Stdout,
		now:     time.Now,
		logger:  logger.Discard(),
		observe: func(string, time.Duration) {},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// All runs the reporters in order: time, station, duration, user.
func (r *Reporter) All(ctx context.Context, ds *model.Dataset) error {
	for _, run := range []func(context.Context, *model.Dataset) error{
		r.TimeStats,
		r.StationStats,
		r.TripDurationStats,
		r.UserStats,
	} {
		if err := run(ctx, ds); err != nil {
			return err
		}
	}
	return nil
}

// TimeStats prints the most frequent times of travel.
func (r *Reporter) TimeStats(ctx context.Context, ds *model.Dataset) error {
	return r.run(ctx, NameTime, func(p *printer) {
		p.line("\nCalculating The Most Frequent Times of Travel...")
		p.line("(1 = January;")
		p.line("0 = Monday, 1 = Tuesday, 2 = Wednesday, 3 = Thursday, 4 = Friday, 5 = Saturday, 6 = Sunday)\n")

		s := stats.ComputeTime(ds.Records)
		if !s.OK {
			p.line(NoData)
			return
		}
		p.linef("Most common/chosen month: %d", s.Month)
		p.linef("Most common/chosen day of week: %d", s.Weekday)
		p.linef("Most common start hour: %d", s.Hour)
	})
}

// StationStats prints the most popular stations and trip.
func (r *Reporter) StationStats(ctx context.Context, ds *model.Dataset) error {
	return r.run(ctx, NameStation, func(p *printer) {
		p.line("\nCalculating The Most Popular Stations and Trip...\n")

		s := stats.ComputeStations(ds.Records)
		if !s.OK {
			p.line(NoData)
			return
		}
		p.linef("Most common Start Station:  %s", s.StartStation)
		p.linef("Most common End Station:  %s", s.EndStation)
		p.linef("Most frequent combination of Start and End Stations:  %s", s.Trip)
	})
}

// TripDurationStats prints the total and average trip duration.
func (r *Reporter) TripDurationStats(ctx context.Context, ds *model.Dataset) error {
	return r.run(ctx, NameDuration, func(p *printer) {
		p.line("\nCalculating Trip Duration...\n")

		d := stats.ComputeDuration(ds.Records)
		if d.Count == 0 {
			p.line(NoData)
			return
		}
		p.linef("Total travel time in seconds is:  %s", formatSeconds(d.Total))
		p.linef("Average travel time in seconds is:  %d", int64(math.RoundToEven(d.Mean)))
	})
}

// UserStats prints user type, gender and birth year statistics. Gender and
// birth year are reported only when the dataset's schema declares them; a
// declared column with no usable cells prints NoData.
func (r *Reporter) UserStats(ctx context.Context, ds *model.Dataset) error {
	return r.run(ctx, NameUser, func(p *printer) {
		p.line("\nCalculating User Stats: Subscriber Type, Gender, and Birth Year...\n")

		u := stats.ComputeUsers(ds)
		city := registry.DisplayName(ds.City)

		if len(u.UserTypes) == 0 {
			p.line(NoData)
		} else {
			p.counts(model.ColUserType, u.UserTypes)
		}

		switch {
		case !u.HasGender:
			p.linef("\n%s bikeshare program does not collect Gender data from its users.", city)
		case len(u.Genders) == 0:
			p.line(NoData)
		default:
			p.counts(model.ColGender, u.Genders)
		}

		switch {
		case !u.HasBirthYear:
			p.linef("\n%s bikeshare program does not collect Birth Year data from its users.", city)
		case !u.BirthYear.OK:
			p.line(NoData)
		default:
			p.linef("The earliest birth year is  %d", u.BirthYear.Earliest)
			p.linef("The most recent birth year is  %d", u.BirthYear.MostRecent)
			p.linef("The most common birth year is  %d", u.BirthYear.MostCommon)
		}
	})
}

// run times body, prints the footer and reports the first write error.
func (r *Reporter) run(ctx context.Context, name string, body func(p *printer)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	started := r.now()
	p := &printer{w: r.out}
	body(p)
	elapsed := r.now().Sub(started)

	p.linef("\nThis took %s seconds.", strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64))
	p.line(separator)
	if p.err != nil {
		return fmt.Errorf("write %s report: %w", name, p.err)
	}

	r.observe(name, elapsed)
	r.logger.Debug(ctx, "report printed", logger.String("reporter", name), logger.Float64("seconds", elapsed.Seconds()))
	return nil
}

// formatSeconds prints whole numbers without a fraction and keeps the
// shortest exact form otherwise.
func formatSeconds(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// printer remembers the first write error so report bodies stay linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err == nil {
		_, p.err = fmt.Fprintln(p.w, s)
	}
}

func (p *printer) linef(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

// counts prints a distribution as an aligned two-column table under title.
func (p *printer) counts(title string, counts []stats.Count[string]) {
	width := 0
	for _, c := range counts {
		width = max(width, len(c.Value))
	}
	p.line(title)
	for _, c := range counts {
		p.linef("%s%s  %d", c.Value, strings.Repeat(" ", width-len(c.Value)), c.N)
	}
}
