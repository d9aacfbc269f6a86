package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/okian/bikeshare/internal/domain/model"
)

// Banner and separator printed around filter collection.
const (
	Banner    = "Hello! Let's explore some U.S. bikeshare data!"
	Separator = "----------------------------------------"
)

// Field names for questions.
const (
	FieldCity  = "city"
	FieldMonth = "month"
	FieldDay   = "day"
)

// Days accepted by the day question, 0=Monday.
var Days = []string{"0", "1", "2", "3", "4", "5", "6"} //nolint:gochecknoglobals // fixed domain

// CitySet is the registry view the collector needs.
type CitySet interface {
	Names() []string
	DisplayList() string
}

// Collector gathers a FilterSelection through a Prompter.
type Collector struct {
	prompter *Prompter
	cities   CitySet
	months   []string
}

// NewCollector creates a Collector offering cities and months.
func NewCollector(p *Prompter, cities CitySet, months []string) *Collector {
	return &Collector{prompter: p, cities: cities, months: append([]string(nil), months...)}
}

// CollectFilters prints the banner, asks for city, month and day in that
// order, and prints the separator once all three are valid.
func (c *Collector) CollectFilters(ctx context.Context) (model.FilterSelection, error) {
	out := c.prompter.Out()
	if _, err := fmt.Fprintln(out, Banner); err != nil {
		return model.FilterSelection{}, err
	}

	city, err := c.prompter.Ask(ctx, CityQuestion(c.cities))
	if err != nil {
		return model.FilterSelection{}, err
	}
	month, err := c.prompter.Ask(ctx, MonthQuestion(c.months))
	if err != nil {
		return model.FilterSelection{}, err
	}
	day, err := c.prompter.Ask(ctx, DayQuestion())
	if err != nil {
		return model.FilterSelection{}, err
	}

	if _, err := fmt.Fprintln(out, Separator); err != nil {
		return model.FilterSelection{}, err
	}
	return model.FilterSelection{City: city, Month: month, Day: day}, nil
}

// CityQuestion asks for one of the registered cities, case-insensitively.
func CityQuestion(cities CitySet) Question {
	return Question{
		Field:    FieldCity,
		Prompt:   fmt.Sprintf("What city's data would you like to explore? (%s): ", cities.DisplayList()),
		Invalid:  "Invalid city. Please try again.",
		Valid:    cities.Names(),
		FoldCase: true,
	}
}

// MonthQuestion asks for one of months as a number, or "all".
func MonthQuestion(months []string) Question {
	first, last := monthSpan(months)
	return Question{
		Field: FieldMonth,
		Prompt: fmt.Sprintf("For what month? Choose from %s to %s numerically (1 = January) For all months, type '%s': ",
			first, last, model.All),
		Invalid: "Invalid month. Please try again.",
		Valid:   append(append([]string(nil), months...), model.All),
	}
}

// DayQuestion asks for a weekday number, or "all".
func DayQuestion() Question {
	return Question{
		Field:   FieldDay,
		Prompt:  fmt.Sprintf("For what day of the week? (0 = Monday, 6 = Sunday). For all days of the week, type '%s': ", model.All),
		Invalid: "Invalid day of the week. Please try again.",
		Valid:   append(append([]string(nil), Days...), model.All),
	}
}

// monthSpan names the smallest and largest month in months.
func monthSpan(months []string) (string, string) {
	lo, hi := 0, 0
	for _, m := range months {
		n, err := strconv.Atoi(strings.TrimSpace(m))
		if err != nil || n < 1 || n > 12 {
			continue
		}
		if lo == 0 || n < lo {
			lo = n
		}
		if n > hi {
			hi = n
		}
	}
	if lo == 0 {
		return "", ""
	}
	return time.Month(lo).String(), time.Month(hi).String()
}
