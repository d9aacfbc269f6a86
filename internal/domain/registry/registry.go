// Package registry maps city names to their trip data files.
package registry

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Registry is a fixed city -> source file mapping. It is immutable after New.
type Registry struct {
	dataDir string
	files   map[string]string // normalized city name -> file name
	names   []string          // sorted normalized names
}

// New builds a Registry. Without options it serves the three bundled cities
// from the working directory.
func New(opts ...Option) *Registry {
	r := &Registry{
		dataDir: ".",
		files: map[string]string{
			"chicago":       "chicago.csv",
			"new york city": "new_york_city.csv",
			"washington":    "washington.csv",
		},
	}
	for _, opt := range opts {
		opt(r)
	}

	r.names = make([]string, 0, len(r.files))
	for name := range r.files {
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)
	return r
}

// Normalize folds a user supplied city name to its registry key.
func Normalize(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// Path returns the source file for city. Lookup is case-insensitive.
func (r *Registry) Path(city string) (string, error) {
	file, ok := r.files[Normalize(city)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}
	if filepath.IsAbs(file) {
		return file, nil
	}
	return filepath.Join(r.dataDir, file), nil
}

// Names returns the registered city names, lower-cased and sorted.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// DisplayName returns city in title case, e.g. "New York City".
func DisplayName(city string) string {
	return cases.Title(language.English).String(Normalize(city))
}

// DisplayList renders the cities for a prompt: "Chicago, New York City, or Washington".
func (r *Registry) DisplayList() string {
	display := make([]string, len(r.names))
	for i, n := range r.names {
		display[i] = DisplayName(n)
	}
	switch len(display) {
	case 0:
		return ""
	case 1:
		return display[0]
	case 2:
		return display[0] + " or " + display[1]
	}
	return strings.Join(display[:len(display)-1], ", ") + ", or " + display[len(display)-1]
}
