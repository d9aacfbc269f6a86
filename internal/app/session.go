// Package app runs the interactive exploration session.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/okian/bikeshare/internal/domain/model"
	"github.com/okian/bikeshare/pkg/logger"
	"github.com/okian/bikeshare/pkg/metrics"
)

// State is the session's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Restart prompt and farewell.
const (
	RestartPrompt = "\nWould you like to restart? Enter yes or no.\n"
	Farewell      = "The program will now exit. Thanks for exploring U.S. bikeshare data!"
	FieldRestart  = "restart"
)

// FilterCollector asks the user for a city, month and day.
type FilterCollector interface {
	CollectFilters(ctx context.Context) (model.FilterSelection, error)
}

// DatasetLoader returns the filtered dataset for a selection.
type DatasetLoader interface {
	Load(ctx context.Context, sel model.FilterSelection) (*model.Dataset, error)
}

// StatsReporter prints the statistics of a dataset.
type StatsReporter interface {
	All(ctx context.Context, ds *model.Dataset) error
}

// RawPager offers the raw rows of a dataset.
type RawPager interface {
	Run(ctx context.Context, ds *model.Dataset) error
}

// Asker asks a yes/no question.
type Asker interface {
	AskYesNo(ctx context.Context, field, prompt string) (bool, error)
}

// Session repeats collect, load, report and paginate until the user declines
// to restart. It never exits the process; faults are returned from Run.
type Session struct {
	state State

	collector FilterCollector
	loader    DatasetLoader
	reporter  StatsReporter
	pager     RawPager
	asker     Asker

	out    io.Writer
	logger logger.Logger
	nextID func() string
}

// NewSession wires the session's collaborators.
func NewSession(collector FilterCollector, loader DatasetLoader, reporter StatsReporter, pager RawPager, asker Asker, opts ...Option) *Session {
	s := &Session{
		state:     StateRunning,
		collector: collector,
		loader:    loader,
		reporter:  reporter,
		pager:     pager,
		asker:     asker,
		out:       os.Stdout,
		logger:    logger.Discard(),
		nextID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Run loops while the session is running. It returns nil once the user
// declines to restart.
func (s *Session) Run(ctx context.Context) error {
	if s.state == StateTerminated {
		return ErrTerminated
	}
	for s.state == StateRunning {
		if err := s.pass(ctx); err != nil {
			return err
		}
	}
	return nil
}

// pass runs one collect, load, report, paginate and restart cycle.
func (s *Session) pass(ctx context.Context) error {
	id := s.nextID()
	log := s.logger.Named("session")
	metrics.RecordSessionStarted()

	sel, err := s.collector.CollectFilters(ctx)
	if err != nil {
		return err
	}
	log.Info(ctx, "session pass started",
		logger.String("session_id", id),
		logger.String("city", sel.City),
		logger.String("month", sel.Month),
		logger.String("day", sel.Day),
	)

	ds, err := s.loader.Load(ctx, sel)
	if err != nil {
		return err
	}
	if err := s.reporter.All(ctx, ds); err != nil {
		return err
	}
	if err := s.pager.Run(ctx, ds); err != nil {
		return err
	}

	again, err := s.asker.AskYesNo(ctx, FieldRestart, RestartPrompt)
	if err != nil {
		return err
	}
	metrics.RecordSessionCompleted()
	log.Info(ctx, "session pass finished",
		logger.String("session_id", id),
		logger.Int("rows", ds.Len()),
		logger.Any("restart", again),
	)

	if again {
		return nil
	}
	if _, err := fmt.Fprintln(s.out, Farewell); err != nil {
		return fmt.Errorf("write farewell: %w", err)
	}
	s.state = StateTerminated
	return nil
}
