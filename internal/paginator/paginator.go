// Package paginator shows the raw rows of a dataset a page at a time.
package paginator

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/okian/bikeshare/internal/domain/model"
	"github.com/okian/bikeshare/pkg/logger"
)

// DefaultPageSize is the number of rows shown per page.
const DefaultPageSize = 5

// Prompts and notices.
const (
	FirstPrompt = "\nWould you like to see five rows of raw data? Enter yes or no: \n"
	NextPrompt  = "\nWould you like to see the next five rows? Enter yes or no: \n"
	Exhausted   = "No more data to display!"
)

// Field is the question name used in logs and metrics.
const Field = "raw_data"

// Asker asks a yes/no question.
type Asker interface {
	AskYesNo(ctx context.Context, field, prompt string) (bool, error)
}

// Paginator prints consecutive windows of a dataset on request.
type Paginator struct {
	asker    Asker
	out      io.Writer
	pageSize int
	logger   logger.Logger
	observe  func(int)
}

// New creates a Paginator asking through asker.
func New(asker Asker, opts ...Option) *Paginator {
	p := &Paginator{
		asker:    asker,
		out:      os.Stdout,
		pageSize: DefaultPageSize,
		logger:   logger.Discard(),
		observe:  func(int) {},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Window returns records[offset:min(offset+size, len)], or nil when offset is
// past the end.
func Window(records []model.TripRecord, offset, size int) []model.TripRecord {
	if offset < 0 || size <= 0 || offset >= len(records) {
		return nil
	}
	return records[offset:min(offset+size, len(records))]
}

// Run offers the rows of ds page by page until the user declines or the rows
// run out. An empty dataset prints the exhaustion notice without asking.
func (p *Paginator) Run(ctx context.Context, ds *model.Dataset) error {
	if ds.Len() == 0 {
		return p.println(Exhausted)
	}

	prompt := FirstPrompt
	for offset := 0; ; offset += p.pageSize {
		more, err := p.asker.AskYesNo(ctx, Field, prompt)
		if err != nil {
			return err
		}
		if !more {
			p.logger.Debug(ctx, "raw data declined", logger.Int("offset", offset))
			return nil
		}

		page := Window(ds.Records, offset, p.pageSize)
		if err := p.print(ds.Columns, offset, page); err != nil {
			return err
		}
		p.observe(len(page))

		if offset+p.pageSize >= ds.Len() {
			return p.println(Exhausted)
		}
		prompt = NextPrompt
	}
}

// print writes page as a table headed by the source columns. The first
// column is the row's position in the dataset.
func (p *Paginator) print(columns []string, offset int, page []model.TripRecord) error {
	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\t"+strings.Join(columns, "\t"))
	for i, r := range page {
		fmt.Fprintln(tw, strconv.Itoa(offset+i)+"\t"+strings.Join(r.Raw, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write raw rows: %w", err)
	}
	return nil
}

func (p *Paginator) println(s string) error {
	if _, err := fmt.Fprintln(p.out, s); err != nil {
		return fmt.Errorf("write raw rows: %w", err)
	}
	return nil
}
