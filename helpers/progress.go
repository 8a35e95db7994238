package helpers

import (
	"fmt"
	"io"
	"time"

	"github.com/cheggaaa/pb/v3"
)

const pageTemplate pb.ProgressBarTemplate = `{{string . "prefix"}}{{string . "status"}}`

// PageProgress reports paginated fetch progress on a terminal. A nil
// *PageProgress is valid and reports nothing.
type PageProgress struct {
	bar   *pb.ProgressBar
	total int
}

// NewPageProgress starts a progress line on w. It returns nil when disabled so
// callers can report unconditionally.
func NewPageProgress(w io.Writer, description string, enabled bool) *PageProgress {
	if !enabled {
		return nil
	}
	bar := pageTemplate.New(0)
	bar.SetWriter(w)
	bar.SetRefreshRate(100 * time.Millisecond)
	bar.Set("prefix", description+" ")
	bar.Set("status", "starting...")
	bar.Start()
	return &PageProgress{bar: bar}
}

// Page records that page number page returned count records.
func (p *PageProgress) Page(page, count int) {
	if p == nil {
		return
	}
	p.total += count
	p.bar.SetCurrent(int64(p.total))
	p.bar.Set("status", fmt.Sprintf("page %d, %d repositories", page, p.total))
}

// Total returns the number of records reported so far.
func (p *PageProgress) Total() int {
	if p == nil {
		return 0
	}
	return p.total
}

func (p *PageProgress) Finish() {
	if p == nil {
		return
	}
	p.bar.Set("status", fmt.Sprintf("%d repositories", p.total))
	p.bar.Finish()
}
