// Package progress provides build feedback for the site generator: an
// interactive bar on a terminal, plain log lines under CI or --verbose.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives progress callbacks during a site build.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// New returns a Reporter for a build. Plain line output is used when
// plain is true or when a CI environment is detected; otherwise an
// interactive progress bar.
func New(plain bool) Reporter {
	if plain || os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &lineReporter{out: os.Stderr}
	}
	return &barReporter{}
}

type barReporter struct {
	bar *progressbar.ProgressBar
}

func (r *barReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Building site"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *barReporter) Update(current int, message string) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(message)
	_ = r.bar.Set(current)
}

func (r *barReporter) Finish() {
	if r.bar == nil {
		return
	}
	_ = r.bar.Finish()
}

// lineReporter emits one line per page, suitable for CI logs and piped
// output.
type lineReporter struct {
	out   io.Writer
	total int
}

func (r *lineReporter) Start(total int) {
	r.total = total
	fmt.Fprintf(r.out, "Building %d pages\n", total)
}

func (r *lineReporter) Update(current int, message string) {
	fmt.Fprintf(r.out, "[%d/%d] %s\n", current, r.total, message)
}

func (r *lineReporter) Finish() {
	fmt.Fprintln(r.out, "Site build complete")
}
