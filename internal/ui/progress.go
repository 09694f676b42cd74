package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"scaffix/internal/domain"
)

// ProgressBar shows patch progress in place of per-file lines. The bar is
// drawn on the first Update, once the number of files is known.
type ProgressBar struct {
	bar     *progressbar.ProgressBar
	summary domain.Summary
}

// NewProgressBar creates a new progress bar
func NewProgressBar() *ProgressBar {
	return &ProgressBar{}
}

func newBar(count int) *progressbar.ProgressBar {
	return progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(domain.Summary{})),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// Report counts an outcome and refreshes the description
func (p *ProgressBar) Report(o domain.Outcome) {
	p.summary.Add(o)
	if p.bar != nil {
		p.bar.Describe(describe(p.summary))
	}
}

// Update moves the bar to done of total files
func (p *ProgressBar) Update(done, total int) {
	if p.bar == nil {
		p.bar = newBar(total)
	}
	p.bar.Describe(describe(p.summary))
	_ = p.bar.Set(done)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}

func describe(s domain.Summary) string {
	return color.CyanString("Patching files: ") +
		color.GreenString("[fixed: %d", s.Fixed) +
		" | " +
		color.RedString("failed: %d]", s.Failed)
}
