package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"scaffix/internal/domain"
)

var _ Viewer = (*ReportViewer)(nil)

// ReportViewer browses the outcomes of a run report in a TUI
type ReportViewer struct{}

// NewReportViewer creates a new ReportViewer
func NewReportViewer() *ReportViewer {
	return &ReportViewer{}
}

// View opens the viewer on report. Outcomes are listed on the left, details of
// the selected one on the right; F toggles between all outcomes and failures.
func (rv *ReportViewer) View(report *domain.RunReport) error {
	if len(report.Outcomes) == 0 {
		green.Println("✓ Nothing recorded in the last run")
		return nil
	}

	onlyFailed := report.Summary.Failed > 0
	var visible []domain.Outcome

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		scope := "all"
		if onlyFailed {
			scope = "failed only"
		}
		headerView.SetText(fmt.Sprintf(" %s run: %d file(s), %d failed, showing %s | ↑↓ navigate, [yellow]F[white] toggle failed, → details, ← back, Ctrl+C exit ",
			report.Tool, len(report.Outcomes), report.Summary.Failed, scope))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(visible) {
			statsView.SetText("")
			detailsView.SetText("")
			return
		}
		o := visible[index]
		statsView.SetText(fmt.Sprintf("[cyan]path:[white] [yellow]%s[white]\n", o.Path))
		detailsView.SetText(formatOutcomeDetails(report, o))
	}

	fill := func() {
		list.Clear()
		visible = filterOutcomes(report.Outcomes, onlyFailed)
		for i, o := range visible {
			list.AddItem(outcomeListText(i, o), "", 0, nil)
		}
		updateHeader()
		updateDetails()
	}

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'f' || event.Rune() == 'F' {
				onlyFailed = !onlyFailed
				fill()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	fill()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func filterOutcomes(outcomes []domain.Outcome, onlyFailed bool) []domain.Outcome {
	if !onlyFailed {
		return outcomes
	}
	var failed []domain.Outcome
	for _, o := range outcomes {
		if o.Action == domain.ActionFailed {
			failed = append(failed, o)
		}
	}
	return failed
}

// outcomeListText formats a list entry using tview color tags
func outcomeListText(index int, o domain.Outcome) string {
	tag := "white"
	switch o.Action {
	case domain.ActionGenerated, domain.ActionFixed:
		tag = "green"
	case domain.ActionSkipped:
		tag = "gray"
	case domain.ActionFailed:
		tag = "red"
	}
	return fmt.Sprintf("[yellow]%d.[%s] %s[white]", index+1, tag, o.Path)
}

func formatOutcomeDetails(report *domain.RunReport, o domain.Outcome) string {
	var b strings.Builder

	if o.Action == domain.ActionFailed {
		fmt.Fprintf(&b, "[red]✗ %s[white]\n\n", o.Action)
	} else {
		fmt.Fprintf(&b, "[green]%s[white]\n\n", o.Action)
	}
	fmt.Fprintf(&b, "[cyan]File: %s[white]\n", o.Path)
	fmt.Fprintf(&b, "[cyan]Root: %s[white]\n\n", report.Root)

	if o.Error != "" {
		fmt.Fprintf(&b, "[yellow]Error:[white]\n%s\n\n", tview.Escape(o.Error))
	}
	if report.DryRun {
		b.WriteString("[gray](dry run, nothing was written)[white]\n")
	}
	fmt.Fprintf(&b, "[gray]%s, took %s[white]\n", report.Timestamp, report.Duration)
	return b.String()
}
