package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bhvaleri/decaffeinate/internal/driver"
	"github.com/bhvaleri/decaffeinate/internal/ui"
)

type convertOutcome struct {
	results []*driver.Result
	err     error
}

// runConvertWithUI converts files while a progress view consumes the
// driver's events.
func runConvertWithUI(ctx context.Context, out io.Writer, files []string, opts driver.Options) ([]*driver.Result, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan convertOutcome, 1)

	go func() {
		opts.Sink = driver.ChannelSink{Ch: events}
		results, err := driver.TranspileFiles(ctx, files, opts)
		outcomeCh <- convertOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("converting", files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithInput(nil), tea.WithContext(ctx))
	_, uiErr := program.Run()
	if uiErr != nil {
		// keep the converter from blocking on a full channel
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
