// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual pieces of vajra's terminal
// output. The benchmark engine only emits numeric progress events;
// turning them into glyphs happens here.
package components

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/muesli/termenv"
)

// =============================================================================
// PROGRESS BAR RENDERER
// =============================================================================

// defaultBarWidth is used when the caller does not size the bar.
const defaultBarWidth = 40

// ProgressRenderer implements benchmark.ProgressSink by redrawing a
// single progress line in place. The engine calls it between timed
// iterations, so rendering stays synchronous and cheap: no goroutines,
// no tea.Program, just one line rewrite per event.
type ProgressRenderer struct {
	out   *termenv.Output
	bar   progress.Model
	lines int // transient lines currently on screen (0 or 1)
}

// NewProgressRenderer creates a renderer writing to w. width is the bar
// width in cells; pass 0 for the default.
func NewProgressRenderer(w io.Writer, width int) *ProgressRenderer {
	if width <= 0 {
		width = defaultBarWidth
	}
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	return &ProgressRenderer{
		out: termenv.NewOutput(w),
		bar: bar,
	}
}

// OnProgress redraws the bar for the given counter state.
func (p *ProgressRenderer) OnProgress(current, total int) {
	if total <= 0 {
		return
	}
	ratio := float64(current) / float64(total)
	if ratio > 1 {
		ratio = 1
	}

	p.out.WriteString("\r")
	p.out.ClearLineRight()
	p.out.WriteString(fmt.Sprintf("%s %d/%d", p.bar.ViewAs(ratio), current, total))
	p.lines = 1
}

// Finish terminates the progress line so subsequent output starts on a
// fresh line.
func (p *ProgressRenderer) Finish() {
	if p.lines > 0 {
		p.out.WriteString("\n")
		p.lines = 0
	}
}

// Clear erases the transient progress line entirely, the way the final
// report wants a clean screen to land on.
func (p *ProgressRenderer) Clear() {
	if p.lines > 0 {
		p.out.WriteString("\r")
		p.out.ClearLine()
		p.lines = 0
	}
}
