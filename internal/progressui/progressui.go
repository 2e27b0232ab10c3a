// Package progressui renders a ticking, terminal-refreshed progress
// indicator for long-running phases of a mining run. It supports both
// a determinate mode (known total, percentage and ETA) and an
// indeterminate "ticking" mode (total < 0) for the pattern-growth
// search, whose tree size isn't known up front.
package progressui

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// Bar is a self-refreshing progress indicator. It prints to stdout once
// a second on its own goroutine (started by New) until Stop is called.
type Bar struct {
	total     int64
	current   atomic.Int64
	width     int
	fillChar  string
	emptyChar string
	startTime time.Time
	ticker    *time.Ticker
	stopChan  chan struct{}
	doneChan  chan struct{}
}

// New starts a Bar. total < 0 means the total work is unknown: Render
// prints elapsed time and a raw count instead of a percentage/ETA.
func New(total int, width int) *Bar {
	b := &Bar{
		total:     int64(total),
		width:     width,
		fillChar:  "█",
		emptyChar: "░",
		startTime: time.Now(),
		stopChan:  make(chan struct{}),
		doneChan:  make(chan struct{}),
	}
	b.startTicker()
	return b
}

func (b *Bar) startTicker() {
	b.ticker = time.NewTicker(time.Second)
	go func() {
		defer close(b.doneChan)
		b.print()
		for {
			select {
			case <-b.ticker.C:
				b.print()
			case <-b.stopChan:
				b.ticker.Stop()
				return
			}
		}
	}()
}

// Add increments the current count by delta.
func (b *Bar) Add(delta int) {
	b.current.Add(int64(delta))
}

// Stop halts the refresh goroutine and prints a final line.
func (b *Bar) Stop() {
	close(b.stopChan)
	<-b.doneChan
	b.print()
	fmt.Println()
}

func (b *Bar) print() {
	fmt.Print(b.Render())
}

// Render returns the current line without printing it.
func (b *Bar) Render() string {
	current := b.current.Load()
	elapsed := time.Since(b.startTime).Round(time.Second)

	if b.total <= 0 {
		rate := float64(current) / time.Since(b.startTime).Seconds()
		return fmt.Sprintf("\r %d patterns found | %s | %.0f/s      ", current, elapsed, rate)
	}

	filled := int(float64(b.width) * float64(current) / float64(b.total))
	if filled > b.width {
		filled = b.width
	}
	bar := strings.Repeat(b.fillChar, filled) + strings.Repeat(b.emptyChar, b.width-filled)

	var eta time.Duration
	var rate float64
	if current > 0 {
		secsElapsed := time.Since(b.startTime)
		eta = time.Duration(float64(secsElapsed) * float64(b.total-current) / float64(current)).Round(time.Second)
		rate = float64(current) / secsElapsed.Seconds()
	}
	percentage := int(float64(current) / float64(b.total) * 100)

	return fmt.Sprintf("\r %d%% [%s] (%d/%d, %.0f/s) | %s | ETA: %s      ",
		percentage, bar, current, b.total, rate, elapsed, eta.Round(time.Second))
}
