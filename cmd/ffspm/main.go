// Command ffspm is the command-line entrypoint for the fuzzy frequent
// spatial pattern miner: it wires the text-format readers, the YAML/flag
// configuration overlay, the core engine, and the pattern writer
// together into one run, the way oblq-art's example/main.go drives a
// training run and nokia-arm-go's main() drives a phase-by-phase mine.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"ffspm"
	"ffspm/internal/config"
	"ffspm/internal/progressui"
	"ffspm/internal/reader"
	"ffspm/internal/stats"
	"ffspm/internal/writer"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("ffspm", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML config file")
	debug := fs.Bool("debug", false, "enable verbose development logging")
	flags := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := newLogger(*debug)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	file, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	resolved := config.Merge(file, flags)
	if err := resolved.Validate(); err != nil {
		return err
	}

	st := stats.NewRun()
	bar := progressbar.Default(4, "ffspm")

	logger.Info("reading transactions", zap.String("path", resolved.Transactions))
	txs, err := reader.ReadTransactions(resolved.Transactions, resolved.EffectiveSeparator())
	if err != nil {
		return err
	}
	bar.Describe("reading neighbors")
	bar.Add(1)

	neighbors, err := reader.ReadNeighbors(resolved.Neighbors, resolved.EffectiveSeparator())
	if err != nil {
		return err
	}
	bar.Describe("resolving minSup")
	bar.Add(1)

	minSup, err := resolved.ResolveMinSup(len(txs))
	if err != nil {
		return err
	}
	logger.Info("config resolved",
		zap.Float64("minSup", minSup),
		zap.Int("transactions", len(txs)),
		zap.Int("parallelism", resolved.Parallelism),
	)

	engine, err := ffspm.New(ffspm.Config{MinSup: minSup, Parallelism: resolved.Parallelism})
	if err != nil {
		return err
	}
	engine.SetJoinHook(st.Join)

	bar.Describe("preparing FFI-lists")
	engine.Prepare(txs, neighbors)
	bar.Add(1)
	bar.Describe("mining")

	out, err := writer.New(resolved.Output, 0)
	if err != nil {
		return err
	}
	defer out.Close() //nolint:errcheck

	countingSink := ffspm.SinkFunc(func(p ffspm.Pattern) {
		st.Pattern()
		out.Emit(p)
	})

	mineBar := progressui.New(-1, 40)
	stopReporting := make(chan struct{})
	reportingDone := make(chan struct{})
	go reportPatternCount(mineBar, st, stopReporting, reportingDone)

	engine.Mine(countingSink)

	close(stopReporting)
	<-reportingDone
	mineBar.Stop()
	bar.Add(1)
	fmt.Println()

	st.Stop()
	st.LogSummary(logger)
	return nil
}

// reportPatternCount feeds the ticking progress bar's counter from the
// run's atomic pattern counter, once every 100ms, until stop is closed.
func reportPatternCount(bar *progressui.Bar, run *stats.Run, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	var last int64
	flush := func() {
		if current := run.PatternCount(); current > last {
			bar.Add(int(current - last))
			last = current
		}
	}
	for {
		select {
		case <-stop:
			flush()
			return
		case <-ticker.C:
			flush()
		}
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
