package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/srodi/topshot/pkg/collector/proc"
	"github.com/srodi/topshot/pkg/collector/wintitle"
	"github.com/srodi/topshot/pkg/config"
	"github.com/srodi/topshot/pkg/report"
	"github.com/srodi/topshot/pkg/tracker"
	"github.com/srodi/topshot/pkg/ui"
)

func parseConfig() config.Config {
	defaults := config.Default()
	configPath := flag.String("config", "", "path to a YAML config file")
	interval := flag.Duration("interval", defaults.Interval, "refresh interval (e.g. 2s, 1m)")
	retention := flag.Int("retention", defaults.RetentionSeconds, "sample retention window in seconds")
	threshold := flag.Float64("threshold", defaults.CPUThreshold, "minimum normalized CPU percent to display")
	topN := flag.Int("top", defaults.TopN, "number of processes to display")
	hideKernel := flag.Bool("hide-kernel", defaults.HideKernel, "hide kernel threads such as kworker, ksoftirqd, etc")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// Flags set on the command line win over the config file.
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["interval"] {
		cfg.Interval = *interval
	}
	if set["retention"] {
		cfg.RetentionSeconds = *retention
	}
	if set["threshold"] {
		cfg.CPUThreshold = *threshold
	}
	if set["top"] {
		cfg.TopN = *topN
	}
	if set["hide-kernel"] {
		cfg.HideKernel = *hideKernel
	}
	return cfg.Normalize()
}

func main() {
	cfg := parseConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	procs, err := proc.NewCollector()
	if err != nil {
		log.Fatalf("initializing process collector: %v", err)
	}
	titles := wintitle.NewProvider()

	tr := tracker.New(procs, titles, procs.CoreCount(), tracker.Config{
		Retention:    cfg.Retention(),
		CPUThreshold: cfg.CPUThreshold,
	})

	cleanupTerminal := enableSingleView()
	defer cleanupTerminal()

	// Prime the per-process CPU baselines so the first rendered cycle shows
	// deltas instead of since-start averages.
	if _, err := tr.Cycle(time.Now()); err != nil {
		log.Printf("initial snapshot failed: %v", err)
	}

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if err := refreshAndPrint(tr, cfg, now); err != nil {
				log.Printf("cycle failed: %v", err)
			}
		}
	}
}

func refreshAndPrint(tr *tracker.Tracker, cfg config.Config, now time.Time) error {
	rows, err := tr.Cycle(now)
	if err != nil {
		return err
	}
	if cfg.HideKernel {
		kept := rows[:0]
		for _, row := range rows {
			if !report.IsKernelThread(row.PID, row.Name) {
				kept = append(kept, row)
			}
		}
		rows = kept
	}

	var buf bytes.Buffer
	buf.WriteString(ui.Banner())
	fmt.Fprintf(&buf, "topshot (press Ctrl+C to exit)\n")
	ui.RenderTable(&buf, rows, cfg.Retention(), cfg.TopN, now)

	clearScreen()
	fmt.Print(buf.String())
	return nil
}

func clearScreen() {
	fmt.Print("\033[H\033[2J")
}

func enableSingleView() func() {
	stdoutFD := int(os.Stdout.Fd())
	stdinFD := int(os.Stdin.Fd())
	if !term.IsTerminal(stdoutFD) {
		return func() {}
	}

	fmt.Print("\033[?1049h") // switch to alternate buffer
	fmt.Print("\033[?25l")   // hide cursor

	var restore []func()
	if term.IsTerminal(stdinFD) {
		if undoEcho, err := disableInputEcho(stdinFD); err != nil {
			log.Printf("unable to suppress stdin echo: %v", err)
		} else if undoEcho != nil {
			restore = append(restore, undoEcho)
		}
	}

	return func() {
		for i := len(restore) - 1; i >= 0; i-- {
			restore[i]()
		}
		fmt.Print("\033[?25h")   // show cursor
		fmt.Print("\033[?1049l") // restore main buffer
	}
}
