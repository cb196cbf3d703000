package daemon

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorhill/cronexpr"
	"github.com/username/textcal/internal/calendar"
	"github.com/username/textcal/internal/output"
	"go.uber.org/zap"
)

// Daemon regenerates the current year's calendar file on a cron
// schedule, so the output rolls over to a new file at the turn of the
// year without manual intervention.
type Daemon struct {
	generator  *calendar.Generator
	writer     *output.Writer
	schedule   *cronexpr.Expression
	systemTray bool
	logger     *zap.Logger
	ctx        context.Context
	cancel     context.CancelFunc
	trayApp    *TrayApp
	mu         sync.Mutex // Protect against concurrent regeneration
	lastYear   int        // Year of the last successful regeneration
	lastRun    time.Time
}

// New creates a daemon instance. schedule must be a valid cron
// expression.
func New(generator *calendar.Generator, writer *output.Writer, schedule string, systemTray bool, logger *zap.Logger) (*Daemon, error) {
	expr, err := cronexpr.Parse(schedule)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Daemon{
		generator:  generator,
		writer:     writer,
		schedule:   expr,
		systemTray: systemTray,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}, nil
}

// Start starts the daemon. With the system tray enabled (Windows
// only) the tray owns the main loop; otherwise the daemon runs in
// console mode until a signal arrives.
func (d *Daemon) Start() error {
	if d.systemTray {
		d.logger.Info("Initializing system tray")
		trayApp, err := NewTrayApp(d, d.logger)
		if err != nil {
			d.logger.Warn("Failed to initialize system tray", zap.Error(err))
			// Fall back to non-tray mode
			d.run()
			return nil
		}
		d.trayApp = trayApp
		// Run tray (blocks until Quit)
		d.trayApp.Run()
		return nil
	}

	d.logger.Info("Running without system tray")
	d.run()
	return nil
}

// run executes the scheduled regeneration loop (called from the tray
// or standalone).
func (d *Daemon) run() {
	// Generate once at startup so a fresh install has a calendar file
	// before the first scheduled run.
	if err := d.GenerateNow(); err != nil {
		d.logger.Error("Initial generation failed", zap.Error(err))
		if d.trayApp != nil {
			d.trayApp.ShowNotification("Generation Failed", fmt.Sprintf("Error: %v", err))
		}
	}

	nextRun := d.schedule.Next(time.Now())
	d.logger.Info("Next generation scheduled",
		zap.Time("next_run", nextRun),
		zap.Duration("wait_duration", time.Until(nextRun)))

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Check every minute if the schedule fired
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-d.ctx.Done():
			d.logger.Info("Daemon stopped")
			if d.trayApp != nil {
				d.trayApp.Stop()
			}
			return

		case sig := <-sigChan:
			d.logger.Info("Received signal, shutting down",
				zap.String("signal", sig.String()))
			if d.trayApp != nil {
				d.trayApp.Stop()
			}
			d.Stop()
			return

		case now := <-ticker.C:
			if now.Before(nextRun) {
				continue
			}

			d.logger.Info("Starting scheduled generation", zap.Time("time", now))
			if err := d.GenerateNow(); err != nil {
				d.logger.Error("Generation failed", zap.Error(err))
				if d.trayApp != nil {
					d.trayApp.ShowNotification("Generation Failed", fmt.Sprintf("Error: %v", err))
				}
			} else if d.trayApp != nil {
				year, _ := d.LastRun()
				d.trayApp.ShowNotification("Calendar Updated",
					fmt.Sprintf("Calendar for %d regenerated", year))
			}

			nextRun = d.schedule.Next(now)
			d.logger.Info("Next generation scheduled",
				zap.Time("next_run", nextRun),
				zap.Duration("wait_duration", time.Until(nextRun)))
		}
	}
}

// Stop stops the daemon
func (d *Daemon) Stop() {
	d.cancel()
}

// GenerateNow regenerates the calendar file for the current year.
// Protected with a mutex so the tray menu and the schedule cannot
// write the file concurrently.
func (d *Daemon) GenerateNow() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	year := time.Now().Year()

	cal, err := d.generator.Generate(year)
	if err != nil {
		return fmt.Errorf("failed to generate calendar: %w", err)
	}

	path, err := d.writer.Write(cal)
	if err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}

	d.lastYear = year
	d.lastRun = time.Now()

	d.logger.Info("Calendar regenerated",
		zap.Int("year", year),
		zap.String("path", path))

	return nil
}

// LastRun returns the year and time of the last successful
// regeneration (zero values before the first run).
func (d *Daemon) LastRun() (int, time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastYear, d.lastRun
}
