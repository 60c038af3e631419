// vtsim drives a scripted workload through a virtual-time scheduler
// and reports how much simulated time was collapsed into how little
// wall time.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/virtualtime/vtsched"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	period  time.Duration
	events  int
	horizon time.Duration
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vtsim",
		Short: "Virtual-time scheduling demo",
		Long: `vtsim schedules a periodic heartbeat and a spread of one-shot
events on a virtual clock, then advances that clock to the horizon.
No wall-clock time passes while the simulation runs.`,
		RunE: runSim,
	}

	rootCmd.Flags().DurationVar(&period, "period", 10*time.Second, "Heartbeat period (virtual)")
	rootCmd.Flags().IntVar(&events, "events", 5, "Number of one-shot events spread across the horizon")
	rootCmd.Flags().DurationVar(&horizon, "horizon", time.Hour, "Virtual time span to simulate")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Trace scheduler internals")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSim(cmd *cobra.Command, args []string) error {
	if period <= 0 || horizon <= 0 {
		return fmt.Errorf("period and horizon must be positive")
	}
	if events < 0 {
		return fmt.Errorf("events must not be negative")
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log := zerolog.New(out).With().Timestamp().Logger()

	s := vtsched.NewTicks()
	if verbose {
		s = s.WithLogger(log.Level(zerolog.TraceLevel))
	}

	var invocations int
	s.SchedulePeriodicWithState(0, period, func(state any) any {
		beat := state.(int) + 1
		invocations++
		log.Info().
			Time("virtual", s.Now()).
			Int("beat", beat).
			Msg("heartbeat")
		return beat
	})

	for i := 1; i <= events; i++ {
		at := horizon * time.Duration(i) / time.Duration(events+1)
		n := i
		s.ScheduleRelative(at, func() {
			invocations++
			log.Info().
				Time("virtual", s.Now()).
				Int("event", n).
				Msg("one-shot event")
		})
	}

	started := time.Now()
	if err := s.AdvanceTo(vtsched.Ticks(horizon)); err != nil {
		return err
	}
	elapsed := time.Since(started)

	pending := 0
	s.Scan(func(_ time.Time, cancelled bool) bool {
		if !cancelled {
			pending++
		}
		return true
	})

	log.Info().
		Dur("simulated", horizon).
		Dur("wall", elapsed).
		Int("invocations", invocations).
		Int("pending", pending).
		Msg("simulation finished")
	return nil
}
