package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akyairhashvil/kitchendeck/internal/clock"
	"github.com/akyairhashvil/kitchendeck/internal/config"
	"github.com/akyairhashvil/kitchendeck/internal/models"
	"github.com/akyairhashvil/kitchendeck/internal/notify"
	"github.com/akyairhashvil/kitchendeck/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const completionMessage = "Cooking time complete! Your coffee is ready!"

func timerCmd(opts *rootOptions) *cobra.Command {
	var (
		seconds int
		fast    bool
		resume  bool
	)
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run the recipe countdown without the interactive view",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if !cmd.Flags().Changed("seconds") {
				seconds = opts.env.config.Timer.Seconds
			}
			interval := config.TickInterval
			if fast {
				interval = config.FastTickInterval
			}
			return runHeadless(ctx, opts.env, cmd.OutOrStdout(), headlessOptions{
				seconds:  seconds,
				interval: interval,
				resume:   resume,
			})
		},
	}
	cmd.Flags().IntVarP(&seconds, "seconds", "s", config.RecipeTimerSeconds, "countdown length in seconds")
	cmd.Flags().BoolVar(&fast, "fast", false, "tick every "+config.FastTickInterval.String()+" instead of every second")
	cmd.Flags().BoolVar(&resume, "resume", false, "continue from the stored snapshot")
	return cmd
}

type headlessOptions struct {
	seconds  int
	interval time.Duration
	resume   bool
}

// runHeadless drives a session on a clock.Loop until the countdown completes
// or ctx is cancelled, in which case the timer is paused and saved.
func runHeadless(ctx context.Context, env *appEnv, out io.Writer, o headlessOptions) error {
	cfg := *env.config
	cfg.Timer.Seconds = o.seconds
	cfg.Carousel.Autoplay = false

	loop := clock.NewLoop()
	var sess *session.Session
	base := loop.Every(o.interval)
	ticker := clock.TickerFunc(func(onTick func()) func() {
		return base.Start(func() {
			before, state := sess.Timer.Remaining(), sess.Timer.State()
			onTick()
			// Ticks queued before the timer stopped listening change nothing.
			if sess.Timer.Remaining() != before || sess.Timer.State() != state {
				fmt.Fprintln(out, sess.Timer.RemainingFormatted())
			}
		})
	})

	sess, err := session.New(ctx, session.Options{
		Config:      &cfg,
		Store:       env.db,
		Logger:      env.logger,
		TimerTicker: ticker,
		Restore:     o.resume,
	})
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var startErr error
	loop.Post(func() {
		switch sess.Timer.State() {
		case models.TimerCompleted:
			cancel()
			return
		case models.TimerRunning:
		default:
			if startErr = sess.Timer.Start(); startErr != nil {
				cancel()
				return
			}
		}
		if sess.Timer.State() == models.TimerCompleted {
			cancel()
			return
		}
		fmt.Fprintln(out, sess.Timer.RemainingFormatted())
	})
	sess.Hub.Subscribe(notify.TimerCompleted, notify.NotifierFunc(func(notify.Event) { cancel() }))
	rec := &notify.Recorder{}
	sess.Hub.Subscribe("", rec)
	defer func() {
		env.logger.Info("timer run finished",
			zap.Int("events", len(rec.Events())),
			zap.Int("pauses", rec.Count(notify.TimerPaused)),
			zap.String("state", string(sess.Timer.State())))
	}()

	if err := loop.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if startErr != nil {
		return startErr
	}

	if sess.Timer.State() == models.TimerCompleted {
		fmt.Fprintln(out, completionMessage)
		return sess.Save(context.Background())
	}
	if err := sess.Suspend(context.Background()); err != nil {
		return err
	}
	fmt.Fprintf(out, "Paused at %s. Continue with: %s timer --resume\n", sess.Timer.RemainingFormatted(), config.AppName)
	return nil
}
