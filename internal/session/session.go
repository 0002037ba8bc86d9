// Package session owns one countdown and one carousel for a page, wires them
// to the notification hub and keeps their snapshots in a store.
package session

import (
	"context"
	"errors"

	"github.com/akyairhashvil/kitchendeck/internal/carousel"
	"github.com/akyairhashvil/kitchendeck/internal/clock"
	"github.com/akyairhashvil/kitchendeck/internal/config"
	"github.com/akyairhashvil/kitchendeck/internal/countdown"
	"github.com/akyairhashvil/kitchendeck/internal/database"
	"github.com/akyairhashvil/kitchendeck/internal/models"
	"github.com/akyairhashvil/kitchendeck/internal/notify"
	"go.uber.org/zap"
)

type Options struct {
	Config         *config.Config
	Store          database.SnapshotStore // optional
	Logger         *zap.Logger            // optional
	TimerTicker    clock.Ticker
	AutoplayTicker clock.Ticker
	// Restore loads stored snapshots into the new components.
	Restore bool
}

type Session struct {
	Timer    *countdown.Timer
	Carousel *carousel.Carousel
	Autoplay *carousel.Autoplay
	Hub      *notify.Hub

	store  database.SnapshotStore
	logger *zap.Logger
}

// New builds the components described by opts.Config. Stored snapshots that
// fail validation are logged and skipped so a bad file never blocks startup.
func New(ctx context.Context, opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	hub := notify.NewHub()
	hub.Subscribe("", notify.LogNotifier{Logger: logger})

	timer, err := countdown.New(cfg.Timer.Seconds, opts.TimerTicker, hub, countdown.WithName(config.TimerSnapshotName))
	if err != nil {
		return nil, err
	}
	gallery, err := carousel.New(cfg.Carousel.Items, cfg.Carousel.StartIndex, hub, carousel.WithName(config.CarouselSnapshotName))
	if err != nil {
		return nil, err
	}
	s := &Session{
		Timer:    timer,
		Carousel: gallery,
		Autoplay: carousel.NewAutoplay(gallery, opts.AutoplayTicker),
		Hub:      hub,
		store:    opts.Store,
		logger:   logger,
	}
	if s.store != nil && opts.Restore {
		s.restore(ctx)
	}
	if s.store != nil {
		hub.Subscribe(notify.TimerPaused, s.timerSaver(ctx))
		hub.Subscribe(notify.TimerReset, s.timerSaver(ctx))
		hub.Subscribe(notify.TimerCompleted, s.timerSaver(ctx))
		hub.Subscribe(notify.CarouselChanged, s.carouselSaver(ctx))
	}
	if cfg.Carousel.Autoplay {
		s.Autoplay.Start()
	}
	return s, nil
}

func (s *Session) restore(ctx context.Context) {
	if snap, err := s.store.LoadTimer(ctx, s.Timer.Name()); err == nil {
		if err := s.Timer.Restore(snap); err != nil {
			s.logger.Warn("discarding stored timer", zap.Error(err))
		} else {
			s.logger.Debug("restored timer", zap.String("state", string(snap.State)), zap.Int("remaining", snap.Remaining))
		}
	} else if !errors.Is(err, database.ErrSnapshotNotFound) {
		s.logger.Warn("load timer snapshot", zap.Error(err))
	}

	if snap, err := s.store.LoadCarousel(ctx, s.Carousel.Name()); err == nil {
		if err := s.Carousel.Restore(snap); err != nil {
			s.logger.Warn("discarding stored carousel", zap.Error(err))
		}
	} else if !errors.Is(err, database.ErrSnapshotNotFound) {
		s.logger.Warn("load carousel snapshot", zap.Error(err))
	}
}

func (s *Session) timerSaver(ctx context.Context) notify.Notifier {
	return notify.NotifierFunc(func(ev notify.Event) {
		snap, ok := ev.Payload.(models.TimerSnapshot)
		if !ok {
			return
		}
		if err := s.store.SaveTimer(ctx, ev.Source, snap); err != nil {
			s.logger.Error("save timer snapshot", zap.Error(err))
		}
	})
}

func (s *Session) carouselSaver(ctx context.Context) notify.Notifier {
	return notify.NotifierFunc(func(ev notify.Event) {
		change, ok := ev.Payload.(notify.IndexChange)
		if !ok {
			return
		}
		if err := s.store.SaveCarousel(ctx, ev.Source, models.CarouselSnapshot{Index: change.To}); err != nil {
			s.logger.Error("save carousel snapshot", zap.Error(err))
		}
	})
}

// Save writes both snapshots as they are now.
func (s *Session) Save(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.SaveTimer(ctx, s.Timer.Name(), s.Timer.Snapshot()); err != nil {
		return err
	}
	return s.store.SaveCarousel(ctx, s.Carousel.Name(), s.Carousel.Snapshot())
}

// Suspend stops everything that ticks, pausing a running timer, then saves.
func (s *Session) Suspend(ctx context.Context) error {
	s.Autoplay.Stop()
	if s.Timer.State() == models.TimerRunning {
		if err := s.Timer.Pause(); err != nil {
			return err
		}
	}
	return s.Save(ctx)
}

// Forget deletes the stored snapshots.
func (s *Session) Forget(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.DeleteSnapshot(ctx, s.Timer.Name()); err != nil {
		return err
	}
	return s.store.DeleteSnapshot(ctx, s.Carousel.Name())
}
