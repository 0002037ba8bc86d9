package config

import "time"

// Timer defaults.
const (
	RecipeTimerSeconds = 10 * 60
	TickInterval       = time.Second
	FastTickInterval   = 10 * time.Millisecond
)

// Carousel defaults.
const (
	DefaultStartIndex = 2
	AutoplayInterval  = 5 * time.Second
	SwipeThreshold    = 50
)

// Snapshot names.
const (
	TimerSnapshotName    = "recipe-timer"
	CarouselSnapshotName = "gallery"
)

// Application settings.
const (
	AppName        = "kitchendeck"
	DBFileName     = "kitchendeck.db"
	ConfigFileName = "config.yaml"
	LogFileName    = "kitchendeck.log"
)
