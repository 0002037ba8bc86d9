package config

import "time"

// Layout constants.
const (
	// MinPaneWidth is the narrowest a pane is drawn.
	MinPaneWidth = 24

	// CompactModeThreshold stacks the panes vertically below this width.
	CompactModeThreshold = 80

	// ProgressWidth is the preferred width of the timer progress bar.
	ProgressWidth = 30

	// MinProgressWidth is the smallest progress bar width.
	MinProgressWidth = 10
)

// Display limits.
const (
	// MaxThumbnails limits the thumbnail strip before it scrolls.
	MaxThumbnails = 9

	// MaxCaptionWidth truncates long alt text.
	MaxCaptionWidth = 40

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Interaction.
const (
	// PixelsPerCell converts the pixel swipe threshold into terminal cells.
	PixelsPerCell = 8

	// ToastDuration is how long a notification stays in the footer.
	ToastDuration = 3 * time.Second
)
