package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconCorrect  = "✓"
	IconWrong    = "✗"
)

// Text fragments
const (
	MiddleDotSeparator   = " · "
	CountdownLabelFormat = "%ds"
	AccuracyLabelFormat  = "%.0f%%"
)

// Layout sizing
const (
	NumberTextSize   float32 = 72
	FeedbackTextSize float32 = 18

	ContentMinWidth  float32 = 320
	ContentMinHeight float32 = 480

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	AnswerButtonHeight float32 = 56
	AnswerButtonWidth  float32 = 130
)
