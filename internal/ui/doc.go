package ui

// Package ui contains the Fyne-based user interface for the game. It renders
// engine snapshots (number, countdown, score) and forwards player intents to
// the quiz engine. All UI strings are localized via Localization.
