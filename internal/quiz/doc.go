package quiz

// Package quiz implements the core round engine: it owns the current round,
// the per-round countdown, score counters, and the summary dialog flag. The
// UI consumes state snapshots via an update callback and forwards player
// intents (answer selection, summary dismissal) back into the engine.
