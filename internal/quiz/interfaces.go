package quiz

// Engine defines the interface for the quiz round engine.
type Engine interface {
	SetUpdateCallback(func(Snapshot))
	Start()
	SelectAnswer(isPrime bool)
	DismissSummary()
	Snapshot() Snapshot

	// ApplyOptions reconfigures timing and scoring for subsequent rounds
	ApplyOptions(opts Options)
}
