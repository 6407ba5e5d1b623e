package quiz

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/primetap/prime-tap/internal/model"
)

// Number range presented to the player
const (
	MinNumber = 2
	MaxNumber = 100
)

// Default timing and scoring parameters
const (
	DefaultCountdownSeconds = 5
	DefaultSummaryInterval  = 10
	DefaultAdvanceDelay     = 700 * time.Millisecond

	// TickInterval is the wall-clock period of one countdown tick
	TickInterval = time.Second
)

// Options configures timing and scoring of the engine
type Options struct {
	CountdownSeconds int           // seconds per round, DefaultCountdownSeconds if <= 0
	SummaryInterval  int           // attempts per summary dialog, DefaultSummaryInterval if <= 0
	AdvanceDelay     time.Duration // pause before the next round, DefaultAdvanceDelay if <= 0
	Seed             int64         // RNG seed, current time if 0
}

func (o Options) withDefaults() Options {
	if o.CountdownSeconds <= 0 {
		o.CountdownSeconds = DefaultCountdownSeconds
	}
	if o.SummaryInterval <= 0 {
		o.SummaryInterval = DefaultSummaryInterval
	}
	if o.AdvanceDelay <= 0 {
		o.AdvanceDelay = DefaultAdvanceDelay
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o
}

// Snapshot is an immutable view of the engine state, published to the update
// callback after every mutation
type Snapshot struct {
	RoundID        string
	Number         int
	TimeRemaining  int
	Answer         model.AnswerState
	NumberIsPrime  bool // ground truth for the current number, used for feedback text
	CorrectCount   int
	WrongCount     int
	TotalAttempts  int
	Accuracy       float64
	SummaryVisible bool
}

// Service implements Engine. All state is guarded by a single mutex; timer
// callbacks carry a generation counter so a stale firing is a no-op.
type Service struct {
	mu        sync.Mutex
	opts      Options
	scheduler Scheduler
	rng       *rand.Rand

	round          *model.Round
	tally          model.ScoreTally
	summaryVisible bool

	// generation invalidates outstanding countdown/advance callbacks;
	// every transition that cancels timers bumps it
	generation uint64
	countdown  Timer
	advance    Timer

	onUpdate func(Snapshot) // callback for UI updates
}

// NewService creates a new quiz engine
func NewService(opts Options, scheduler Scheduler) *Service {
	opts = opts.withDefaults()
	return &Service{
		opts:      opts,
		scheduler: scheduler,
		rng:       rand.New(rand.NewSource(opts.Seed)),
	}
}

// SetUpdateCallback sets the callback function for state updates
func (s *Service) SetUpdateCallback(callback func(Snapshot)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Start begins the first round. Subsequent calls are ignored.
func (s *Service) Start() {
	s.mu.Lock()
	if s.round != nil {
		s.mu.Unlock()
		return
	}
	s.startRoundLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// SelectAnswer resolves the current round with the player's judgment.
// Calls arriving after the round resolved (double taps, or an answer racing
// the countdown expiry) are silently ignored so nothing is double-counted.
func (s *Service) SelectAnswer(isPrime bool) {
	s.mu.Lock()
	if s.round == nil || s.round.Resolved() || s.summaryVisible {
		s.mu.Unlock()
		log.Printf("quiz: ignoring answer, no answerable round")
		return
	}

	correct := isPrime == IsPrime(s.round.Number)
	log.Printf("quiz: round %s answered isPrime=%v number=%d correct=%v",
		s.round.ID, isPrime, s.round.Number, correct)

	s.resolveLocked(correct)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// DismissSummary closes the summary dialog, zeroes the tally, and starts a
// fresh round immediately
func (s *Service) DismissSummary() {
	s.mu.Lock()
	if !s.summaryVisible {
		s.mu.Unlock()
		return
	}

	log.Printf("quiz: summary dismissed after %d attempts", s.tally.TotalAttempts)
	s.summaryVisible = false
	s.tally.Reset()
	s.startRoundLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// Snapshot returns the current engine state
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// ApplyOptions reconfigures timing and scoring. Changes take effect from the
// next round; the round in flight keeps its countdown.
func (s *Service) ApplyOptions(opts Options) {
	s.mu.Lock()
	opts.Seed = s.opts.Seed
	s.opts = opts.withDefaults()
	s.mu.Unlock()
}

// handleTick runs once per countdown second while the round is unanswered
func (s *Service) handleTick(gen uint64) {
	s.mu.Lock()
	if gen != s.generation || s.round == nil || s.round.Resolved() || s.summaryVisible {
		s.mu.Unlock()
		return
	}

	if s.round.TimeRemaining > 1 {
		s.round.TimeRemaining--
		s.countdown = s.scheduler.AfterFunc(TickInterval, func() { s.handleTick(gen) })
		snap := s.snapshotLocked()
		s.mu.Unlock()

		s.notify(snap)
		return
	}

	// Countdown expired without an answer: counts as wrong exactly once
	s.round.TimeRemaining = 0
	log.Printf("quiz: round %s timed out with number %d", s.round.ID, s.round.Number)
	s.resolveLocked(false)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// handleAdvance starts the next round after the post-resolution pause
func (s *Service) handleAdvance(gen uint64) {
	s.mu.Lock()
	if gen != s.generation || s.summaryVisible {
		s.mu.Unlock()
		return
	}
	s.startRoundLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// resolveLocked transitions the current round to its terminal answer state,
// updates the tally, and either opens the summary dialog or schedules the
// next round. Caller holds the mutex.
func (s *Service) resolveLocked(correct bool) {
	if correct {
		s.round.Answer = model.AnswerCorrect
	} else {
		s.round.Answer = model.AnswerIncorrect
	}
	s.round.ResolvedAt = time.Now()
	s.tally.Record(correct)

	// Retire the round's countdown; a firing already in flight sees a stale
	// generation and does nothing
	s.stopTimersLocked()
	s.generation++

	if s.tally.SummaryDue(s.opts.SummaryInterval) {
		log.Printf("quiz: summary due at %d attempts (%d correct, %d wrong)",
			s.tally.TotalAttempts, s.tally.CorrectCount, s.tally.WrongCount)
		s.summaryVisible = true
		return
	}

	gen := s.generation
	s.advance = s.scheduler.AfterFunc(s.opts.AdvanceDelay, func() { s.handleAdvance(gen) })
}

// startRoundLocked replaces the current round with a fresh one and arms its
// countdown. Every new round always starts its own countdown; the generation
// bump retires whatever was pending. Caller holds the mutex.
func (s *Service) startRoundLocked() {
	s.stopTimersLocked()
	s.generation++
	gen := s.generation

	number := MinNumber + s.rng.Intn(MaxNumber-MinNumber+1)
	s.round = &model.Round{
		ID:            "round-" + uuid.NewString(),
		Number:        number,
		Answer:        model.AnswerUnanswered,
		TimeRemaining: s.opts.CountdownSeconds,
		StartedAt:     time.Now(),
	}
	s.countdown = s.scheduler.AfterFunc(TickInterval, func() { s.handleTick(gen) })

	log.Printf("quiz: round %s started with number %d", s.round.ID, number)
}

// stopTimersLocked cancels any outstanding countdown and advance callbacks.
// Caller holds the mutex.
func (s *Service) stopTimersLocked() {
	if s.countdown != nil {
		s.countdown.Stop()
		s.countdown = nil
	}
	if s.advance != nil {
		s.advance.Stop()
		s.advance = nil
	}
}

// snapshotLocked builds a state snapshot. Caller holds the mutex.
func (s *Service) snapshotLocked() Snapshot {
	snap := Snapshot{
		CorrectCount:   s.tally.CorrectCount,
		WrongCount:     s.tally.WrongCount,
		TotalAttempts:  s.tally.TotalAttempts,
		Accuracy:       s.tally.Accuracy(),
		SummaryVisible: s.summaryVisible,
	}
	if s.round != nil {
		snap.RoundID = s.round.ID
		snap.Number = s.round.Number
		snap.TimeRemaining = s.round.TimeRemaining
		snap.Answer = s.round.Answer
		snap.NumberIsPrime = IsPrime(s.round.Number)
	}
	return snap
}

// notify calls the update callback if set
func (s *Service) notify(snap Snapshot) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(snap)
	}
}
