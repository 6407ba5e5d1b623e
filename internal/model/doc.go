package model

// Package model defines domain data structures used across the app: quiz
// rounds, the answer state enum, and the running score tally. Structures are
// designed for direct rendering in the UI and explicit state transitions.
