package model

// Package model defines domain data structures shared across the app: overlay
// window states, screen points and window snapshots. State transitions are
// explicit so the controller can reject anything leaving the Closed state.
