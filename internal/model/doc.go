package model

// Package model defines domain data structures used across the app: search
// results, page requests, the displayed gallery collection, and the selection
// and view state of the grid. Structures are designed for direct use from the
// UI and explicit state transitions.
