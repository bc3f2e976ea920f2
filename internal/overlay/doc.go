package overlay

// Package overlay implements the overlay window controller: frame playback on a
// recurring per-window timer, drag-to-move, the lock flag and the Lock/Close
// context menu. The toolkit is reached only through Surface and Scheduler, and
// every controller method must be called from the UI event loop.
