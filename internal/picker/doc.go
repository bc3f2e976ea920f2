package picker

// Package picker implements the process-wide file picker loop: prompt for a GIF,
// open an overlay for it, prompt again, and stop once the user cancels.
