package platform

// Package platform contains OS integration: GIF path checks, user directories,
// and native window positioning where the toolkit exposes a native handle.
