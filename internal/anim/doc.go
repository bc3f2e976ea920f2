package anim

// Package anim decodes animated GIF files into a sequence of fully composited
// frames with per-frame display delays. Frames are independent RGBA snapshots so
// the UI can swap them in without any knowledge of GIF disposal rules.
