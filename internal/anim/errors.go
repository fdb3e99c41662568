package anim

import "errors"

var (
	// ErrMissingTarget is returned when a declaration supplies no targets
	// and no previous declaration recorded any.
	ErrMissingTarget = errors.New("anim: no targets given and none recorded by a previous declaration")

	// ErrInvalidTargetCount is returned by single-target transitions that
	// received zero or several targets.
	ErrInvalidTargetCount = errors.New("anim: transition requires exactly one target")

	// ErrUnknownStyle is returned for unrecognized lighting or move style
	// keywords.
	ErrUnknownStyle = errors.New("anim: unknown style")

	// ErrNoGeometry is returned when mesh erosion targets an object that
	// does not expose point-level geometry.
	ErrNoGeometry = errors.New("anim: target has no point geometry")
)
