// Package chart implements an animatable 2D line chart widget.
//
// A [Chart] owns an immutable [series.Series] and a [playback.Clock]. Each
// call to [Chart.Draw] reads the clock once, selects the samples whose time
// has been reached and hands a [RenderConfig] snapshot to a [Surface]. The
// chart never draws anything itself; terminal, image and GUI surfaces live in
// sibling packages.
//
// # Playback
//
//	Stopped --Start/Toggle--> Playing --Toggle--> Paused
//	Stopped --Seek(t)-------> Paused (at t)
//	Playing --end reached---> Stopped
//
// Start always restarts from the first sample. Stop returns to the stopped
// state from anywhere.
package chart
