package chart

import "github.com/san-kum/animchart/internal/playback"

// State is the playback state of a chart.
type State = playback.State

const (
	Stopped = playback.Stopped
	Playing = playback.Playing
	Paused  = playback.Paused
)
