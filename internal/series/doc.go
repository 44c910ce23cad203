// Package series holds the immutable, time-sorted sample data behind an
// animated line chart.
//
// A [Series] is built once from unordered (x, y, t) samples. It keeps three
// index-aligned slices: the points, their times and the cumulative axis
// bounds up to each point. [Series.IndexForTime] maps a playback time to the
// last visible sample and [Series.Window] returns the visible prefix.
//
// Nothing in a Series is mutated after [New] returns, so windows share the
// underlying storage.
package series
