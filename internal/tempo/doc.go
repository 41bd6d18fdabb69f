// Package tempo turns a stream of MIDI clock messages into BPM, jitter and
// stability readings.
//
// A clock master sends 24 Timing Clock messages per quarter note. The Tracker
// keeps the spacing between consecutive ticks in a fixed-size IntervalWindow
// and periodically reduces it to a Reading. Start and Stop clear the window.
package tempo
