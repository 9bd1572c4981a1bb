// Package controls is the control and state-synchronisation layer between a
// player.Engine and the widgets that present it.
//
// Every component reacts to UI input or to typed engine notifications and
// reflects the result into a render snapshot. Nothing here is safe for
// concurrent use: the UI goroutine makes every call, and the Scheduler must
// deliver timer callbacks on that same goroutine.
package controls
