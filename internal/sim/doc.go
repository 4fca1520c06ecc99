// Package sim drives the simulation frame by frame.
//
// A [Driver] owns no goroutines. Front ends call [Driver.Frame] from
// their own refresh loop (raylib's draw loop, a bubbletea tick) or hand
// [Driver.Run] a channel of frame timestamps. Input handlers mutate the
// shared [Scene] between frames on the same goroutine.
//
// Time is injectable through [Clock]; [ManualClock] makes every frame
// deterministic in tests and headless traces.
package sim
