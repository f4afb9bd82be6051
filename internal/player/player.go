// package player models audio playback as a pure state machine.
//
// No audio is decoded here: the machine tracks what SHOULD be playing and
// where, and the interface layer drives it with ticks and user input. Keeping
// it pure makes every transition testable without a sound device.
package player

import (
	"tunebox/internal/models"
)

// Status is the playback state.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusPlaying
	StatusPaused
	StatusEnded
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Player drives playback over an ordered queue of songs.
//
// Transitions: Idle → Loading → Playing ⇄ Paused → Ended. A track that ends
// auto-advances to the next one in queue order, wrapping at the end. Invalid
// transitions (pausing while idle, seeking with nothing loaded) are no-ops.
type Player struct {
	queue    []models.Song
	index    int
	status   Status
	position float64 // seconds into the current track
	duration float64 // seconds, known once the track is loaded
	volume   float64 // 0..1
	muted    bool
}

// New creates an idle Player over the given queue at full volume.
func New(queue []models.Song) *Player {
	return &Player{
		queue:  queue,
		status: StatusIdle,
		volume: 1.0,
	}
}

// SetQueue replaces the queue and resets the machine to idle.
func (p *Player) SetQueue(queue []models.Song) {
	p.queue = queue
	p.index = 0
	p.status = StatusIdle
	p.position = 0
	p.duration = 0
}

// Queue returns the current queue.
func (p *Player) Queue() []models.Song {
	return p.queue
}

// Current returns the song at the playhead, false when the queue is empty or
// nothing was selected yet.
func (p *Player) Current() (models.Song, bool) {
	if p.status == StatusIdle || len(p.queue) == 0 {
		return models.Song{}, false
	}
	return p.queue[p.index], true
}

// Status returns the playback state.
func (p *Player) Status() Status {
	return p.status
}

// Position returns seconds into the current track.
func (p *Player) Position() float64 {
	return p.position
}

// Duration returns the loaded track length in seconds, 0 while loading.
func (p *Player) Duration() float64 {
	return p.duration
}

// Select jumps the playhead to the song at i and starts loading it.
// Out-of-range indexes are ignored.
func (p *Player) Select(i int) {
	if i < 0 || i >= len(p.queue) {
		return
	}

	p.index = i
	p.status = StatusLoading
	p.position = 0
	p.duration = 0
}

// Loaded reports that the selected track's media is ready and starts playback.
// Only meaningful while loading.
func (p *Player) Loaded(duration float64) {
	if p.status != StatusLoading {
		return
	}
	if duration < 0 {
		duration = 0
	}

	p.duration = duration
	p.status = StatusPlaying
}

// Pause suspends playback. Only meaningful while playing.
func (p *Player) Pause() {
	if p.status == StatusPlaying {
		p.status = StatusPaused
	}
}

// Resume continues a paused track.
func (p *Player) Resume() {
	if p.status == StatusPaused {
		p.status = StatusPlaying
	}
}

// Toggle flips between playing and paused.
func (p *Player) Toggle() {
	switch p.status {
	case StatusPlaying:
		p.status = StatusPaused
	case StatusPaused:
		p.status = StatusPlaying
	}
}

// Tick advances the playhead by dt seconds of wall time. When the track runs
// out the machine passes through Ended and auto-advances to the next track.
func (p *Player) Tick(dt float64) {
	if p.status != StatusPlaying || dt <= 0 {
		return
	}

	p.position += dt
	if p.duration > 0 && p.position >= p.duration {
		p.finish()
	}
}

// finish marks the track Ended and advances with wrap-around.
func (p *Player) finish() {
	p.status = StatusEnded
	p.Next()
}

// Next moves to the following track, wrapping to the first after the last.
func (p *Player) Next() {
	if len(p.queue) == 0 {
		return
	}

	p.Select((p.index + 1) % len(p.queue))
}

// Prev moves to the preceding track, wrapping to the last before the first.
func (p *Player) Prev() {
	if len(p.queue) == 0 {
		return
	}

	p.Select((p.index - 1 + len(p.queue)) % len(p.queue))
}

// Seek moves the playhead, clamped to [0, duration]. A no-op with nothing
// loaded.
func (p *Player) Seek(position float64) {
	if p.status != StatusPlaying && p.status != StatusPaused {
		return
	}

	if position < 0 {
		position = 0
	}
	if position > p.duration {
		position = p.duration
	}

	p.position = position
}

// Volume returns the configured volume in [0, 1].
func (p *Player) Volume() float64 {
	return p.volume
}

// SetVolume clamps v to [0, 1]. Raising the volume from zero lifts the
// implicit mute, but never a mute set explicitly.
func (p *Player) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}

	p.volume = v
}

// ToggleMute flips the explicit mute, independent of the volume level.
func (p *Player) ToggleMute() {
	p.muted = !p.muted
}

// Muted reports whether output is silent: either muted explicitly or the
// volume sits at zero.
func (p *Player) Muted() bool {
	return p.muted || p.volume == 0
}
