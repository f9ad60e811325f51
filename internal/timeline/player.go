package timeline

import "toonscroll/internal/input"

// Player hands out cues as time advances.
type Player struct {
	tl   *Timeline
	next int
}

// NewPlayer starts at the beginning of tl.
func NewPlayer(tl *Timeline) *Player {
	return &Player{tl: tl}
}

// Until returns every cue not yet played with At <= t, in order.
func (p *Player) Until(t float64) []input.Event {
	var out []input.Event
	for p.next < len(p.tl.Cues) && p.tl.Cues[p.next].At <= t {
		out = append(out, p.tl.Cues[p.next].Event)
		p.next++
	}
	return out
}

// Done reports whether every cue has been played.
func (p *Player) Done() bool {
	return p.next >= len(p.tl.Cues)
}
