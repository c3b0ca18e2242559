// Package tui hosts the games in a terminal with Bubble Tea: the per-game
// screen, the menu, the scoreboard and the SSH arcade.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives a game screen's frame loop. Seq names the screen the tick
// chain belongs to, so a chain outliving its screen dies out.
type TickMsg struct {
	At  time.Time
	Seq uint64
}

var tickSeq atomic.Uint64

func nextTickSeq() uint64 {
	return tickSeq.Add(1)
}

// tickCmd schedules the next tick at fps frames per second.
func tickCmd(fps int, seq uint64) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg{At: t, Seq: seq}
	})
}
