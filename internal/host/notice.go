package host

import "time"

// NoticeTTL is how long a notice stays visible.
const NoticeTTL = 2500 * time.Millisecond

// Notice is a transient message for the player.
type Notice struct {
	Text    string
	Err     bool
	Expires time.Time
}

// Active reports whether the notice should still be shown at now.
func (n Notice) Active(now time.Time) bool {
	return n.Text != "" && now.Before(n.Expires)
}
