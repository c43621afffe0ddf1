package ipc

import (
	"time"

	"github.com/matjam/dvdlogo/internal/motion"
	"github.com/matjam/dvdlogo/internal/screensaver"
)

// Controller is the part of the screensaver the socket server talks to.
type Controller interface {
	Snapshot() screensaver.Snapshot
	Enqueue(screensaver.Command) bool
}

type StatusResponse struct {
	Status   string        `json:"status"`
	Message  string        `json:"message"`
	Version  string        `json:"version"`
	PID      int           `json:"pid"`
	Socket   string        `json:"socket"`
	Config   string        `json:"config"`
	Running  bool          `json:"running"`
	Uptime   string        `json:"uptime"`
	Ticks    uint64        `json:"ticks"`
	Bounces  uint64        `json:"bounces"`
	Position motion.Vector `json:"position"`
	Velocity motion.Vector `json:"velocity"`
	Size     motion.Size   `json:"size"`
	Window   motion.Bounds `json:"window"`
	Tint     string        `json:"tint"`
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func uptime(started time.Time) string {
	if started.IsZero() {
		return "0s"
	}
	return time.Since(started).Truncate(time.Second).String()
}
