package ipc

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/matjam/dvdlogo"
	"github.com/matjam/dvdlogo/internal/screensaver"
	"github.com/spf13/viper"
)

// GET /status
func statusHandler(ctl Controller, socket string) echo.HandlerFunc {
	return func(c echo.Context) error {
		snap := ctl.Snapshot()

		message := "dvdlogo is running"
		if !snap.Running {
			message = "dvdlogo is not bouncing"
		}

		return c.JSONPretty(http.StatusOK, StatusResponse{
			Status:   "ok",
			Message:  message,
			Version:  strings.Trim(dvdlogo.Version, "\n\r "),
			PID:      os.Getpid(),
			Socket:   socket,
			Config:   viper.ConfigFileUsed(),
			Running:  snap.Running,
			Uptime:   uptime(snap.Started),
			Ticks:    snap.Ticks,
			Bounces:  snap.Bounces,
			Position: snap.Logo.Pos,
			Velocity: snap.Logo.Vel,
			Size:     snap.Logo.Size,
			Window:   snap.Window,
			Tint:     fmt.Sprintf("#%02x%02x%02x", snap.Tint.R, snap.Tint.G, snap.Tint.B),
		}, "  ")
	}
}

// POST /stop
func stopHandler(ctl Controller) echo.HandlerFunc {
	return enqueueHandler(ctl, screensaver.CommandStop)
}

// POST /recolor
func recolorHandler(ctl Controller) echo.HandlerFunc {
	return enqueueHandler(ctl, screensaver.CommandRecolor)
}

func enqueueHandler(ctl Controller, cmd screensaver.CommandType) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !ctl.Enqueue(screensaver.Command{Type: cmd}) {
			return c.JSON(http.StatusServiceUnavailable, Response{Status: "busy", Error: "command queue is full"})
		}
		return c.JSON(http.StatusOK, Response{Status: "ok"})
	}
}
