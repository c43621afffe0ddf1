package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/matjam/dvdlogo/internal/middleware"
)

// Server serves the control API over a unix socket.
type Server struct {
	e        *echo.Echo
	listener net.Listener
	sockPath string
}

// NewServer listens on sockPath, replacing a stale socket file if there is
// one.
func NewServer(ctl Controller, sockPath string) (*Server, error) {
	if _, err := os.Stat(sockPath); err == nil {
		_ = os.Remove(sockPath)
	}

	listener, err := net.Listen("unix", sockPath)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", sockPath, err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Listener = listener

	e.Use(middleware.CharmLog())

	RegisterRoutes(e, ctl, sockPath)

	return &Server{e: e, listener: listener, sockPath: sockPath}, nil
}

// Serve blocks until the server is shut down.
func (s *Server) Serve() error {
	log.Infof("Control socket listening on %s", s.sockPath)

	if err := s.e.StartServer(s.e.Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("socket server error: %w", err)
	}
	return nil
}

// Shutdown stops the server and removes the socket file.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.e.Shutdown(ctx)
	_ = s.listener.Close()
	if rmErr := os.Remove(s.sockPath); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
		log.Warnf("Failed to remove socket %s: %v", s.sockPath, rmErr)
	}
	return err
}

// Handler exposes the router, for tests.
func (s *Server) Handler() http.Handler {
	return s.e
}
