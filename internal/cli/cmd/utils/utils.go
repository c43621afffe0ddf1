package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/matjam/dvdlogo"
	"github.com/sevlyar/go-daemon"
	"github.com/tidwall/pretty"
)

func CanonicalPath(path string) string {
	if path == "" {
		return ""
	}

	if path == "~" {
		return os.Getenv("HOME")
	}

	if strings.HasPrefix(path, "~/") {
		homeDir := os.Getenv("HOME")
		return strings.Replace(path, "~", homeDir, 1)
	}

	return path
}

func PrintJSONColored(data interface{}) {
	j, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Errorf("Error marshalling JSON: %v", err)
		return
	}

	jPretty := pretty.Color(j, nil)
	log.Info(string(jPretty))
}

func ConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}

	return filepath.Join(configDir, "dvdlogo", "dvdlogo.toml")
}

func InstallDefaultConfig() {
	configPath := ConfigPath()

	if _, err := os.Stat(configPath); err == nil {
		log.Warnf("Config file already exists at %v", configPath)
		return
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		log.Fatalf("Error creating config directory: %v", err)
	}

	if err := os.WriteFile(configPath, []byte(dvdlogo.DefaultConfig), 0644); err != nil {
		log.Fatalf("Error writing config file: %v", err)
	}

	log.Infof("Installed default config file at %v", configPath)
}

// DataDir is where the daemon keeps its pid file and logs.
func DataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "dvdlogo")
}

// Daemonize re-executes the process detached from the terminal. In the
// parent it returns parent=true once the child has started; in the child it
// returns a func that removes the pid file.
func Daemonize() (release func(), parent bool) {
	if err := os.MkdirAll(DataDir(), 0755); err != nil {
		log.Fatalf("Error creating data directory: %v", err)
	}

	// the logo path is usually relative, so the child keeps our directory
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Error reading working directory: %v", err)
	}

	cntxt := &daemon.Context{
		PidFileName: filepath.Join(DataDir(), "dvdlogo.pid"),
		PidFilePerm: 0644,
		WorkDir:     wd,
		Umask:       027,
	}

	child, err := cntxt.Reborn()
	if err != nil {
		log.Fatalf("Unable to run in the background: %v", err)
	}
	if child != nil {
		log.Infof("dvdlogo started in the background with PID %d", child.Pid)
		return func() {}, true
	}

	return func() {
		if err := cntxt.Release(); err != nil {
			log.Warnf("Failed to release pid file: %v", err)
		}
	}, false
}
