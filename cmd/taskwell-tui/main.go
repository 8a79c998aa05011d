// ABOUTME: Terminal client for the taskwell task server
// ABOUTME: Loads the client config and starts the Bubble Tea app

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskwell/taskwell/internal/client"
	"github.com/taskwell/taskwell/internal/session"
	"github.com/taskwell/taskwell/internal/tui"
)

// clientConfig is the optional TOML config at ~/.config/taskwell/client.toml.
type clientConfig struct {
	Server string `toml:"server"`
}

// getConfigPath returns the path to the client config file.
// Priority: TASKWELL_CLIENT_CONFIG env var > XDG_CONFIG_HOME/taskwell/client.toml > ~/.config/taskwell/client.toml
func getConfigPath() string {
	if envPath := os.Getenv("TASKWELL_CLIENT_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "client.toml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "taskwell", "client.toml")
}

// loadClientConfig reads the TOML config if it exists. A missing file is
// fine, flags and defaults cover everything it holds.
func loadClientConfig(path string) (clientConfig, error) {
	var cfg clientConfig
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

func main() {
	server := flag.String("server", "", "Task server URL (overrides config file)")
	flag.Parse()

	cfg, err := loadClientConfig(getConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	serverURL := cfg.Server
	if *server != "" {
		serverURL = *server
	}
	if serverURL == "" {
		serverURL = "http://localhost:3001"
	}

	api := client.New(serverURL)
	provider := session.NewProvider(api)

	p := tea.NewProgram(tui.NewApp(provider, api), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
