// Package setup registers the care guide MCP server with desktop MCP clients.
package setup

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/goccy/go-json"
)

// ServerName is the entry name used in the client configuration.
const ServerName = "senior-care-guide"

// BinaryName is the stdio MCP server binary.
const BinaryName = "mcp-server"

// ClientConfig is the desktop client's configuration file. Only the
// mcpServers section is interpreted; everything else is carried through.
type ClientConfig struct {
	MCPServers map[string]ServerEntry `json:"mcpServers"`
	other      map[string]json.RawMessage
}

// ServerEntry is one MCP server launched by the client.
type ServerEntry struct {
	Command string            `json:"command"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// Options controls Register.
type Options struct {
	BinaryPath string // empty means search the usual locations
	DataDir    string
	Language   string
}

// Status is what `setup status` reports.
type Status struct {
	ConfigPath   string `json:"config_path"`
	Registered   bool   `json:"registered"`
	BinaryPath   string `json:"binary_path,omitempty"`
	BinaryExists bool   `json:"binary_exists"`
	DataDir      string `json:"data_dir,omitempty"`
}

// ClientConfigPath returns the path of the desktop client's config file.
func ClientConfigPath() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support", "Claude")
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			configDir = filepath.Join(xdg, "Claude")
			break
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config", "Claude")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", errors.New("APPDATA environment variable not set")
		}
		configDir = filepath.Join(appData, "Claude")
	default:
		return "", fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return filepath.Join(configDir, "claude_desktop_config.json"), nil
}

// LoadClientConfig reads the config file. A missing file is an empty config.
func LoadClientConfig(path string) (*ClientConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &ClientConfig{MCPServers: map[string]ServerEntry{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := &ClientConfig{MCPServers: map[string]ServerEntry{}}
	if servers, ok := raw["mcpServers"]; ok {
		if err := json.Unmarshal(servers, &cfg.MCPServers); err != nil {
			return nil, fmt.Errorf("failed to parse mcpServers: %w", err)
		}
		delete(raw, "mcpServers")
	}
	if cfg.MCPServers == nil {
		cfg.MCPServers = map[string]ServerEntry{}
	}
	cfg.other = raw

	return cfg, nil
}

// SaveClientConfig writes the config file, creating its directory.
func SaveClientConfig(path string, cfg *ClientConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	out := make(map[string]any, len(cfg.other)+1)
	for k, v := range cfg.other {
		out[k] = v
	}
	out["mcpServers"] = cfg.MCPServers

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Register adds or replaces the care guide entry in the config at path.
func Register(path string, opts Options) (ServerEntry, error) {
	binary := opts.BinaryPath
	if binary == "" {
		found, err := FindBinary()
		if err != nil {
			return ServerEntry{}, fmt.Errorf("could not find server binary: %w", err)
		}
		binary = found
	}

	cfg, err := LoadClientConfig(path)
	if err != nil {
		return ServerEntry{}, err
	}

	entry := ServerEntry{Command: binary, Env: map[string]string{}}
	if opts.DataDir != "" {
		entry.Env["SCG_DATA_DIR"] = opts.DataDir
	}
	if opts.Language != "" {
		entry.Env["SCG_LANG"] = opts.Language
	}
	if len(entry.Env) == 0 {
		entry.Env = nil
	}

	cfg.MCPServers[ServerName] = entry
	if err := SaveClientConfig(path, cfg); err != nil {
		return ServerEntry{}, err
	}
	return entry, nil
}

// Unregister removes the care guide entry. It reports whether one existed.
func Unregister(path string) (bool, error) {
	cfg, err := LoadClientConfig(path)
	if err != nil {
		return false, err
	}
	if _, ok := cfg.MCPServers[ServerName]; !ok {
		return false, nil
	}
	delete(cfg.MCPServers, ServerName)
	return true, SaveClientConfig(path, cfg)
}

// GetStatus inspects the config at path.
func GetStatus(path string) (*Status, error) {
	cfg, err := LoadClientConfig(path)
	if err != nil {
		return nil, err
	}

	status := &Status{ConfigPath: path}
	entry, ok := cfg.MCPServers[ServerName]
	if !ok {
		return status, nil
	}

	status.Registered = true
	status.BinaryPath = entry.Command
	status.DataDir = entry.Env["SCG_DATA_DIR"]
	if _, err := os.Stat(entry.Command); err == nil {
		status.BinaryExists = true
	}
	return status, nil
}

// FindBinary looks for the MCP server binary on PATH and in common locations.
func FindBinary() (string, error) {
	if path, err := exec.LookPath(BinaryName); err == nil {
		return path, nil
	}

	locations := []string{
		"./" + BinaryName,
		"./build/" + BinaryName,
		"./bin/" + BinaryName,
	}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, ".local", "bin", BinaryName))
	}
	locations = append(locations, "/usr/local/bin/"+BinaryName)

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			if abs, err := filepath.Abs(loc); err == nil {
				return abs, nil
			}
			return loc, nil
		}
	}

	return "", fmt.Errorf("binary %q not found in common locations", BinaryName)
}
