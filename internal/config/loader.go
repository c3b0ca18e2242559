package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	gamesFile  = "games.yaml"
	serverFile = "server.yaml"

	envJWTSecret = "GAMEHUB_JWT_SECRET"
	envDB        = "GAMEHUB_DB"
)

// LoadGames loads engine tuning.
// Search order: customPath -> ~/.gamehub/configs/games.yaml -> ./configs/games.yaml -> embedded default
func LoadGames(customPath string) (Games, error) {
	return load(customPath, gamesFile, defaultGamesYAML, DefaultGames)
}

// LoadServer loads server settings and applies environment overrides.
// Search order: customPath -> ~/.gamehub/configs/server.yaml -> ./configs/server.yaml -> embedded default
func LoadServer(customPath string) (Server, error) {
	cfg, err := load(customPath, serverFile, defaultServerYAML, DefaultServer)
	if err != nil {
		return cfg, err
	}
	if v := os.Getenv(envJWTSecret); v != "" {
		cfg.API.JWTSecret = v
	}
	if v := os.Getenv(envDB); v != "" {
		cfg.DBPath = v
	}
	return cfg, nil
}

// load overlays the first readable YAML source onto the hardcoded defaults,
// so a file only needs the keys it changes.
func load[T any](customPath, filename string, embedded []byte, defaults func() T) (T, error) {
	cfg := defaults()

	// A custom path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := defaults()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gamehub", "configs", filename)
}

// DefaultDBPath returns ~/.gamehub/gamehub.db, or a relative file if home is unavailable.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "gamehub.db"
	}
	return filepath.Join(home, ".gamehub", "gamehub.db")
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ParsePreset validates a difficulty name from the command line.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
}
