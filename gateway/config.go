package gateway

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/gstoney/mcwire"
)

// EnvPrefix prefixes every environment variable that overrides the file.
const EnvPrefix = "MCWIRE_"

var ErrMissingInstance = errors.New("instance_id is required")

// Config configures a gateway in front of one EC2-hosted server.
type Config struct {
	Listen     string `toml:"listen"`
	InstanceID string `toml:"instance_id"`
	Region     string `toml:"region"`
	LogLevel   string `toml:"log_level"`

	MOTD       string `toml:"motd"`
	MaxPlayers int    `toml:"max_players"`
	// StartingMessage is shown to a player whose login woke the server.
	StartingMessage string `toml:"starting_message"`

	// StatusTimeout bounds each instance state query, in seconds.
	StatusTimeout int `toml:"status_timeout"`

	Transport mcwire.TransportConfig `toml:"transport"`
}

func DefaultConfig() Config {
	return Config{
		Listen:          ":25565",
		LogLevel:        "info",
		MOTD:            "A sleeping Minecraft server",
		MaxPlayers:      20,
		StartingMessage: "The server is starting, try again in a minute.",
		StatusTimeout:   3,
		Transport:       mcwire.DefaultTransportConfig(),
	}
}

// LoadConfig reads path over the defaults, then loads a .env file from the
// working directory if one exists, then applies MCWIRE_* variables. An empty
// path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("config .env: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	if cfg.InstanceID == "" {
		return cfg, ErrMissingInstance
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	strs := map[string]*string{
		"LISTEN":           &cfg.Listen,
		"INSTANCE_ID":      &cfg.InstanceID,
		"REGION":           &cfg.Region,
		"LOG_LEVEL":        &cfg.LogLevel,
		"MOTD":             &cfg.MOTD,
		"STARTING_MESSAGE": &cfg.StartingMessage,
	}
	for name, dst := range strs {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"MAX_PLAYERS":    &cfg.MaxPlayers,
		"STATUS_TIMEOUT": &cfg.StatusTimeout,
	}
	for name, dst := range ints {
		v, ok := os.LookupEnv(EnvPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
		*dst = n
	}
	return nil
}
