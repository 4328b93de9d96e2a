package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port      int
	DataDir   string
	NodesFile string
}

// ParseFlags validates flags and fills in defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("luxmon", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DataDir, "d", "", "Directory for per-node store files")
	fs.StringVar(&cfg.NodesFile, "n", "", "YAML node descriptor file (optional)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default, matches the port the fleet is flashed with
		}
	}

	if cfg.DataDir == "" {
		cfg.DataDir = os.Getenv("DATA_DIR")
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "databases"
	}

	if cfg.NodesFile == "" {
		cfg.NodesFile = os.Getenv("NODES_FILE")
	}

	return cfg, nil
}
