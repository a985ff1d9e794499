package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port          int
	DatabaseURL   string
	AdminUsername string
	AdminPassword string
	SessionTTL    time.Duration
	ClientOrigins []string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var ttl string
	var origins string

	fs := flag.NewFlagSet("spinwheel", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&origins, "client-origin", "", "Comma-separated CORS origins")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminUsername, "admin-user", "", "Admin username (prefer env)")
	fs.StringVar(&cfg.AdminPassword, "admin-password", "", "Admin password (prefer env)")
	fs.StringVar(&ttl, "session-ttl", "", "Admin session lifetime (e.g. 8h)")

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
			cfg.Port = 4000 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.AdminUsername == "" {
		cfg.AdminUsername = os.Getenv("ADMIN_USERNAME")
	}
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
	}

	if ttl == "" {
		ttl = os.Getenv("SESSION_TTL")
	}
	if ttl == "" {
		cfg.SessionTTL = 8 * time.Hour
	} else {
		d, err := time.ParseDuration(ttl)
		if err != nil || d <= 0 {
			return Config{}, errors.New("invalid SESSION_TTL (expect a positive duration like 8h)")
		}
		cfg.SessionTTL = d
	}

	if origins == "" {
		origins = os.Getenv("CLIENT_ORIGIN")
	}
	if origins == "" {
		origins = "http://localhost:5173"
	}
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.ClientOrigins = append(cfg.ClientOrigins, o)
		}
	}

	return cfg, nil
}

// UsingDefaultCredentials reports whether the admin account still runs on
// the built-in dev credentials.
func (c Config) UsingDefaultCredentials() bool {
	return c.AdminUsername == "admin" && c.AdminPassword == "admin123"
}
