// Package log configure le logger zerolog partagé par les deux exécutables.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Config capture les options du logger global.
type Config struct {
	Level   string    // niveau optionnel ("debug", "info", ...)
	Output  io.Writer // destination (os.Stdout par défaut)
	JSON    bool      // true => sortie JSON brute au lieu de la console lisible
	Service string    // nom attaché à chaque entrée
}

var (
	once sync.Once
	base zerolog.Logger
)

// Configure initialise le logger global une seule fois.
func Configure(cfg Config) {
	once.Do(func() {
		base = newLogger(cfg)
	})
}

func newLogger(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	} else if env := os.Getenv("LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stdout
	}
	if !cfg.JSON {
		writer = zerolog.ConsoleWriter{
			Out:        writer,
			TimeFormat: time.TimeOnly,
		}
	}

	service := cfg.Service
	if service == "" {
		service = "recetario"
	}
	runID := uuid.NewString()

	return zerolog.New(writer).Level(level).With().
		Timestamp().
		Str("service", service).
		Str("run", runID[:8]).
		Logger()
}

func logger() zerolog.Logger {
	Configure(Config{})
	return base
}

// Base retourne le logger configuré.
func Base() zerolog.Logger {
	return logger()
}

// WithComponent retourne un logger enfant annoté avec le composant.
func WithComponent(component string) zerolog.Logger {
	return logger().With().Str("component", component).Logger()
}

// New construit un logger indépendant du logger global (tests, outils).
func New(cfg Config) zerolog.Logger {
	return newLogger(cfg)
}
