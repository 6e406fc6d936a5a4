// Package wire assembles the application's collaborators.
package wire

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/mithrel/leaguenote/internal/config"
	"github.com/mithrel/leaguenote/internal/vault"
)

// App aggregates the major services for easy injection.
type App struct {
	Cfg   *viper.Viper
	Log   *logrus.Logger
	Vault *vault.Vault
	Now   func() time.Time
}

// BuildApp wires dependencies with the provided config.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if os.Getenv("LEAGUENOTE_DEBUG") != "" {
		log.SetLevel(logrus.DebugLevel)
	}

	return &App{
		Cfg:   v,
		Log:   log,
		Vault: vault.New(config.ResolveNotesDir(v)),
		Now:   time.Now,
	}, nil
}
