package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/blankenberg/ephemeris/internal/config"
	"github.com/blankenberg/ephemeris/internal/galaxy"
)

// defaultGalaxyURL используется, когда --galaxy не задан.
const defaultGalaxyURL = "http://localhost"

// Options — общие флаги всех команд.
type Options struct {
	// GalaxyURL — адрес инстанса Galaxy.
	GalaxyURL string

	// APIKey — ключ Galaxy API. Если пуст, ключ запрашивается
	// через baseauth по User/Password.
	APIKey string

	// User и Password — учётные данные для baseauth.
	User     string
	Password string

	// ConfigPath — путь к YAML-файлу с data managers.
	ConfigPath string

	// Overwrite отключает проверку идемпотентности.
	Overwrite bool

	// IgnoreErrors продолжает выполнение после упавших jobs.
	IgnoreErrors bool

	// JSONOutput выводит сводку в JSON вместо таблицы.
	JSONOutput bool

	// Verbose включает debug-логирование.
	Verbose bool

	// MetricsAddr — адрес для /metrics и /healthz (пусто — выключено).
	MetricsAddr string
}

// loadConfig читает и валидирует конфигурацию.
func (o *Options) loadConfig() (*config.Config, error) {
	if o.ConfigPath == "" {
		return nil, errors.New("path to config file is required (--config)")
	}
	return config.Load(o.ConfigPath)
}

// connect создаёт клиент Galaxy и проверяет доступность инстанса.
//
// При пустом --api-key ключ запрашивается через baseauth. Запрос
// списка геномов служит проверкой соединения и ключа до того, как
// будет отправлен первый job.
func (o *Options) connect(ctx context.Context, logger *slog.Logger) (*galaxy.Client, error) {
	apiKey := o.APIKey
	if apiKey == "" {
		if o.User == "" || o.Password == "" {
			return nil, errors.New("either --api-key or --user and --password are required")
		}

		key, err := galaxy.Authenticate(ctx, o.GalaxyURL, o.User, o.Password)
		if err != nil {
			return nil, fmt.Errorf("authenticate with %s: %w", o.GalaxyURL, err)
		}
		apiKey = key
	}

	client := galaxy.NewClient(o.GalaxyURL, apiKey)

	genomes, err := client.Genomes(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", o.GalaxyURL, err)
	}
	logger.Info("connected to galaxy instance",
		"url", o.GalaxyURL,
		"genomes", len(genomes),
	)

	return client, nil
}
