package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/blankenberg/ephemeris/internal/domain"
)

// Config — загруженная конфигурация запуска.
type Config struct {
	// Genomes — глобальные reference-ключи, доступные при рендеринге
	// поля items каждого шага.
	Genomes domain.ReferenceKeys `yaml:"genomes"`

	// DataManagers — упорядоченный список шагов.
	// Порядок объявления — порядок выполнения.
	DataManagers []domain.Step `yaml:"data_managers"`
}

// Load читает, разбирает и валидирует конфигурацию из файла.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse разбирает YAML-содержимое конфигурации и валидирует его.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate выполняет полную валидацию конфигурации.
//
// Проверяет:
//   - Наличие хотя бы одного data manager'а
//   - Непустые id
//   - Формат params (one-entry maps, без дубликатов и пустых имён)
//   - Непустые имена таблиц в data_table_reload
func Validate(cfg *Config) error {
	if cfg == nil || len(cfg.DataManagers) == 0 {
		return ErrNoDataManagers
	}

	for i := range cfg.DataManagers {
		if err := validateStep(&cfg.DataManagers[i]); err != nil {
			return err
		}
	}
	return nil
}

// validateStep валидирует один data manager.
func validateStep(step *domain.Step) error {
	if step.ID == "" {
		return NewValidationError("", "id", "data manager has empty id", ErrEmptyManagerID)
	}

	seen := make(map[string]bool, len(step.Params))
	for i, param := range step.Params {
		if len(param) != 1 {
			return NewValidationError(step.ID, "params",
				fmt.Sprintf("entry %d has %d keys, expected 1", i, len(param)), ErrMultiKeyParam)
		}
		for name := range param {
			if name == "" {
				return NewValidationError(step.ID, "params",
					fmt.Sprintf("entry %d has empty name", i), ErrEmptyParamName)
			}
			if seen[name] {
				return NewValidationError(step.ID, "params",
					fmt.Sprintf("duplicate param: %s", name), ErrDuplicateParam)
			}
			seen[name] = true
		}
	}

	for i, table := range step.DataTables {
		if table == "" {
			return NewValidationError(step.ID, "data_table_reload",
				fmt.Sprintf("entry %d is empty", i), ErrEmptyTableName)
		}
	}

	return nil
}
