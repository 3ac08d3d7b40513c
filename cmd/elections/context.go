package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/TvBMcMaster/gsa-election-validation/internal/config"
	"github.com/TvBMcMaster/gsa-election-validation/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// newRunLogger builds the logger for one pipeline run, tagged with a fresh
// run id so interleaved log archives stay attributable.
func (c *commandContext) newRunLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: os.Stdout,
	})
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	return logger.With(logging.String("run_id", uuid.NewString()[:8])), nil
}
