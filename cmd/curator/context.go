package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"curator/internal/config"
	"curator/internal/curation"
	"curator/internal/history"
	"curator/internal/logging"
	"curator/internal/themes"
)

type commandContext struct {
	configFlag *string
	jsonFlag   *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		jsonFlag:   jsonFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

func (c *commandContext) openStore() (*history.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return history.Open(cfg)
}

func (c *commandContext) newCurator(store *history.Store) (*curation.Curator, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return curation.New(cfg, store, logger)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// suggestThemes returns up to three theme slugs close to the requested name,
// best match first.
func suggestThemes(dir, requested string) []string {
	names, err := themes.Names(dir)
	if err != nil || len(names) == 0 {
		return nil
	}
	matches := fuzzy.Find(strings.ToLower(strings.TrimSpace(requested)), names)
	suggestions := make([]string, 0, 3)
	for _, match := range matches {
		if match.Index < 0 || match.Index >= len(names) {
			continue
		}
		suggestions = append(suggestions, names[match.Index])
		if len(suggestions) == 3 {
			break
		}
	}
	return suggestions
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
