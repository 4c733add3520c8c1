package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

type source int

const (
	sourceDefaults source = iota
	sourceJSON
	sourceEnv
	sourceFlags
)

// mergeOrder lists the sources from lowest to highest precedence.
var mergeOrder = []source{sourceDefaults, sourceJSON, sourceEnv, sourceFlags}

type configBuilder struct {
	configs map[source]*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make(map[source]*StructuredConfig, len(mergeOrder)),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, src := range mergeOrder {
		cfg, ok := b.configs[src]
		if !ok {
			continue
		}
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs[sourceDefaults] = defaultConfig()
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs[sourceEnv] = envCfg
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs[sourceFlags] = flagsCfg
	return b
}

// withJSON loads the JSON file named by the flags or, failing that, the
// environment.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, src := range []source{sourceFlags, sourceEnv} {
		if cfg, ok := b.configs[src]; ok && cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs[sourceJSON] = jsonCfg

	return b
}

func osArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}
