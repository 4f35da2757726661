package repositories

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	domainrepos "copyfx/internal/domain/repositories"
	"copyfx/internal/domain/valueobjects"
)

// effectsFile is the YAML layout of EFFECTS_FILE:
//
//	effects:
//	  - name: blueprint
//	    prompt: Turn this image into an old cyanotype blueprint.
//	    suffix: blueprint
type effectsFile struct {
	Effects []effectEntry `yaml:"effects"`
}

type effectEntry struct {
	Name   string `yaml:"name"`
	Prompt string `yaml:"prompt"`
	Suffix string `yaml:"suffix"`
}

// LoadEffectsFile parses the effects declared in a YAML file.
func LoadEffectsFile(path string) ([]*valueobjects.Effect, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file effectsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	effects := make([]*valueobjects.Effect, 0, len(file.Effects))
	for i, entry := range file.Effects {
		effect, err := valueobjects.NewEffect(entry.Name, entry.Prompt, entry.Suffix)
		if err != nil {
			return nil, fmt.Errorf("%s: effect #%d: %w", path, i+1, err)
		}
		effects = append(effects, effect)
	}

	return effects, nil
}

// NewEffectRepository returns the builtin effects, overridden and extended by
// the effects declared in path when path is not empty.
func NewEffectRepository(ctx context.Context, path string) (domainrepos.EffectRepository, error) {
	repo := NewMemoryEffectRepository(valueobjects.BuiltinEffects()...)
	if path == "" {
		return repo, nil
	}

	extra, err := LoadEffectsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load effects: %w", err)
	}
	for _, effect := range extra {
		if err := repo.Save(ctx, effect); err != nil {
			return nil, fmt.Errorf("failed to register effect %q: %w", effect.Name(), err)
		}
	}

	return repo, nil
}
