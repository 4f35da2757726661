package valueobjects

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	PhotocopyEffectName = "photocopy"
	FaxEffectName       = "fax"
)

// Effect is a named instruction sent alongside an image, plus the suffix
// appended to the stem of every file it produces.
type Effect struct {
	name   string
	prompt string
	suffix string
}

func NewEffect(name, prompt, suffix string) (*Effect, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("effect name is required")
	}
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("effect %q: prompt is required", name)
	}
	if suffix == "" {
		suffix = name + "_effect"
	}
	if strings.ContainsAny(suffix, `/\`) {
		return nil, fmt.Errorf("effect %q: suffix must not contain path separators", name)
	}

	return &Effect{
		name:   name,
		prompt: prompt,
		suffix: suffix,
	}, nil
}

func (e *Effect) Name() string {
	return e.name
}

func (e *Effect) Prompt() string {
	return e.prompt
}

func (e *Effect) Suffix() string {
	return e.suffix
}

// WithSuffix returns a copy of the effect writing files under a different suffix.
func (e *Effect) WithSuffix(suffix string) *Effect {
	return &Effect{
		name:   e.name,
		prompt: e.prompt,
		suffix: suffix,
	}
}

// OutputName derives "<stem>_<suffix><ext>" from the base name of inputPath,
// keeping the original case of both stem and extension.
func (e *Effect) OutputName(inputPath string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return stem + "_" + e.suffix + ext
}

// BuiltinEffects returns fresh copies of the photocopy and fax effects.
func BuiltinEffects() []*Effect {
	return []*Effect{
		{name: PhotocopyEffectName, prompt: photocopyPrompt, suffix: "photocopy"},
		{name: FaxEffectName, prompt: faxPrompt, suffix: "fax_effect"},
	}
}
