package valueobjects

import (
	"strings"
	"testing"
)

func TestNewEffect(t *testing.T) {
	tests := []struct {
		name       string
		effectName string
		prompt     string
		suffix     string
		wantSuffix string
		wantErr    bool
	}{
		{name: "explicit suffix", effectName: "sepia", prompt: "make it sepia", suffix: "old", wantSuffix: "old"},
		{name: "default suffix", effectName: "sepia", prompt: "make it sepia", wantSuffix: "sepia_effect"},
		{name: "missing name", effectName: " ", prompt: "x", wantErr: true},
		{name: "missing prompt", effectName: "sepia", prompt: "", wantErr: true},
		{name: "path in suffix", effectName: "sepia", prompt: "x", suffix: "../x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			effect, err := NewEffect(tt.effectName, tt.prompt, tt.suffix)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewEffect() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && effect.Suffix() != tt.wantSuffix {
				t.Errorf("Suffix() = %q, want %q", effect.Suffix(), tt.wantSuffix)
			}
		})
	}
}

func TestEffect_OutputName(t *testing.T) {
	effects := map[string]*Effect{}
	for _, e := range BuiltinEffects() {
		effects[e.Name()] = e
	}

	tests := []struct {
		effect *Effect
		input  string
		want   string
	}{
		{effect: effects[FaxEffectName], input: "photo.JPG", want: "photo_fax_effect.JPG"},
		{effect: effects[FaxEffectName], input: "/in/scan.tiff", want: "scan_fax_effect.tiff"},
		{effect: effects[PhotocopyEffectName], input: "My Photo.Png", want: "My Photo_photocopy.Png"},
		{effect: effects[PhotocopyEffectName], input: "a.b.jpeg", want: "a.b_photocopy.jpeg"},
		{effect: effects[PhotocopyEffectName].WithSuffix("photocopy_effect"), input: "dir/cat.webp", want: "cat_photocopy_effect.webp"},
	}

	for _, tt := range tests {
		if got := tt.effect.OutputName(tt.input); got != tt.want {
			t.Errorf("OutputName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBuiltinEffects(t *testing.T) {
	effects := BuiltinEffects()
	if len(effects) != 2 {
		t.Fatalf("Expected 2 builtin effects, got %d", len(effects))
	}
	if !strings.Contains(effects[0].Prompt(), "photocopy") {
		t.Errorf("photocopy prompt looks wrong: %q", effects[0].Prompt())
	}
	if !strings.HasPrefix(effects[1].Prompt(), "Add realistic fax artifacts") {
		t.Errorf("fax prompt looks wrong: %q", effects[1].Prompt()[:40])
	}

	// WithSuffix must not mutate the shared value.
	effects[0].WithSuffix("other")
	if effects[0].Suffix() != "photocopy" {
		t.Errorf("WithSuffix mutated the original effect")
	}
}
