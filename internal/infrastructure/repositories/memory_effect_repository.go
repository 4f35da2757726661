package repositories

import (
	"context"
	"fmt"
	"sync"

	domainrepos "copyfx/internal/domain/repositories"
	"copyfx/internal/domain/valueobjects"
)

type MemoryEffectRepository struct {
	effects map[string]*valueobjects.Effect
	order   []string
	mu      sync.RWMutex
}

func NewMemoryEffectRepository(effects ...*valueobjects.Effect) domainrepos.EffectRepository {
	r := &MemoryEffectRepository{
		effects: make(map[string]*valueobjects.Effect),
	}
	for _, effect := range effects {
		r.put(effect)
	}
	return r
}

func (r *MemoryEffectRepository) Save(ctx context.Context, effect *valueobjects.Effect) error {
	if effect == nil {
		return fmt.Errorf("effect is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.put(effect)
	return nil
}

func (r *MemoryEffectRepository) FindByName(ctx context.Context, name string) (*valueobjects.Effect, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	effect, exists := r.effects[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domainrepos.ErrEffectNotFound, name)
	}

	return effect, nil
}

// List returns effects in registration order; an overridden effect keeps its
// original position.
func (r *MemoryEffectRepository) List(ctx context.Context) ([]*valueobjects.Effect, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	effects := make([]*valueobjects.Effect, 0, len(r.order))
	for _, name := range r.order {
		effects = append(effects, r.effects[name])
	}
	return effects, nil
}

func (r *MemoryEffectRepository) put(effect *valueobjects.Effect) {
	if _, exists := r.effects[effect.Name()]; !exists {
		r.order = append(r.order, effect.Name())
	}
	r.effects[effect.Name()] = effect
}
