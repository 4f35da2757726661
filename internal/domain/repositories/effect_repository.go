package repositories

import (
	"context"
	"errors"

	"copyfx/internal/domain/valueobjects"
)

var ErrEffectNotFound = errors.New("effect not found")

type EffectRepository interface {
	Save(ctx context.Context, effect *valueobjects.Effect) error
	FindByName(ctx context.Context, name string) (*valueobjects.Effect, error)
	List(ctx context.Context) ([]*valueobjects.Effect, error)
}
