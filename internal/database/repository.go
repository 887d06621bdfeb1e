package database

import (
	"context"

	"chamadosfw/internal/types"
)

type RuleRepository interface {
	Save(ctx context.Context, rule *types.Rule) error
	FindByName(ctx context.Context, displayName string) (*types.Rule, error)
	FindAll(ctx context.Context) ([]*types.Rule, error)
}
