package database

import (
	"context"
	"errors"

	"chamadosfw/internal/types"

	"gorm.io/gorm"
)

type ruleRepository struct {
	db *gorm.DB
}

func NewRuleRepository(db *gorm.DB) RuleRepository {
	return &ruleRepository{db: db}
}

func (r ruleRepository) Save(ctx context.Context, rule *types.Rule) error {
	return r.db.
		WithContext(ctx).
		Save(rule).Error
}

// FindByName returns types.ErrRuleNotFound when no rule carries the name.
// Any other error is a real lookup failure and is returned as-is.
func (r ruleRepository) FindByName(ctx context.Context, displayName string) (*types.Rule, error) {
	rule := &types.Rule{}
	err := r.db.WithContext(ctx).Where("display_name = ?", displayName).First(rule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, types.ErrRuleNotFound
	}
	if err != nil {
		return nil, err
	}
	return rule, nil
}

func (r ruleRepository) FindAll(ctx context.Context) ([]*types.Rule, error) {
	result := make([]*types.Rule, 0)
	err := r.db.WithContext(ctx).Order("created_at").Find(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}
