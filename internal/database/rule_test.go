package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"chamadosfw/internal/types"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) RuleRepository {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "rules.db"))
	require.Nil(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	})
	return NewRuleRepository(db)
}

func TestRuleRepository_SaveAndFind(t *testing.T) {
	repo := newTestRepository(t)

	rule := &types.Rule{
		ID:          uuid.New(),
		DisplayName: "Test Rule",
		Port:        9000,
		Direction:   types.DirectionInbound,
		Action:      types.ActionAllow,
		Protocol:    types.ProtocolTCP,
		Profiles:    types.AllProfiles(),
		Description: types.DefaultRuleDescription,
		Enabled:     true,
	}
	require.Nil(t, repo.Save(context.Background(), rule))

	found, err := repo.FindByName(context.Background(), "Test Rule")
	assert.Nil(t, err)
	assert.Equal(t, rule.ID, found.ID)
	assert.Equal(t, uint(9000), found.Port)
	assert.Equal(t, types.AllProfiles(), found.Profiles)
	assert.True(t, found.Enabled)
}

func TestRuleRepository_FindByName_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	found, err := repo.FindByName(context.Background(), "missing")
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, types.ErrRuleNotFound))
}

func TestRuleRepository_SaveUpdatesInPlace(t *testing.T) {
	repo := newTestRepository(t)

	rule := &types.Rule{ID: uuid.New(), DisplayName: "Test Rule", Port: 1234, Profiles: types.AllProfiles()}
	require.Nil(t, repo.Save(context.Background(), rule))

	rule.Port = 9000
	rule.Enabled = true
	require.Nil(t, repo.Save(context.Background(), rule))

	found, err := repo.FindByName(context.Background(), "Test Rule")
	assert.Nil(t, err)
	assert.Equal(t, uint(9000), found.Port)
	assert.True(t, found.Enabled)

	all, err := repo.FindAll(context.Background())
	assert.Nil(t, err)
	assert.Len(t, all, 1)
}
