package allow

import (
	"context"
	"errors"
	"testing"

	"chamadosfw/internal/config"
	"chamadosfw/internal/types"

	"github.com/stretchr/testify/assert"
)

type fakeAllower struct {
	received types.EnsureParams
	result   *types.EnsureResult
	err      error
}

func (f *fakeAllower) EnsurePortAccess(_ context.Context, params types.EnsureParams) (*types.EnsureResult, error) {
	f.received = params
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &types.EnsureResult{
		Rule:    &types.Rule{DisplayName: params.RuleName, Port: params.Port},
		Outcome: types.EnsureOutcomeCreated,
	}, nil
}

func (f *fakeAllower) ListRules(_ context.Context) ([]*types.Rule, error) {
	return nil, nil
}

func testConfig() config.Config {
	return config.Config{Port: types.DefaultPort, RuleName: types.DefaultRuleName}
}

func TestAllowCmd_Defaults(t *testing.T) {
	svc := &fakeAllower{}
	cmd := NewAllowCmd(svc, testConfig())
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	assert.Nil(t, err)
	assert.Equal(t, uint(8000), svc.received.Port)
	assert.Equal(t, "Programa Chamados HTTP", svc.received.RuleName)
}

func TestAllowCmd_Flags(t *testing.T) {
	svc := &fakeAllower{}
	cmd := NewAllowCmd(svc, testConfig())
	cmd.SetArgs([]string{"--port", "9000", "--rule-name", "Test Rule"})

	err := cmd.Execute()
	assert.Nil(t, err)
	assert.Equal(t, uint(9000), svc.received.Port)
	assert.Equal(t, "Test Rule", svc.received.RuleName)
}

func TestAllowCmd_PlatformErrorSurfaces(t *testing.T) {
	svc := &fakeAllower{err: errors.New("access is denied")}
	cmd := NewAllowCmd(svc, testConfig())
	cmd.SetArgs([]string{})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	assert.EqualError(t, err, "access is denied")
}
