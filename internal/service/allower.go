package service

import (
	"context"
	"errors"

	"chamadosfw/internal/database"
	"chamadosfw/internal/firewall"
	"chamadosfw/internal/types"
	"chamadosfw/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type (
	// PortAllower guarantees an enabled inbound TCP allow rule exists for a
	// port, keyed by the rule display name. The operation is an idempotent
	// upsert: rules are created once and updated in place forever after,
	// never deleted.
	PortAllower interface {
		EnsurePortAccess(ctx context.Context, params types.EnsureParams) (*types.EnsureResult, error)
		ListRules(ctx context.Context) ([]*types.Rule, error)
	}

	portAllower struct {
		ruleRepository  database.RuleRepository
		firewallManager firewall.Manager
	}
)

func NewPortAllower(ruleRepo database.RuleRepository, fm firewall.Manager) PortAllower {
	return &portAllower{
		ruleRepository:  ruleRepo,
		firewallManager: fm,
	}
}

func (p *portAllower) EnsurePortAccess(ctx context.Context, params types.EnsureParams) (*types.EnsureResult, error) {
	if params.Port == 0 {
		params.Port = types.DefaultPort
	}
	if params.RuleName == "" {
		params.RuleName = types.DefaultRuleName
	}

	existing, err := p.ruleRepository.FindByName(ctx, params.RuleName)
	if err != nil && !errors.Is(err, types.ErrRuleNotFound) {
		return nil, err
	}

	if err == nil {
		return p.update(ctx, existing, params)
	}
	return p.create(ctx, params)
}

func (p *portAllower) update(ctx context.Context, rule *types.Rule, params types.EnsureParams) (*types.EnsureResult, error) {
	previousPort := rule.Port
	rule.Port = params.Port
	rule.Direction = types.DirectionInbound
	rule.Action = types.ActionAllow
	rule.Protocol = types.ProtocolTCP
	rule.Profiles = types.AllProfiles()
	rule.Enabled = true
	// Description stays whatever it was at creation time.

	if previousPort != params.Port {
		stale := *rule
		stale.Port = previousPort
		if err := p.firewallManager.Revoke(&stale); err != nil {
			return nil, err
		}
	}

	if err := p.firewallManager.Apply(rule); err != nil {
		return nil, err
	}
	if err := p.ruleRepository.Save(ctx, rule); err != nil {
		return nil, err
	}

	logger.Info("firewall rule updated",
		zap.String("rule", rule.DisplayName),
		zap.Uint("port", rule.Port))
	return &types.EnsureResult{Rule: rule, Outcome: types.EnsureOutcomeUpdated}, nil
}

func (p *portAllower) create(ctx context.Context, params types.EnsureParams) (*types.EnsureResult, error) {
	rule := &types.Rule{
		ID:          uuid.New(),
		DisplayName: params.RuleName,
		Port:        params.Port,
		Direction:   types.DirectionInbound,
		Action:      types.ActionAllow,
		Protocol:    types.ProtocolTCP,
		Profiles:    types.AllProfiles(),
		Description: types.DefaultRuleDescription,
		Enabled:     true,
	}

	if err := p.firewallManager.Apply(rule); err != nil {
		return nil, err
	}
	if err := p.ruleRepository.Save(ctx, rule); err != nil {
		return nil, err
	}

	logger.Info("firewall rule created",
		zap.String("rule", rule.DisplayName),
		zap.Uint("port", rule.Port))
	return &types.EnsureResult{Rule: rule, Outcome: types.EnsureOutcomeCreated}, nil
}

func (p *portAllower) ListRules(ctx context.Context) ([]*types.Rule, error) {
	return p.ruleRepository.FindAll(ctx)
}
