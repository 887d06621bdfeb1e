//go:build !linux && !windows

package firewall

import "chamadosfw/internal/types"

type noOpManager struct{}

func (n noOpManager) Apply(rule *types.Rule) error {
	return nil
}

func (n noOpManager) Revoke(rule *types.Rule) error {
	return nil
}

func NewManager() Manager {
	return &noOpManager{}
}
