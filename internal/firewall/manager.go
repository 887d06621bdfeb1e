package firewall

import "chamadosfw/internal/types"

const (
	tableName = "chamadosfw"
	chainName = "chamadosfw_input"
)

type (
	// Manager programs the host firewall so that it matches a rule managed
	// by this tool. Apply is idempotent; Revoke undoes a previously applied
	// rule (used when an update moves an existing rule to a new port).
	Manager interface {
		Apply(rule *types.Rule) error
		Revoke(rule *types.Rule) error
	}
)
