//go:build linux

package firewall

import (
	"encoding/binary"
	"fmt"

	"chamadosfw/internal/types"

	"github.com/google/nftables"
	"github.com/google/nftables/expr"
	"golang.org/x/sys/unix"
)

type managerLinux struct {
	conn  *nftables.Conn
	table *nftables.Table
	chain *nftables.Chain
}

func NewManager() Manager {
	table := &nftables.Table{
		Name:   tableName,
		Family: nftables.TableFamilyIPv4,
	}
	chain := &nftables.Chain{
		Name:     chainName,
		Table:    table,
		Type:     nftables.ChainTypeFilter,
		Hooknum:  nftables.ChainHookInput,
		Priority: nftables.ChainPriorityFilter,
	}
	return &managerLinux{
		conn:  &nftables.Conn{},
		table: table,
		chain: chain,
	}
}

// Apply installs an accept rule for TCP traffic to rule.Port on the input
// hook. Applying the same rule twice leaves a single nftables rule in place.
func (m managerLinux) Apply(rule *types.Rule) error {
	portBytes := make([]byte, 2)
	binary.BigEndian.PutUint16(portBytes, uint16(rule.Port))

	m.conn.AddTable(m.table)
	m.conn.AddChain(m.chain)

	existing, err := m.conn.GetRules(m.table, m.chain)
	if err == nil && m.hasAcceptRuleForPort(existing, portBytes) {
		return nil
	}

	nftRule := &nftables.Rule{
		Table: m.table,
		Chain: m.chain,
		Exprs: []expr.Any{
			&expr.Meta{
				Key:      expr.MetaKeyL4PROTO,
				Register: 1,
			},
			&expr.Cmp{
				Op:       expr.CmpOpEq,
				Register: 1,
				Data:     []byte{unix.IPPROTO_TCP},
			},
			&expr.Payload{
				DestRegister: 1,
				Base:         expr.PayloadBaseTransportHeader,
				Offset:       2,
				Len:          2,
			},
			&expr.Cmp{
				Op:       expr.CmpOpEq,
				Register: 1,
				Data:     portBytes,
			},
			&expr.Verdict{Kind: expr.VerdictAccept},
		},
	}

	m.conn.AddRule(nftRule)
	if err := m.conn.Flush(); err != nil {
		return fmt.Errorf("failed to allow port %d: %w", rule.Port, err)
	}
	return nil
}

// Revoke removes the accept rules matching rule.Port. The rule registry, not
// nftables, owns the rule identity, so matching is by port bytes only.
func (m managerLinux) Revoke(rule *types.Rule) error {
	portBytes := make([]byte, 2)
	binary.BigEndian.PutUint16(portBytes, uint16(rule.Port))

	rules, err := m.conn.GetRules(m.table, m.chain)
	if err != nil {
		return fmt.Errorf("failed to retrieve rules: %w", err)
	}

	for _, next := range rules {
		for _, nextExpr := range next.Exprs {
			if cmp, ok := nextExpr.(*expr.Cmp); ok && len(cmp.Data) == 2 && cmp.Op == expr.CmpOpEq {
				if string(cmp.Data) == string(portBytes) {
					if err := m.conn.DelRule(next); err != nil {
						return err
					}
				}
			}
		}
	}

	if err := m.conn.Flush(); err != nil {
		return fmt.Errorf("failed to revoke access to port %d: %w", rule.Port, err)
	}
	return nil
}

func (m managerLinux) hasAcceptRuleForPort(rules []*nftables.Rule, portBytes []byte) bool {
	for _, next := range rules {
		for _, nextExpr := range next.Exprs {
			if cmp, ok := nextExpr.(*expr.Cmp); ok && len(cmp.Data) == 2 && cmp.Op == expr.CmpOpEq {
				if string(cmp.Data) == string(portBytes) {
					return true
				}
			}
		}
	}
	return false
}
