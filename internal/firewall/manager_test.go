//go:build linux

package firewall

import (
	"os"
	"testing"

	"chamadosfw/internal/types"

	"github.com/google/nftables"
	"github.com/google/nftables/expr"
	"github.com/stretchr/testify/assert"
)

func TestApplyAndRevoke(t *testing.T) {
	if os.Geteuid() != 0 {
		t.Skip("requires root to program nftables")
		return
	}

	fm := NewManager()
	rule := &types.Rule{DisplayName: "Test Rule", Port: 8080}

	err := fm.Apply(rule)
	assert.Nil(t, err, "Expected no error while allowing port")

	// applying twice must not duplicate the nftables rule
	err = fm.Apply(rule)
	assert.Nil(t, err, "Expected no error while re-applying")

	table := &nftables.Table{
		Name:   tableName,
		Family: nftables.TableFamilyIPv4,
	}
	conn := &nftables.Conn{}
	chain := &nftables.Chain{
		Name:     chainName,
		Table:    table,
		Type:     nftables.ChainTypeFilter,
		Hooknum:  nftables.ChainHookInput,
		Priority: nftables.ChainPriorityFilter,
	}

	assert.Equal(t, 1, countRulesForPort(t, conn, table, chain), "Port 8080 should be allowed exactly once")

	err = fm.Revoke(rule)
	assert.Nil(t, err, "Expected no error while revoking")
	assert.Equal(t, 0, countRulesForPort(t, conn, table, chain), "Revoke should remove the rule")

	cleanup(conn, table)
}

func countRulesForPort(t *testing.T, conn *nftables.Conn, table *nftables.Table, chain *nftables.Chain) int {
	t.Helper()
	rules, err := conn.GetRules(table, chain)
	assert.Nil(t, err, "Expected no error while retrieving rules")

	count := 0
	for _, rule := range rules {
		for _, nExpr := range rule.Exprs {
			if cmp, ok := nExpr.(*expr.Cmp); ok && len(cmp.Data) == 2 {
				if cmp.Data[0] == 0x1f && cmp.Data[1] == 0x90 { // 8080 in hex
					count++
				}
			}
		}
	}
	return count
}

func cleanup(conn *nftables.Conn, table *nftables.Table) {
	conn.DelTable(table)
	_ = conn.Flush()
}
