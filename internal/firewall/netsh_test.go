package firewall

import (
	"testing"

	"chamadosfw/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestNetshAddArgs(t *testing.T) {
	rule := &types.Rule{
		DisplayName: "Programa Chamados HTTP",
		Port:        8000,
		Profiles:    types.AllProfiles(),
		Description: types.DefaultRuleDescription,
	}

	args := netshAddArgs(rule)
	assert.Equal(t, []string{
		"advfirewall", "firewall", "add", "rule",
		"name=Programa Chamados HTTP",
		"dir=in",
		"action=allow",
		"protocol=TCP",
		"localport=8000",
		"profile=domain,private,public",
		"enable=yes",
		"description=" + types.DefaultRuleDescription,
	}, args)
}

func TestNetshAddArgs_NoDescription(t *testing.T) {
	rule := &types.Rule{DisplayName: "Test Rule", Port: 9000}
	args := netshAddArgs(rule)
	for _, next := range args {
		assert.NotContains(t, next, "description=")
	}
}

func TestNetshSetArgs(t *testing.T) {
	rule := &types.Rule{
		DisplayName: "Test Rule",
		Port:        9000,
		Profiles:    types.AllProfiles(),
		Description: "left untouched on update",
	}

	args := netshSetArgs(rule)
	assert.Equal(t, []string{
		"advfirewall", "firewall", "set", "rule",
		"name=Test Rule",
		"new",
		"dir=in",
		"action=allow",
		"protocol=TCP",
		"localport=9000",
		"profile=domain,private,public",
		"enable=yes",
	}, args)
}

func TestNetshProfiles_DefaultsToAll(t *testing.T) {
	assert.Equal(t, "domain,private,public", netshProfiles(nil))
	assert.Equal(t, "private", netshProfiles(types.Profiles{types.ProfilePrivate}))
}
