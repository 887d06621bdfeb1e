package firewall

import (
	"fmt"
	"strings"

	"chamadosfw/internal/types"

	"github.com/samber/lo"
)

// netsh advfirewall argument construction, kept free of build tags so the
// argument shape stays testable on every OS.

func netshAddArgs(rule *types.Rule) []string {
	args := []string{
		"advfirewall", "firewall", "add", "rule",
		fmt.Sprintf("name=%s", rule.DisplayName),
		"dir=in",
		"action=allow",
		"protocol=TCP",
		fmt.Sprintf("localport=%d", rule.Port),
		fmt.Sprintf("profile=%s", netshProfiles(rule.Profiles)),
		"enable=yes",
	}
	if rule.Description != "" {
		args = append(args, fmt.Sprintf("description=%s", rule.Description))
	}
	return args
}

func netshSetArgs(rule *types.Rule) []string {
	return []string{
		"advfirewall", "firewall", "set", "rule",
		fmt.Sprintf("name=%s", rule.DisplayName),
		"new",
		"dir=in",
		"action=allow",
		"protocol=TCP",
		fmt.Sprintf("localport=%d", rule.Port),
		fmt.Sprintf("profile=%s", netshProfiles(rule.Profiles)),
		"enable=yes",
	}
}

func netshProfiles(profiles types.Profiles) string {
	if len(profiles) == 0 {
		profiles = types.AllProfiles()
	}
	names := lo.Map(profiles, func(p types.Profile, _ int) string {
		return strings.ToLower(p.String())
	})
	return strings.Join(names, ",")
}
