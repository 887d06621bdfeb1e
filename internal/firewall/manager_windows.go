//go:build windows

package firewall

import (
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"chamadosfw/internal/types"
)

type managerWindows struct{}

func NewManager() Manager {
	return &managerWindows{}
}

// Apply updates the named rule in place when it already exists, otherwise it
// creates it. Windows keys rules on the display name, so identity is handled
// natively here.
func (m managerWindows) Apply(rule *types.Rule) error {
	output, err := runNetsh(netshSetArgs(rule)...)
	if err == nil {
		return nil
	}
	if !isNoMatch(output) {
		return fmt.Errorf("netsh set rule failed: %w (output: %s)", err, output)
	}

	output, err = runNetsh(netshAddArgs(rule)...)
	if err != nil {
		return fmt.Errorf("netsh add rule failed: %w (output: %s)", err, output)
	}
	return nil
}

// Revoke is a no-op: the Windows firewall updates the named rule in place, so
// moving a rule to a new port never leaves a stale rule behind.
func (m managerWindows) Revoke(rule *types.Rule) error {
	return nil
}

func runNetsh(args ...string) (string, error) {
	cmd := exec.Command("netsh", args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func isNoMatch(output string) bool {
	return strings.Contains(output, "No rules match the specified criteria")
}
