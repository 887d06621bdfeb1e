package probe

import (
	"context"
	"net"
	"strconv"
	"time"

	psnet "github.com/shirou/gopsutil/v4/net"
	"golang.org/x/sync/errgroup"
)

type (
	// Result describes what the local host looks like from the port's point
	// of view. A firewall rule for a port nobody listens on is not wrong,
	// but the operator probably wants to know.
	Result struct {
		Port      uint
		Listening bool
		PID       int32
		Reachable bool
	}
)

var dialTimeout = 2 * time.Second

// Port inspects the given TCP port: whether a local process is listening on
// it, and whether a loopback dial actually connects. The two checks run
// concurrently. A failed dial is a finding, not an error.
func Port(ctx context.Context, port uint) (*Result, error) {
	result := &Result{Port: port}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		conns, err := psnet.ConnectionsWithContext(ctx, "tcp")
		if err != nil {
			return err
		}
		for _, next := range conns {
			if next.Status == "LISTEN" && uint(next.Laddr.Port) == port {
				result.Listening = true
				result.PID = next.Pid
			}
		}
		return nil
	})
	g.Go(func() error {
		dialer := net.Dialer{Timeout: dialTimeout}
		conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(int(port))))
		if err == nil {
			result.Reachable = true
			_ = conn.Close()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
