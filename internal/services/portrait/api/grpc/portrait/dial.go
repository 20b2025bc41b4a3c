package portrait

import (
	"context"
	"errors"
	"fmt"
	"log"

	platformgrpc "github.com/louisbranch/crewportrait/internal/platform/grpc"
	"github.com/louisbranch/crewportrait/internal/platform/timeouts"
	"google.golang.org/grpc"
)

// Dial connects to a portrait server at addr and waits for its
// PortraitService health check to report SERVING. The caller owns the
// returned connection.
func Dial(ctx context.Context, addr, locale string) (*Client, *grpc.ClientConn, error) {
	logf := func(format string, args ...any) {
		log.Printf("portrait %s", fmt.Sprintf(format, args...))
	}
	conn, err := platformgrpc.DialWithHealth(
		ctx,
		nil,
		addr,
		ServiceName,
		timeouts.GRPCDial,
		logf,
		platformgrpc.DefaultClientDialOptions()...,
	)
	if err != nil {
		var dialErr *platformgrpc.DialError
		if errors.As(err, &dialErr) && dialErr.Stage == platformgrpc.DialStageConnect {
			return nil, nil, fmt.Errorf("connect to portrait server at %s: %w", addr, dialErr.Err)
		}
		return nil, nil, fmt.Errorf("portrait server at %s: %w", addr, err)
	}
	return NewClient(conn, locale), conn, nil
}
