// Package remote implements the identity.Lookup collaborator over
// JSON-RPC. The engine treats the service as one synchronous call per
// unresolved query; retry policy, rendering and caching all live on
// the server side.
package remote

import (
	"context"
	"fmt"
	"io"
	"net"

	"go.lsp.dev/jsonrpc2"

	"github.com/ps2tools/go-pnach/identity"
	"github.com/ps2tools/go-pnach/ir"
)

const lookupMethod = "identity.lookup"

type lookupParams struct {
	Title  string `json:"title,omitempty"`
	Serial string `json:"serial,omitempty"`
	CRC    string `json:"crc,omitempty"`
}

type lookupResult struct {
	Found    bool            `json:"found"`
	Identity ir.GameIdentity `json:"identity,omitempty"`
}

// Client is a JSON-RPC identity lookup client. Its Lookup method
// satisfies identity.Lookup.
type Client struct {
	conn jsonrpc2.Conn
}

// NewClient wraps an established transport. The caller owns rwc's
// lifetime; Close releases it.
func NewClient(ctx context.Context, rwc io.ReadWriteCloser) *Client {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	conn.Go(ctx, jsonrpc2.MethodNotFoundHandler)
	return &Client{conn: conn}
}

// Dial connects to a lookup service over TCP.
func Dial(ctx context.Context, addr string) (*Client, error) {
	var d net.Dialer
	nc, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("lookup dial %s: %w", addr, err)
	}
	return NewClient(ctx, nc), nil
}

// Lookup performs one identity.lookup call. A service answer of
// found=false maps to identity.ErrNotFound; transport errors pass
// through for the resolver to degrade.
func (c *Client) Lookup(ctx context.Context, p identity.Partial) (ir.GameIdentity, error) {
	params := lookupParams{Title: p.Title, Serial: p.Serial, CRC: p.CRC}
	res := lookupResult{}
	if _, err := c.conn.Call(ctx, lookupMethod, &params, &res); err != nil {
		return ir.GameIdentity{}, fmt.Errorf("lookup call: %w", err)
	}
	if !res.Found {
		return ir.GameIdentity{}, identity.ErrNotFound
	}
	return res.Identity, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}
