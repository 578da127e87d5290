package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"

	"go.lsp.dev/jsonrpc2"

	"github.com/ps2tools/go-pnach/debug"
	"github.com/ps2tools/go-pnach/identity"
)

// Server is the service side of the lookup protocol, answering
// identity.lookup against a resolver. It exists so collections can
// share one identity table over the network.
type Server struct {
	resolver *identity.Resolver
}

func NewServer(r *identity.Resolver) *Server {
	return &Server{resolver: r}
}

// Serve accepts connections until ctx is done or the listener fails.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		ln.Close()
	}()
	for {
		nc, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("lookup accept: %w", err)
		}
		s.ServeConn(ctx, nc)
	}
}

// ServeConn serves one connection; it returns without waiting for the
// connection to finish.
func (s *Server) ServeConn(ctx context.Context, rwc io.ReadWriteCloser) jsonrpc2.Conn {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	conn.Go(ctx, s.handle)
	return conn
}

func (s *Server) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	if req.Method() != lookupMethod {
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
	params := lookupParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, fmt.Errorf("%w: %s", jsonrpc2.ErrParse, err))
	}
	p := identity.Partial{Title: params.Title, Serial: params.Serial, CRC: params.CRC}
	res := s.resolver.Resolve(ctx, p)
	if debug.Lookup() {
		debug.Logf("lookup serve %+v: %s\n", p, res.Status)
	}
	out := lookupResult{}
	if res.Status == identity.StatusResolved {
		out.Found = true
		out.Identity = res.Identity
	}
	return reply(ctx, out, nil)
}
