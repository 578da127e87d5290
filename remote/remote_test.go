package remote

import (
	"context"
	"errors"
	"testing"

	"net"

	"github.com/ps2tools/go-pnach/format"
	"github.com/ps2tools/go-pnach/identity"
	"github.com/ps2tools/go-pnach/ir"
)

func testPair(t *testing.T) (*Client, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	serverConn, clientConn := net.Pipe()
	table := identity.NewTable([]ir.GameIdentity{
		{Title: "Okami", Serial: "SLUS-21410", CRC: "594BFBF1", Region: format.RegionNTSCU},
	})
	srv := NewServer(&identity.Resolver{Table: table})
	srv.ServeConn(ctx, serverConn)
	client := NewClient(ctx, clientConn)
	t.Cleanup(func() {
		client.Close()
		cancel()
	})
	return client, cancel
}

func TestLookupFound(t *testing.T) {
	client, _ := testPair(t)
	id, err := client.Lookup(context.Background(), identity.Partial{Serial: "SLUS-21410"})
	if err != nil {
		t.Fatal(err)
	}
	want := ir.GameIdentity{Title: "Okami", Serial: "SLUS-21410", CRC: "594BFBF1", Region: format.RegionNTSCU}
	if id != want {
		t.Fatalf("got %+v want %+v", id, want)
	}
}

func TestLookupNotFound(t *testing.T) {
	client, _ := testPair(t)
	_, err := client.Lookup(context.Background(), identity.Partial{Serial: "SLUS-00000"})
	if !errors.Is(err, identity.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestLookupAfterClose(t *testing.T) {
	client, cancel := testPair(t)
	cancel()
	client.Close()
	if _, err := client.Lookup(context.Background(), identity.Partial{Serial: "SLUS-21410"}); err == nil {
		t.Fatal("lookup on a closed connection succeeded")
	}
}
