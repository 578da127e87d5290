package identity

import (
	"context"
	"errors"
	"time"

	"github.com/ps2tools/go-pnach/debug"
	"github.com/ps2tools/go-pnach/format"
	"github.com/ps2tools/go-pnach/ir"
)

// ErrNotFound is the not-found outcome of a Lookup collaborator.
var ErrNotFound = errors.New("identity not found")

// Lookup is the optional external identity service: one synchronous
// call per unresolved query, no internal retries. Implementations
// return ErrNotFound when they have no answer; any other error is a
// transport failure, which the Resolver also degrades to not-found.
type Lookup func(ctx context.Context, p Partial) (ir.GameIdentity, error)

// Resolver resolves against the static table first and, only when the
// table misses, asks the optional Lookup. A nil Lookup means offline
// mode: table misses are simply NotFound, never errors.
type Resolver struct {
	Table   *Table
	Lookup  Lookup
	Timeout time.Duration // per-lookup deadline; zero means no extra deadline
}

// Resolve resolves p. The table path is pure and cheap; the Lookup
// path blocks for at most Timeout. Lookup failure of any kind (missing
// answer, transport error, timeout, cancellation) produces NotFound
// rather than propagating.
func (r *Resolver) Resolve(ctx context.Context, p Partial) Resolution {
	res := r.Table.Resolve(p)
	if res.Status != StatusNotFound || r.Lookup == nil {
		return res
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	id, err := r.Lookup(ctx, p)
	if err != nil {
		if debug.Lookup() {
			debug.Logf("lookup %+v failed: %v\n", p, err)
		}
		return Resolution{Status: StatusNotFound}
	}
	id.Serial = NormalizeSerial(id.Serial)
	id.CRC = NormalizeCRC(id.CRC)
	if id.Region == format.RegionUnknown && id.Serial != "" {
		id.Region = RegionFromSerial(id.Serial)
	}
	return Resolution{Status: StatusResolved, Identity: id}
}
