package addrpool

import (
	"math/big"
	"net/netip"

	"go4.org/netipx"
)

// Adapter slices pools. Results are pools whose ranges follow the selected
// order, so reversed or strided slices stay pools.
type Adapter struct{}

func (Adapter) Len(p Pool) int              { return p.Len() }
func (Adapter) At(p Pool, i int) netip.Addr { return p.At(i) }
func (Adapter) Empty(Pool) Pool             { return Pool{} }

func (Adapter) NewFrom(p Pool, positions []int) Pool {
	addrs := make([]netip.Addr, len(positions))
	for j, pos := range positions {
		addrs[j] = p.At(pos)
	}
	return fromAddrs(addrs)
}

// CopyRange cuts the ranges covering [begin, finish) without enumerating
// the addresses in between.
func (Adapter) CopyRange(p Pool, begin, finish int) Pool {
	if finish <= begin {
		return Pool{}
	}
	ranges := make([]netipx.IPRange, 0, len(p.ranges))
	offset := 0
	for _, rng := range p.ranges {
		n := int(numIPs(rng.From(), rng.To()).Int64())
		lo, hi := max(begin, offset), min(finish, offset+n)
		if lo < hi {
			from := calculateIPFromIndex(rng.From(), big.NewInt(int64(lo-offset)))
			to := calculateIPFromIndex(rng.From(), big.NewInt(int64(hi-1-offset)))
			ranges = appendRange(ranges, netipx.IPRangeFrom(from, to))
		}
		offset += n
		if offset >= finish {
			break
		}
	}
	return Pool{ranges: ranges, size: finish - begin}
}
