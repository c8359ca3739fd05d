// Package addrpool provides an address pool sequence kind: an ordered list of
// IP ranges viewed as one sequence of addresses, so pools can be sliced like
// any other sequence ("the last 8 addresses", "every 4th address").
package addrpool

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

// Pool is an immutable ordered list of address ranges. Ranges may overlap
// and need not be sorted; position i walks them in order.
type Pool struct {
	ranges []netipx.IPRange
	size   int
}

var maxSize = big.NewInt(math.MaxInt)

func New(ranges ...netipx.IPRange) (Pool, error) {
	var errm error
	total := new(big.Int)
	for _, r := range ranges {
		if !r.IsValid() {
			errm = errors.Join(errm, fmt.Errorf("ip range %s is invalid", r.String()))
			continue
		}
		total.Add(total, numIPs(r.From(), r.To()))
	}
	if errm != nil {
		return Pool{}, errm
	}
	if total.Cmp(maxSize) > 0 {
		return Pool{}, fmt.Errorf("pool of %s addresses exceeds the maximum of %d", total.String(), math.MaxInt)
	}
	return Pool{
		ranges: append([]netipx.IPRange(nil), ranges...),
		size:   int(total.Int64()),
	}, nil
}

// Parse builds a pool from ranges like "10.0.0.1-10.0.0.9".
func Parse(ranges ...string) (Pool, error) {
	var errm error
	parsed := make([]netipx.IPRange, 0, len(ranges))
	for _, s := range ranges {
		r, err := netipx.ParseIPRange(s)
		if err != nil {
			errm = errors.Join(errm, fmt.Errorf("ip range %q is invalid: %w", s, err))
			continue
		}
		parsed = append(parsed, r)
	}
	if errm != nil {
		return Pool{}, errm
	}
	return New(parsed...)
}

func (r Pool) Len() int {
	return r.size
}

// At returns the address at position i and panics if i is out of range.
func (r Pool) At(i int) netip.Addr {
	if i < 0 || i >= r.size {
		panic(fmt.Sprintf("addrpool: position %d out of range for pool of %d addresses", i, r.size))
	}
	offset := big.NewInt(int64(i))
	for _, rng := range r.ranges {
		n := numIPs(rng.From(), rng.To())
		if offset.Cmp(n) < 0 {
			return calculateIPFromIndex(rng.From(), offset)
		}
		offset.Sub(offset, n)
	}
	panic("addrpool: size out of sync with ranges")
}

func (r Pool) Ranges() []netipx.IPRange {
	return append([]netipx.IPRange(nil), r.ranges...)
}

func (r Pool) Addrs() []netip.Addr {
	addrs := make([]netip.Addr, 0, r.size)
	for _, rng := range r.ranges {
		for a := rng.From(); ; a = a.Next() {
			addrs = append(addrs, a)
			if a == rng.To() {
				break
			}
		}
	}
	return addrs
}

func (r Pool) String() string {
	s := make([]string, 0, len(r.ranges))
	for _, rng := range r.ranges {
		s = append(s, rng.String())
	}
	return strings.Join(s, ",")
}

// fromAddrs builds a pool from addrs in order, merging runs of consecutive
// ascending addresses into one range.
func fromAddrs(addrs []netip.Addr) Pool {
	var ranges []netipx.IPRange
	for _, a := range addrs {
		ranges = appendRange(ranges, netipx.IPRangeFrom(a, a))
	}
	return Pool{ranges: ranges, size: len(addrs)}
}

// appendRange appends rng, extending the last range instead when rng starts
// right after it.
func appendRange(ranges []netipx.IPRange, rng netipx.IPRange) []netipx.IPRange {
	if n := len(ranges); n > 0 {
		last := ranges[n-1]
		if next := last.To().Next(); next.IsValid() && next == rng.From() {
			ranges[n-1] = netipx.IPRangeFrom(last.From(), rng.To())
			return ranges
		}
	}
	return append(ranges, rng)
}

func numIPs(startIP, endIP netip.Addr) *big.Int {
	diff := new(big.Int).Sub(ipToInt(endIP), ipToInt(startIP))
	return diff.Add(diff, big.NewInt(1))
}

func ipToInt(ip netip.Addr) *big.Int {
	bytes := ip.As16()
	return new(big.Int).SetBytes(bytes[:])
}

func calculateIPFromIndex(startIP netip.Addr, offset *big.Int) netip.Addr {
	ipInt := new(big.Int).Add(ipToInt(startIP), offset)

	var ip16 [16]byte
	ipInt.FillBytes(ip16[:])

	if startIP.Is4() {
		return netip.AddrFrom4(netip.AddrFrom16(ip16).As4())
	}
	return netip.AddrFrom16(ip16)
}
