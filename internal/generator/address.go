package generator

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"strings"
)

const (
	publicProbability = 0.7
	ipv6Prefix        = "2001:db8:"
	ipv6Groups        = 6
)

var (
	// documentation ranges from RFC 5737
	publicBlocks = []netip.Prefix{
		netip.MustParsePrefix("203.0.113.0/24"),
		netip.MustParsePrefix("198.51.100.0/24"),
		netip.MustParsePrefix("192.0.2.0/24"),
	}
	privateBlocks = []netip.Prefix{
		netip.MustParsePrefix("192.168.0.0/16"),
		netip.MustParsePrefix("172.16.0.0/12"),
		netip.MustParsePrefix("10.0.0.0/8"),
	}
)

// ipv4 returns a host inside one of the public-style blocks (offset 1..254) or
// one of the private blocks (offset 1..65534).
func ipv4(r Rand) string {
	blocks, maxOffset := privateBlocks, 65534
	if r.Float64() < publicProbability {
		blocks, maxOffset = publicBlocks, 254
	}
	block := blocks[r.IntN(len(blocks))]
	return nthAddress(block, uint32(1+r.IntN(maxOffset))).String()
}

// nthAddress returns the address n positions after the network address of p.
func nthAddress(p netip.Prefix, n uint32) netip.Addr {
	b := p.Masked().Addr().As4()
	binary.BigEndian.PutUint32(b[:], binary.BigEndian.Uint32(b[:])+n)
	return netip.AddrFrom4(b)
}

// ipv6 returns 2001:db8: followed by six random 4-digit groups. With legacy
// set, an extra colon follows the prefix (2001:db8:::xxxx:...), matching
// fixtures produced by earlier releases.
func ipv6(r Rand, legacy bool) string {
	groups := make([]string, ipv6Groups)
	for i := range groups {
		groups[i] = fmt.Sprintf("%04x", r.IntN(1<<16))
	}
	sep := ""
	if legacy {
		sep = ":"
	}
	return ipv6Prefix + sep + strings.Join(groups, ":")
}
