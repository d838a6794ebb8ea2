// Fichier: roa/prefix.go

package roa

import "net/netip"

// Family is the address family of a ROA prefix.
type Family uint8

const (
	// IPv4 sorts before IPv6 in the canonical order.
	IPv4 Family = iota + 1
	IPv6
)

// Bits returns the address width of the family.
func (f Family) Bits() int {
	if f == IPv4 {
		return 32
	}
	return 128
}

func (f Family) String() string {
	switch f {
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// Prefix represents one ROA IP address entry with its maximum length.
type Prefix struct {
	// Family is derived from the address syntax.
	Family Family
	// Addr is the network address as written. Host bits are not masked.
	Addr netip.Addr
	// PrefixLen is the number of leading bits that define the network.
	PrefixLen int
	// MaxLen is the longest prefix length authorized by this entry.
	// It equals PrefixLen when the input did not carry one.
	MaxLen int
}
