// Fichier: roa/sort.go

package roa

import "bytes"

// Compare implements the canonical ROA prefix ordering of
// draft-ietf-sidrops-rfc6482bis. It returns -1, 0 or +1.
//
// Two prefixes comparing equal are duplicates of each other.
func Compare(a, b Prefix) int {
	// 1. IPv4 before IPv6
	if a.Family != b.Family {
		if a.Family < b.Family {
			return -1
		}
		return 1
	}

	// 2. Address bytes over the family length
	if c := compareAddr(a, b); c != 0 {
		return c
	}

	// 3. Prefix length, then maximum length
	if a.PrefixLen != b.PrefixLen {
		if a.PrefixLen < b.PrefixLen {
			return -1
		}
		return 1
	}
	if a.MaxLen != b.MaxLen {
		if a.MaxLen < b.MaxLen {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether a sorts strictly before b.
func Less(a, b Prefix) bool {
	return Compare(a, b) < 0
}

// compareAddr is an unsigned byte-wise comparison of two addresses of the
// same family.
func compareAddr(a, b Prefix) int {
	if a.Family == IPv4 {
		a4, b4 := a.Addr.As4(), b.Addr.As4()
		return bytes.Compare(a4[:], b4[:])
	}
	a16, b16 := a.Addr.As16(), b.Addr.As16()
	return bytes.Compare(a16[:], b16[:])
}
