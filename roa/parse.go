// Fichier: roa/parse.go

package roa

import (
	"net/netip"
	"strconv"
	"strings"
)

// ParsePrefix parses one line of the form <address>/<prefixlen>[-<maxlen>]
// into a validated Prefix. The line must not carry its terminator.
//
// Errors are returned as *ParseError wrapping one of the Err* sentinels.
func ParsePrefix(line string) (Prefix, error) {
	fail := func(err error) (Prefix, error) {
		return Prefix{}, &ParseError{Line: line, Err: err}
	}

	address, lengths, found := strings.Cut(line, "/")
	if !found {
		return fail(ErrMalformedPrefix)
	}

	plen, mlen, hasMax := strings.Cut(lengths, "-")

	var p Prefix
	var ok bool
	if p.PrefixLen, ok = parseLength(plen); !ok {
		return fail(ErrInvalidPrefixLength)
	}
	p.MaxLen = p.PrefixLen
	if hasMax {
		if p.MaxLen, ok = parseLength(mlen); !ok {
			return fail(ErrInvalidMaxLength)
		}
	}

	addr, family, ok := parseAddr(address)
	if !ok {
		return fail(ErrInvalidAddress)
	}
	p.Addr = addr
	p.Family = family

	bits := family.Bits()
	if p.PrefixLen > bits {
		return fail(ErrPrefixLengthTooLarge)
	}
	if p.PrefixLen > p.MaxLen {
		return fail(ErrPrefixMaxLengthInverted)
	}
	if p.MaxLen > bits {
		return fail(ErrMaxLengthTooLarge)
	}

	return p, nil
}

// parseLength accepts only a plain decimal number: no sign, no spaces and no
// value that overflows an int.
func parseLength(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseAddr picks the family from the literal syntax and converts it to
// binary form. Host names and zoned IPv6 addresses are rejected.
func parseAddr(s string) (netip.Addr, Family, bool) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, 0, false
	}

	if strings.Contains(s, ":") {
		if !addr.Is6() || addr.Zone() != "" {
			return netip.Addr{}, 0, false
		}
		return addr, IPv6, true
	}

	if !addr.Is4() {
		return netip.Addr{}, 0, false
	}
	return addr, IPv4, true
}
