// Fichier: formatter/output.go

package formatter

import (
	"bufio"
	"io"
	"iter"
	"net/netip"
	"strconv"

	"project/roa-sorter/roa"
)

const lineTerminator = '\n'

// FormatPrefix renders a prefix in its canonical text form:
// 'A.B.C.D/len', 'A.B.C.D/len-max' or the IPv6 equivalents.
// The maximum length is omitted when it equals the prefix length.
func FormatPrefix(p roa.Prefix) string {
	buf := make([]byte, 0, 64)
	return string(appendPrefix(buf, p))
}

func appendPrefix(buf []byte, p roa.Prefix) []byte {
	buf = appendAddr(buf, p)
	buf = append(buf, '/')
	buf = strconv.AppendInt(buf, int64(p.PrefixLen), 10)
	if p.MaxLen != p.PrefixLen {
		buf = append(buf, '-')
		buf = strconv.AppendInt(buf, int64(p.MaxLen), 10)
	}
	return buf
}

// appendAddr follows inet_ntop: an IPv6 address whose first six groups are
// zero and seventh is not keeps the dotted IPv4 tail ('::1.2.3.4').
// IPv4-mapped addresses already print that way.
func appendAddr(buf []byte, p roa.Prefix) []byte {
	if p.Family == roa.IPv6 && !p.Addr.Is4In6() {
		b := p.Addr.As16()
		if isZero(b[:12]) && (b[12] != 0 || b[13] != 0) {
			buf = append(buf, "::"...)
			return netip.AddrFrom4([4]byte(b[12:])).AppendTo(buf)
		}
	}
	return p.Addr.AppendTo(buf)
}

func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// WriteSorted writes one line per prefix yielded by prefixes and returns the
// number of lines written. Output is buffered and flushed before returning.
func WriteSorted(w io.Writer, prefixes iter.Seq[roa.Prefix]) (int, error) {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	n := 0

	for p := range prefixes {
		buf = appendPrefix(buf[:0], p)
		buf = append(buf, lineTerminator)
		if _, err := bw.Write(buf); err != nil {
			return n, err
		}
		n++
	}

	if err := bw.Flush(); err != nil {
		return n, err
	}
	return n, nil
}
