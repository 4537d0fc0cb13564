// nolint: all
package mp4io

import "github.com/ugparu/mp4thumb/utils/bits/pio"

// writeBox lays out the size+tag header every ISO-BMFF box shares: it
// runs marshalBody against b[8:] to fill in the type-specific payload,
// stamps tag into b[4:8], then patches the total box size (header plus
// whatever marshalBody wrote) into b[0:4]. Every typed box in this
// package implements Marshal as a single call to writeBox (only the
// Dummy fallback copies its raw bytes, header included), since the
// box grammar gives all of them the same four-byte size plus four-byte
// tag framing no matter what the body looks like.
func writeBox(b []byte, tag Tag, marshalBody func([]byte) int) (n int) {
	pio.PutU32BE(b[4:], uint32(tag))
	n = marshalBody(b[8:]) + HeaderSize
	pio.PutU32BE(b[0:], uint32(n))
	return
}

const fullBoxPrefixLen = 4

// writeFullBoxPrefix writes the one-byte version plus three-byte flags
// prefix carried by every ISO-BMFF "full box" (stts, stsc, ctts, stss,
// stsz, stco, vmhd, dref, url, hdlr, mdhd among the boxes this package
// parses) and returns the number of bytes written.
func writeFullBoxPrefix(b []byte, version uint8, flags uint32) int {
	pio.PutU8(b, version)
	pio.PutU24BE(b[1:], flags)
	return fullBoxPrefixLen
}

// readFullBoxPrefix reads the version/flags prefix out of b starting at
// b[n:]. offset is the absolute file offset of b[0], used only to
// annotate a parse error with the failing field's position.
func readFullBoxPrefix(b []byte, n, offset int) (version uint8, flags uint32, next int, err error) {
	if len(b) < n+fullBoxPrefixLen {
		err = parseErr("Version", n+offset, nil)
		return
	}
	version = pio.U8(b[n:])
	flags = pio.U24BE(b[n+1:])
	next = n + fullBoxPrefixLen
	return
}
