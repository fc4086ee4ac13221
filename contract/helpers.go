package main

import (
	"encoding/binary"
	"encoding/json"
	"strconv"
	"strings"
)

// ---------- Require ----------

func require(cond bool, msg string, chain SDKInterface) {
	if !cond {
		chain.Abort(msg)
	}
}

// ---------- JSON Conversions ----------

func ToJSON[T any](v T, objectType string, chain SDKInterface) string {
	b, err := json.Marshal(v)
	if err != nil {
		chain.Abort("failed to marshal " + objectType)
	}
	return string(b)
}

// ---------- UInt/String Helpers ----------

func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// ---------- Parsing Helpers ----------

// nextField consumes the next pipe-separated field from the payload.
func nextField(s *string) string {
	i := strings.IndexByte(*s, '|')
	if i < 0 {
		f := *s
		*s = ""
		return f
	}
	f := (*s)[:i]
	*s = (*s)[i+1:]
	return f
}

func parseU64Fast(s string) uint64 {
	var n uint64
	for i := 0; i < len(s); i++ {
		n = n*10 + uint64(s[i]-'0')
	}
	return n
}

func appendU64(dst []byte, v uint64) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, buf[i:]...)
}

// parseFixedPoint3 parses a decimal string with up to 3 fractional digits
// and returns an integer scaled by 1000 (e.g., "1.23" -> 1230).
// No allocations, no floats.
func parseFixedPoint3(s string, chain SDKInterface) uint64 {
	n := len(s)
	if n == 0 {
		return 0
	}

	var intPart uint64
	var fracPart uint64
	var fracDigits int
	dotSeen := false

	for i := 0; i < n; i++ {
		c := s[i]

		if c == '.' {
			require(!dotSeen, "invalid number: multiple dots", chain)
			dotSeen = true
			continue
		}

		require(c >= '0' && c <= '9', "invalid character in number", chain)
		d := uint64(c - '0')

		if !dotSeen {
			intPart = intPart*10 + d
		} else {
			require(fracDigits < 3, "too many fractional digits", chain)
			fracDigits++
			fracPart = fracPart*10 + d
		}
	}

	switch fracDigits {
	case 1:
		fracPart *= 100
	case 2:
		fracPart *= 10
	}

	return intPart*1000 + fracPart
}

// ---------- Time Helpers ----------

// parseISO8601ToUnix parses "YYYY-MM-DDThh:mm:ss" UTC format into UNIX seconds.
// Assumes valid ASCII digits.
func parseISO8601ToUnix(s string) uint64 {
	year := strToUint16Fast(s[0:4])
	month := strToUint8Fast(s[5:7])
	day := strToUint8Fast(s[8:10])
	hour := strToUint8Fast(s[11:13])
	minute := strToUint8Fast(s[14:16])
	second := strToUint8Fast(s[17:19])

	days := daysSinceUnixEpoch(year, month, day)
	return days*86400 + uint64(hour)*3600 + uint64(minute)*60 + uint64(second)
}

func strToUint16Fast(s string) uint16 {
	var n uint16
	for i := 0; i < len(s); i++ {
		n = n*10 + uint16(s[i]-'0')
	}
	return n
}

func strToUint8Fast(s string) uint8 {
	var n uint8
	for i := 0; i < len(s); i++ {
		n = n*10 + uint8(s[i]-'0')
	}
	return n
}

func isLeapYear(year uint16) bool {
	y := int(year)
	return (y%4 == 0 && y%100 != 0) || (y%400 == 0)
}

func daysSinceUnixEpoch(year uint16, month uint8, day uint8) uint64 {
	y := int(year) - 1970
	days := uint64(y * 365)
	// leap days of years fully elapsed; the current year's leap day is
	// added by the month walk below
	days += uint64((y+1)/4 - (y+69)/100 + (y+369)/400)

	var monthDays = [12]uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for i := uint8(1); i < month; i++ {
		days += uint64(monthDays[i-1])
		if i == 2 && isLeapYear(year) {
			days++
		}
	}

	return days + uint64(day-1)
}

// ---------- Binary Codec Helpers ----------

// rd is a binary reader utility over a byte slice,
// providing big-endian integer reads with safety checks.
type rd struct {
	b     []byte
	i     int
	chain SDKInterface
}

func (r *rd) need(n int) {
	if r.i+n > len(r.b) {
		r.chain.Abort("decode overflow")
	}
}

func (r *rd) u8() byte {
	r.need(1)
	v := r.b[r.i]
	r.i++
	return v
}

func (r *rd) u16() uint16 {
	r.need(2)
	v := binary.BigEndian.Uint16(r.b[r.i : r.i+2])
	r.i += 2
	return v
}

func (r *rd) u64() uint64 {
	r.need(8)
	v := binary.BigEndian.Uint64(r.b[r.i : r.i+8])
	r.i += 8
	return v
}

func (r *rd) bytes(n int) []byte {
	r.need(n)
	v := r.b[r.i : r.i+n]
	r.i += n
	return v
}

func (r *rd) str() string {
	l := int(r.u16())
	return string(r.bytes(l))
}

// mustEnd verifies that the reader consumed all bytes exactly.
func (r *rd) mustEnd() {
	if r.i != len(r.b) {
		r.chain.Abort("trailing bytes")
	}
}

func appendU16BE(out []byte, v uint16) []byte {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	return append(out, tmp[:]...)
}

func appendU64BE(out []byte, v uint64) []byte {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	return append(out, tmp[:]...)
}

func appendString16(out []byte, s string, chain SDKInterface) []byte {
	require(len(s) <= 65535, "string too long", chain)
	out = appendU16BE(out, uint16(len(s)))
	return append(out, s...)
}
