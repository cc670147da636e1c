// Package base85 implements the RFC 1924 base85 alphabet without padding, as
// used for byte strings that are not valid UTF-8.
//
// Each 4-byte group becomes 5 characters, most significant digit first. A final
// partial group of n bytes is zero-extended and written with n+1 characters.
package base85

import (
	"errors"
	"fmt"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz!#$%&()*+-;<=>?@^_`{|}~"

var (
	ErrInvalidChar = errors.New("invalid base85 character")
	ErrOverflow    = errors.New("base85 group overflows 32 bits")
	ErrLength      = errors.New("base85 text has a dangling character")
)

var decodeMap = func() [256]int16 {
	var m [256]int16
	for i := range m {
		m[i] = -1
	}
	for i := range len(alphabet) {
		m[alphabet[i]] = int16(i)
	}
	return m
}()

// Encode returns the base85 text of src.
func Encode(src []byte) string {
	out := make([]byte, 0, (len(src)+3)/4*5)

	for len(src) > 0 {
		var group [4]byte
		n := copy(group[:], src)
		src = src[n:]

		v := uint32(group[0])<<24 | uint32(group[1])<<16 | uint32(group[2])<<8 | uint32(group[3])

		var digits [5]byte
		for i := 4; i >= 0; i-- {
			digits[i] = alphabet[v%85]
			v /= 85
		}

		out = append(out, digits[:n+1]...)
	}

	return string(out)
}

// Decode returns the bytes encoded by s.
func Decode(s string) ([]byte, error) {
	if len(s)%5 == 1 {
		return nil, ErrLength
	}

	out := make([]byte, 0, (len(s)+4)/5*4)

	for offset := 0; offset < len(s); offset += 5 {
		chunk := s[offset:min(offset+5, len(s))]

		var acc uint64
		for i := range 5 {
			d := int16(84)
			if i < len(chunk) {
				d = decodeMap[chunk[i]]
				if d < 0 {
					return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidChar, chunk[i], offset+i)
				}
			}
			acc = acc*85 + uint64(d)
		}

		if acc > 1<<32-1 {
			return nil, fmt.Errorf("%w at offset %d", ErrOverflow, offset)
		}

		group := [4]byte{byte(acc >> 24), byte(acc >> 16), byte(acc >> 8), byte(acc)}
		out = append(out, group[:len(chunk)-1]...)
	}

	return out, nil
}
