package solana

import (
	"crypto/ed25519"
	"strings"
)

// Base58 alphabet (Bitcoin/Solana style - excludes 0, O, I, l)
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// A 32-byte public key encodes to at most 44 Base58 characters.
const maxEncodedLen = 44

// Matcher tests whether a public key's Base58 encoding ends with a fixed
// suffix. Matching is case-sensitive and compares the exact trailing slice.
// A Matcher is not safe for concurrent use: it owns a scratch encode buffer
// so the per-attempt hot path performs no heap allocation. Give each worker
// its own Matcher.
type Matcher struct {
	suffix []byte
	enc    encodeBuf
}

// NewMatcher creates a matcher for the given suffix. The suffix must be
// non-empty, no longer than an encoded address, and valid Base58.
func NewMatcher(suffix string) (*Matcher, error) {
	if suffix == "" {
		return nil, &InvalidSuffixError{Suffix: suffix, Reason: "empty"}
	}
	if len(suffix) > maxEncodedLen {
		return nil, &InvalidSuffixError{Suffix: suffix, Reason: "longer than an encoded address"}
	}
	if invalid := InvalidBase58Chars(suffix); len(invalid) != 0 {
		return nil, &InvalidSuffixError{Suffix: suffix, Reason: "contains non-Base58 characters " + string(invalid)}
	}
	return &Matcher{suffix: []byte(suffix)}, nil
}

// Match encodes the public key and compares its tail against the suffix.
// On a match it returns the full address string (the only allocation this
// method ever makes); otherwise it returns "", false.
func (m *Matcher) Match(pub ed25519.PublicKey) (string, bool) {
	addr := m.enc.encode(pub)
	if len(addr) < len(m.suffix) {
		return "", false
	}
	tail := addr[len(addr)-len(m.suffix):]
	for i, b := range m.suffix {
		if tail[i] != b {
			return "", false
		}
	}
	return string(addr), true
}

// encodeBuf holds the scratch space for Base58-encoding a 32-byte key
// without touching the heap.
type encodeBuf struct {
	num [ed25519.PublicKeySize]byte
	out [maxEncodedLen]byte
}

// encode writes the Base58 encoding of src into the scratch buffer and
// returns the encoded slice. The slice is only valid until the next call.
func (b *encodeBuf) encode(src []byte) []byte {
	zeros := 0
	for zeros < len(src) && src[zeros] == 0 {
		zeros++
	}

	n := copy(b.num[:], src)
	pos := len(b.out)
	start := zeros
	for start < n {
		rem := 0
		for i := start; i < n; i++ {
			acc := rem<<8 + int(b.num[i])
			b.num[i] = byte(acc / 58)
			rem = acc % 58
		}
		pos--
		b.out[pos] = base58Alphabet[rem]
		if b.num[start] == 0 {
			start++
		}
	}
	// Leading zero bytes map to the zero digit '1'.
	for i := 0; i < zeros; i++ {
		pos--
		b.out[pos] = '1'
	}
	return b.out[pos:]
}

// IsValidBase58 checks if a string contains only valid Base58 characters.
// Base58 excludes: 0 (zero), O (uppercase o), I (uppercase i), l (lowercase L)
func IsValidBase58(s string) bool {
	return len(InvalidBase58Chars(s)) == 0
}

// InvalidBase58Chars returns any invalid Base58 characters in the input.
// Useful for providing helpful error messages to users.
func InvalidBase58Chars(s string) []rune {
	var invalid []rune
	for _, c := range s {
		if !strings.ContainsRune(base58Alphabet, c) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}

// InvalidSuffixError reports a suffix that can never match an address.
type InvalidSuffixError struct {
	Suffix string
	Reason string
}

func (e *InvalidSuffixError) Error() string {
	return "invalid suffix " + e.Suffix + ": " + e.Reason
}
