package starknet

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// looksDecoded reports whether a unit is already a readable URI rather
// than a packed integer. Some RPC stacks hand back pre-decoded strings.
func looksDecoded(unit string) bool {
	return strings.HasPrefix(unit, "http://") ||
		strings.HasPrefix(unit, "https://") ||
		strings.HasPrefix(unit, "ipfs://")
}

// decodeFeltWord unpacks one felt-sized big-endian integer into its ASCII
// characters: render the value as hex, pair the digits into bytes and drop
// zero bytes.
func decodeFeltWord(unit string) (string, error) {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return "", nil
	}

	n := new(big.Int)
	var ok bool
	if strings.HasPrefix(unit, "0x") || strings.HasPrefix(unit, "0X") {
		_, ok = n.SetString(unit[2:], 16)
	} else {
		_, ok = n.SetString(unit, 10)
	}
	if !ok {
		return "", fmt.Errorf("not a felt value: %q", unit)
	}

	h := n.Text(16)
	if len(h)%2 != 0 {
		h = "0" + h
	}

	raw, err := hex.DecodeString(h)
	if err != nil {
		return "", fmt.Errorf("invalid hex %q: %w", h, err)
	}

	var sb strings.Builder
	for _, b := range raw {
		if b == 0 {
			continue
		}
		sb.WriteByte(b)
	}
	return sb.String(), nil
}

// DecodeShortString reconstructs a string from a sequence of short-string
// packed felts. Units that already look like URIs pass through unchanged;
// everything else is unpacked byte-wise. Units are joined in order, so a
// URI split across several felt-sized chunks reassembles exactly.
func DecodeShortString(units []string) (string, error) {
	var sb strings.Builder
	for _, unit := range units {
		if looksDecoded(unit) {
			sb.WriteString(unit)
			continue
		}
		part, err := decodeFeltWord(unit)
		if err != nil {
			return "", err
		}
		sb.WriteString(part)
	}
	return sb.String(), nil
}

// DecodeByteArray decodes Cairo's ByteArray serialization: full 31-byte
// data words followed by a pending word holding pendingLen trailing bytes.
func DecodeByteArray(data []string, pendingWord string, pendingLen int) (string, error) {
	var sb strings.Builder
	for _, word := range data {
		part, err := decodeFeltWord(word)
		if err != nil {
			return "", err
		}
		sb.WriteString(part)
	}

	pending, err := decodeFeltWord(pendingWord)
	if err != nil {
		return "", err
	}
	if pendingLen >= 0 && pendingLen < len(pending) {
		pending = pending[:pendingLen]
	}
	sb.WriteString(pending)

	return sb.String(), nil
}

// EncodeShortString packs an ASCII string into felt-sized hex words of at
// most 31 bytes each. Exists for tests and tooling; the contract side does
// the production encoding.
func EncodeShortString(s string) []string {
	const wordBytes = 31

	var words []string
	for len(s) > 0 {
		chunk := s
		if len(chunk) > wordBytes {
			chunk = s[:wordBytes]
		}
		s = s[len(chunk):]

		n := new(big.Int).SetBytes([]byte(chunk))
		words = append(words, "0x"+n.Text(16))
	}
	return words
}

// parseU256 interprets a call result as a u256. Two felts are combined as
// low + (high << 128); a single felt is taken at face value.
func parseU256(result []string) (*big.Int, error) {
	switch len(result) {
	case 0:
		return nil, fmt.Errorf("empty u256 result")
	case 1:
		return parseFelt(result[0])
	default:
		low, err := parseFelt(result[0])
		if err != nil {
			return nil, err
		}
		high, err := parseFelt(result[1])
		if err != nil {
			return nil, err
		}
		return new(big.Int).Add(low, new(big.Int).Lsh(high, 128)), nil
	}
}

// parseFelt parses a single felt given as 0x-hex or decimal text
func parseFelt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	n := new(big.Int)
	var ok bool
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		_, ok = n.SetString(s[2:], 16)
	} else {
		_, ok = n.SetString(s, 10)
	}
	if !ok {
		return nil, fmt.Errorf("invalid felt: %q", s)
	}
	return n, nil
}

// u256Calldata splits a token id into the low/high felt pair Cairo
// expects for a u256 argument
func u256Calldata(id *big.Int) []string {
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	low := new(big.Int).And(id, mask)
	high := new(big.Int).Rsh(id, 128)
	return []string{"0x" + low.Text(16), "0x" + high.Text(16)}
}
