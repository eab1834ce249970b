package starknet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeShortString_RoundTrip(t *testing.T) {
	tests := []string{
		"ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
		"https://gateway.pinata.cloud/ipfs/QmShort",
		"a",
		"exactly-thirty-one-bytes-chunk!",
		"a much longer string spanning several felt sized words to verify ordering",
	}

	for _, original := range tests {
		words := EncodeShortString(original)
		decoded, err := DecodeShortString(words)
		require.NoError(t, err, original)
		assert.Equal(t, original, decoded)
	}
}

func TestDecodeShortString_PassThrough(t *testing.T) {
	// Already-decoded units are joined unchanged
	decoded, err := DecodeShortString([]string{"ipfs://QmHash"})
	require.NoError(t, err)
	assert.Equal(t, "ipfs://QmHash", decoded)

	decoded, err = DecodeShortString([]string{"https://example.com/a", "0x2e6a736f6e"}) // ".json"
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.json", decoded)
}

func TestDecodeShortString_DecimalUnits(t *testing.T) {
	// "abc" = 0x616263 = 6382179
	decoded, err := DecodeShortString([]string{"6382179"})
	require.NoError(t, err)
	assert.Equal(t, "abc", decoded)
}

func TestDecodeShortString_DropsZeroBytes(t *testing.T) {
	// 0x610062 packs 'a', NUL, 'b'; the zero byte is dropped
	decoded, err := DecodeShortString([]string{"0x610062"})
	require.NoError(t, err)
	assert.Equal(t, "ab", decoded)
}

func TestDecodeShortString_InvalidUnit(t *testing.T) {
	_, err := DecodeShortString([]string{"not-a-felt"})
	assert.Error(t, err)
}

func TestDecodeByteArray(t *testing.T) {
	// "ipfs://" + 31-byte word + pending tail
	full := "ipfs://QmYwAPJzv5CZsnA625s3Xf2n"
	require.Len(t, full, 31)
	fullWord := EncodeShortString(full)[0]

	tail := "emt"
	tailWord := EncodeShortString(tail)[0]

	decoded, err := DecodeByteArray([]string{fullWord}, tailWord, len(tail))
	require.NoError(t, err)
	assert.Equal(t, full+tail, decoded)
}

func TestDecodeByteArray_EmptyPending(t *testing.T) {
	word := EncodeShortString("hello")[0]
	decoded, err := DecodeByteArray([]string{word}, "0x0", 0)
	require.NoError(t, err)
	assert.Equal(t, "hello", decoded)
}

func TestParseU256(t *testing.T) {
	// low=1, high=2 -> 1 + (2 << 128)
	v, err := parseU256([]string{"0x1", "0x2"})
	require.NoError(t, err)
	assert.Equal(t, "680564733841876926926749214863536422913", v.String())

	v, err = parseU256([]string{"0x2a"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.Int64())

	_, err = parseU256(nil)
	assert.Error(t, err)
}

func TestU256Calldata(t *testing.T) {
	id, err := parseFelt("42")
	require.NoError(t, err)
	assert.Equal(t, []string{"0x2a", "0x0"}, u256Calldata(id))
}

func TestEntrypointSelector(t *testing.T) {
	// Deterministic, distinct per name, and within the 250-bit felt range
	a := EntrypointSelector("total_supply")
	b := EntrypointSelector("token_by_index")

	assert.Equal(t, a, EntrypointSelector("total_supply"))
	assert.NotEqual(t, a, b)

	v, err := parseFelt(a)
	require.NoError(t, err)
	assert.Less(t, v.BitLen(), 251)
}

func TestDecodeTokenURIWords_Shapes(t *testing.T) {
	uri := "ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"
	words := EncodeShortString(uri)

	// Length-prefixed felt array
	prefixed := append([]string{"0x2"}, words...)
	require.Len(t, words, 2)
	decoded, err := decodeTokenURIWords(prefixed)
	require.NoError(t, err)
	assert.Equal(t, uri, decoded)

	// Unprefixed chunk sequence
	decoded, err = decodeTokenURIWords(words)
	require.NoError(t, err)
	assert.Equal(t, uri, decoded)

	// Single felt
	short := EncodeShortString("QmShort")
	decoded, err = decodeTokenURIWords(short)
	require.NoError(t, err)
	assert.Equal(t, "QmShort", decoded)

	// Empty result
	decoded, err = decodeTokenURIWords(nil)
	require.NoError(t, err)
	assert.Equal(t, "", decoded)
}
