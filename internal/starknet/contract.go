package starknet

import (
	"context"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/mediolano-app/mip-indexer/internal/domain"
	"github.com/mediolano-app/mip-indexer/internal/logger"
)

// Contract is a typed handle over the ERC-721-style IP collection contract
type Contract struct {
	client  ChainClient
	address string
}

// NewContract creates a contract handle for the given address
func NewContract(client ChainClient, address string) *Contract {
	return &Contract{client: client, address: address}
}

// Address returns the contract address
func (c *Contract) Address() string {
	return c.address
}

// TotalSupply reads the number of minted tokens
func (c *Contract) TotalSupply(ctx context.Context) (uint64, error) {
	result, err := c.client.Call(ctx, c.address, "total_supply", nil)
	if err != nil {
		return 0, fmt.Errorf("total_supply call: %w", err)
	}

	supply, err := parseU256(result)
	if err != nil {
		return 0, fmt.Errorf("total_supply result: %w", err)
	}
	if !supply.IsUint64() {
		return 0, fmt.Errorf("total_supply out of range: %s", supply)
	}

	return supply.Uint64(), nil
}

// TokenByIndex resolves an enumeration index to a token id, returned as a
// decimal string
func (c *Contract) TokenByIndex(ctx context.Context, index uint64) (string, error) {
	idx := new(big.Int).SetUint64(index)
	result, err := c.client.Call(ctx, c.address, "token_by_index", u256Calldata(idx))
	if err != nil {
		return "", fmt.Errorf("token_by_index(%d) call: %w", index, err)
	}

	id, err := parseU256(result)
	if err != nil {
		return "", fmt.Errorf("token_by_index(%d) result: %w", index, err)
	}

	return id.String(), nil
}

// OwnerOf reads the current owner of a token
func (c *Contract) OwnerOf(ctx context.Context, tokenID string) (string, error) {
	id, err := parseFelt(tokenID)
	if err != nil {
		return "", fmt.Errorf("owner_of token id: %w", err)
	}

	result, err := c.client.Call(ctx, c.address, "owner_of", u256Calldata(id))
	if err != nil {
		return "", fmt.Errorf("owner_of(%s) call: %w", tokenID, err)
	}
	if len(result) == 0 {
		return "", fmt.Errorf("owner_of(%s): empty result", tokenID)
	}

	return result[0], nil
}

// TokenURI reads and decodes the metadata pointer of a token. The return
// value on the wire is either a Cairo ByteArray, a length-prefixed felt
// array of short-string chunks, or a single felt; all three shapes decode
// to one URI string. A decode failure yields an empty URI, never an error
// that would abort the page.
func (c *Contract) TokenURI(ctx context.Context, tokenID string) (string, error) {
	id, err := parseFelt(tokenID)
	if err != nil {
		return "", fmt.Errorf("token_uri token id: %w", err)
	}

	result, err := c.client.Call(ctx, c.address, "token_uri", u256Calldata(id))
	if err != nil {
		return "", fmt.Errorf("token_uri(%s) call: %w", tokenID, err)
	}

	uri, err := decodeTokenURIWords(result)
	if err != nil {
		logger.WarnCtx(ctx, "failed to decode token URI",
			zap.String("token_id", tokenID),
			zap.Error(err))
		return "", nil
	}

	return uri, nil
}

// decodeTokenURIWords picks the serialization shape of a token_uri result
// and decodes it
func decodeTokenURIWords(words []string) (string, error) {
	if len(words) == 0 {
		return "", nil
	}
	if len(words) == 1 {
		return DecodeShortString(words)
	}

	count, err := parseFelt(words[0])
	if err != nil {
		return "", err
	}

	// ByteArray: [num_full_words, word..., pending_word, pending_word_len]
	if count.IsUint64() && int(count.Uint64()) == len(words)-3 {
		n := int(count.Uint64())
		pendingLen, err := parseFelt(words[len(words)-1])
		if err != nil {
			return "", err
		}
		return DecodeByteArray(words[1:1+n], words[len(words)-2], int(pendingLen.Int64()))
	}

	// Length-prefixed felt array of short-string chunks
	if count.IsUint64() && int(count.Uint64()) == len(words)-1 {
		return DecodeShortString(words[1:])
	}

	// Unprefixed chunk sequence
	return DecodeShortString(words)
}

// FetchTokenRef resolves the owner and URI of one token in a single pass
func (c *Contract) FetchTokenRef(ctx context.Context, tokenID string) (*domain.TokenRef, error) {
	owner, err := c.OwnerOf(ctx, tokenID)
	if err != nil {
		return nil, err
	}

	uri, err := c.TokenURI(ctx, tokenID)
	if err != nil {
		return nil, err
	}

	return &domain.TokenRef{
		ContractAddress: c.address,
		TokenID:         tokenID,
		Owner:           owner,
		TokenURI:        uri,
	}, nil
}
