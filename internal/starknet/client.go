package starknet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"sync/atomic"

	"golang.org/x/crypto/sha3"

	"github.com/mediolano-app/mip-indexer/internal/adapter"
)

// ChainClient defines the read-only contract call surface. All calls are
// idempotent view calls against the configured RPC endpoint.
//
//go:generate mockgen -source=client.go -destination=../mocks/chain_client.go -package=mocks -mock_names=ChainClient=MockChainClient
type ChainClient interface {
	// Call invokes a view entrypoint and returns the raw felt words
	Call(ctx context.Context, contractAddress, entrypoint string, calldata []string) ([]string, error)
}

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      uint64      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

type callParams struct {
	Request callRequest `json:"request"`
	BlockID string      `json:"block_id"`
}

type callRequest struct {
	ContractAddress    string   `json:"contract_address"`
	EntryPointSelector string   `json:"entry_point_selector"`
	Calldata           []string `json:"calldata"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcClient struct {
	endpoint   string
	httpClient adapter.HTTPClient
	requestID  atomic.Uint64
}

// NewClient creates a JSON-RPC chain client against the given endpoint
func NewClient(endpoint string, httpClient adapter.HTTPClient) ChainClient {
	return &rpcClient{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// Call invokes starknet_call for a view entrypoint at the latest block
func (c *rpcClient) Call(ctx context.Context, contractAddress, entrypoint string, calldata []string) ([]string, error) {
	if calldata == nil {
		calldata = []string{}
	}

	req := rpcRequest{
		JSONRPC: "2.0",
		ID:      c.requestID.Add(1),
		Method:  "starknet_call",
		Params: callParams{
			Request: callRequest{
				ContractAddress:    contractAddress,
				EntryPointSelector: EntrypointSelector(entrypoint),
				Calldata:           calldata,
			},
			BlockID: "latest",
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rpc request: %w", err)
	}

	respBody, err := c.httpClient.Post(ctx, c.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("rpc transport: %w", err)
	}

	var resp rpcResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode rpc response: %w", err)
	}
	if resp.Error != nil {
		return nil, resp.Error
	}

	var result []string
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		return nil, fmt.Errorf("failed to decode call result: %w", err)
	}

	return result, nil
}

// EntrypointSelector computes the starknet_keccak of an entrypoint name:
// keccak256 truncated to its low 250 bits.
func EntrypointSelector(name string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(name))

	n := new(big.Int).SetBytes(h.Sum(nil))
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 250), big.NewInt(1))
	n.And(n, mask)

	return "0x" + n.Text(16)
}
