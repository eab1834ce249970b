package domain

const (
	// Gateway constants
	DEFAULT_IPFS_GATEWAYS_CSV = "https://cloudflare-ipfs.com,https://ipfs.io,https://gateway.pinata.cloud"

	// Blockchain constants
	STARKNET_ZERO_ADDRESS = "0x0"

	DEFAULT_RPC_URL          = "https://starknet.drpc.org"
	DEFAULT_CONTRACT_ADDRESS = "0x03c7b6d007691c8c5c2b76c6277197dc17257491f1d82df5609ed1163a2690d0"
)
