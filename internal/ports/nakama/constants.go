package nakama

const (
	// RpcSimulateMatch is the Nakama RPC id clients call to run a full bot match.
	RpcSimulateMatch = "domino_simulate"
)

// Nakama runtime error codes (gRPC status codes).
const (
	codeInvalidArgument = 3
	codeInternal        = 13
)
