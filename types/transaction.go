package types

// TransactionResult is returned by chain submitters. RawData holds the chain specific transaction
// and must be cast by callers that need it.
type TransactionResult struct {
	Hash        string `json:"hash"`
	ChainFamily string `json:"chainFamily"`
	RawData     any    `json:"rawData,omitempty"`
}

// NewTransactionResult creates a TransactionResult for the given family.
func NewTransactionResult(hash string, family string, raw any) TransactionResult {
	return TransactionResult{Hash: hash, ChainFamily: family, RawData: raw}
}
