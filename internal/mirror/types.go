package mirror

// Key is a mirror node key descriptor. Type is ED25519, ECDSA_SECP256K1,
// or ProtobufEncoded; Key holds the hex-encoded key material.
type Key struct {
	Type string `json:"_type"`
	Key  string `json:"key"`
}

// TokenInfo is the /api/v1/tokens/{id} payload. Numeric amounts arrive as
// decimal strings and are converted by the caller.
type TokenInfo struct {
	TokenID           string `json:"token_id"`
	Name              string `json:"name"`
	Symbol            string `json:"symbol"`
	Decimals          string `json:"decimals"`
	TotalSupply       string `json:"total_supply"`
	MaxSupply         string `json:"max_supply"`
	SupplyType        string `json:"supply_type"`
	Type              string `json:"type"`
	TreasuryAccountID string `json:"treasury_account_id"`
	Memo              string `json:"memo"`
	AdminKey          *Key   `json:"admin_key"`
	SupplyKey         *Key   `json:"supply_key"`
	Deleted           bool   `json:"deleted"`
}

// AccountInfo is the /api/v1/accounts/{id} payload, trimmed to the fields
// the toolkit reads.
type AccountInfo struct {
	Account    string       `json:"account"`
	Key        *Key         `json:"key"`
	EvmAddress string       `json:"evm_address"`
	Memo       string       `json:"memo"`
	Deleted    bool         `json:"deleted"`
	Balance    *BalanceInfo `json:"balance"`
}

// BalanceInfo is the embedded balance block of an account payload.
type BalanceInfo struct {
	Balance int64          `json:"balance"`
	Tokens  []TokenBalance `json:"tokens"`
}

// AccountBalance is one entry of the /api/v1/balances payload.
type AccountBalance struct {
	Account string         `json:"account"`
	Balance int64          `json:"balance"`
	Tokens  []TokenBalance `json:"tokens"`
}

// TokenBalance is a per-token balance in base units.
type TokenBalance struct {
	TokenID string `json:"token_id"`
	Balance int64  `json:"balance"`
}

type balancesResponse struct {
	Balances []AccountBalance `json:"balances"`
}

// TopicInfo is the /api/v1/topics/{id} payload.
type TopicInfo struct {
	TopicID          string `json:"topic_id"`
	Memo             string `json:"memo"`
	AdminKey         *Key   `json:"admin_key"`
	SubmitKey        *Key   `json:"submit_key"`
	AutoRenewAccount string `json:"auto_renew_account"`
	AutoRenewPeriod  int64  `json:"auto_renew_period"`
	CreatedTimestamp string `json:"created_timestamp"`
	Deleted          bool   `json:"deleted"`
}

// Rate is one side of the network exchange rate: cents per hbarEquivalent
// hbar, valid until ExpirationTime (epoch seconds).
type Rate struct {
	CentEquivalent int64 `json:"cent_equivalent"`
	HbarEquivalent int64 `json:"hbar_equivalent"`
	ExpirationTime int64 `json:"expiration_time"`
}

// ExchangeRateResponse is the /api/v1/network/exchangerate payload.
type ExchangeRateResponse struct {
	CurrentRate Rate `json:"current_rate"`
	NextRate    Rate `json:"next_rate"`
}

// Transfer is a single hbar movement in a transaction record, in tinybars.
type Transfer struct {
	Account    string `json:"account"`
	Amount     int64  `json:"amount"`
	IsApproval bool   `json:"is_approval"`
}

// TokenTransfer is a single token movement in a transaction record, in
// base units.
type TokenTransfer struct {
	TokenID    string `json:"token_id"`
	Account    string `json:"account"`
	Amount     int64  `json:"amount"`
	IsApproval bool   `json:"is_approval"`
}

// TransactionRecord is one entry of a /api/v1/transactions/{id} payload.
type TransactionRecord struct {
	TransactionID      string          `json:"transaction_id"`
	ConsensusTimestamp string          `json:"consensus_timestamp"`
	Name               string          `json:"name"`
	Result             string          `json:"result"`
	ChargedTxFee       int64           `json:"charged_tx_fee"`
	EntityID           string          `json:"entity_id"`
	MemoBase64         string          `json:"memo_base64"`
	Transfers          []Transfer      `json:"transfers"`
	TokenTransfers     []TokenTransfer `json:"token_transfers"`
}

// TransactionRecordResponse is the /api/v1/transactions/{id} payload. A
// transaction id can map to several records (inner, scheduled).
type TransactionRecordResponse struct {
	Transactions []TransactionRecord `json:"transactions"`
}
