package toolkit

import (
	"context"
	"encoding/base64"
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashpilot/hashpilot/internal/config"
)

// ExecutedResult is the receipt-derived outcome of a submitted
// transaction, or the serialized bytes in return-bytes mode.
type ExecutedResult struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id,omitempty"`
	ScheduleID    string `json:"schedule_id,omitempty"`
	TokenID       string `json:"token_id,omitempty"`
	TopicID       string `json:"topic_id,omitempty"`
	AccountID     string `json:"account_id,omitempty"`
	ContractID    string `json:"contract_id,omitempty"`
	// Bytes holds the base64 transaction for out-of-band signing; set
	// only in return-bytes mode, in which nothing was submitted.
	Bytes string `json:"bytes,omitempty"`
}

// Scheduled reports whether the result came from a schedule-create wrapper.
func (r *ExecutedResult) Scheduled() bool { return r.ScheduleID != "" }

// Executor is the execution strategy boundary: it owns what happens to a
// built transaction after construction.
type Executor interface {
	Execute(ctx context.Context, built Built) (*ExecutedResult, error)
}

// ClientExecutor submits through an operator-configured SDK client, or
// serializes for external signing when the agent runs in return-bytes
// mode. Nothing is retried; ledger rejections surface verbatim.
type ClientExecutor struct {
	client *hedera.Client
	mode   config.AgentMode
}

func NewClientExecutor(client *hedera.Client, mode config.AgentMode) *ClientExecutor {
	return &ClientExecutor{client: client, mode: mode}
}

func (e *ClientExecutor) Execute(_ context.Context, built Built) (*ExecutedResult, error) {
	tx := built.Primary()

	if e.mode == config.ModeReturnBytes {
		raw, err := tx.ToBytes()
		if err != nil {
			return nil, fmt.Errorf("serialize transaction: %w", err)
		}
		return &ExecutedResult{
			Status: "NOT_SUBMITTED",
			Bytes:  base64.StdEncoding.EncodeToString(raw),
		}, nil
	}

	if e.client == nil {
		return nil, fmt.Errorf("no operator client configured")
	}

	resp, err := tx.Execute(e.client)
	if err != nil {
		return nil, err
	}
	receipt, err := resp.GetReceipt(e.client)
	if err != nil {
		// The error text carries the ledger status code; keep it intact.
		return nil, err
	}

	result := &ExecutedResult{
		Status:        receipt.Status.String(),
		TransactionID: resp.TransactionID.String(),
	}
	if receipt.ScheduleID != nil {
		result.ScheduleID = receipt.ScheduleID.String()
	}
	if receipt.TokenID != nil {
		result.TokenID = receipt.TokenID.String()
	}
	if receipt.TopicID != nil {
		result.TopicID = receipt.TopicID.String()
	}
	if receipt.AccountID != nil {
		result.AccountID = receipt.AccountID.String()
	}
	if receipt.ContractID != nil {
		result.ContractID = receipt.ContractID.String()
	}
	return result, nil
}
