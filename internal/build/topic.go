package build

import (
	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashpilot/hashpilot/internal/normalise"
	"github.com/hashpilot/hashpilot/internal/toolkit"
)

func CreateTopic(p *normalise.TopicCreate) (toolkit.Built, error) {
	tx := hedera.NewTopicCreateTransaction()
	if p.Memo != "" {
		tx.SetTopicMemo(p.Memo)
	}
	if p.AdminKey != nil {
		tx.SetAdminKey(p.AdminKey)
	}
	if p.SubmitKey != nil {
		tx.SetSubmitKey(p.SubmitKey)
	}
	if p.TxMemo != "" {
		tx.SetTransactionMemo(p.TxMemo)
	}
	return maybeWrapInSchedule(tx, p.Schedule)
}

func UpdateTopic(p *normalise.TopicUpdate) (toolkit.Built, error) {
	tx := hedera.NewTopicUpdateTransaction().
		SetTopicID(p.TopicID)
	if p.Memo != nil {
		tx.SetTopicMemo(*p.Memo)
	}
	if p.AdminKey != nil {
		tx.SetAdminKey(p.AdminKey)
	}
	if p.SubmitKey != nil {
		tx.SetSubmitKey(p.SubmitKey)
	}
	if p.AutoRenewAccount != nil {
		tx.SetAutoRenewAccountID(*p.AutoRenewAccount)
	}
	if p.ExpirationTime != nil {
		tx.SetExpirationTime(*p.ExpirationTime)
	}
	if p.TxMemo != "" {
		tx.SetTransactionMemo(p.TxMemo)
	}
	return maybeWrapInSchedule(tx, p.Schedule)
}

func DeleteTopic(p *normalise.TopicDelete) (toolkit.Built, error) {
	tx := hedera.NewTopicDeleteTransaction().
		SetTopicID(p.TopicID)
	if p.TxMemo != "" {
		tx.SetTransactionMemo(p.TxMemo)
	}
	return maybeWrapInSchedule(tx, p.Schedule)
}

func SubmitTopicMessage(p *normalise.TopicMessageSubmit) (toolkit.Built, error) {
	tx := hedera.NewTopicMessageSubmitTransaction().
		SetTopicID(p.TopicID).
		SetMessage([]byte(p.Message))
	if p.TxMemo != "" {
		tx.SetTransactionMemo(p.TxMemo)
	}
	return maybeWrapInSchedule(tx, p.Schedule)
}
