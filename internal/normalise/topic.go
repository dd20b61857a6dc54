package normalise

import (
	"context"
	"fmt"
	"time"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashpilot/hashpilot/internal/hederr"
	"github.com/hashpilot/hashpilot/internal/params"
)

type TopicCreate struct {
	Memo      string
	AdminKey  hedera.Key
	SubmitKey hedera.Key
	TxMemo    string
	Schedule  *ScheduleSpec
}

type TopicUpdate struct {
	TopicID          hedera.TopicID
	Memo             *string
	AdminKey         hedera.Key
	SubmitKey        hedera.Key
	AutoRenewAccount *hedera.AccountID
	ExpirationTime   *time.Time
	TxMemo           string
	Schedule         *ScheduleSpec
}

type TopicDelete struct {
	TopicID  hedera.TopicID
	TxMemo   string
	Schedule *ScheduleSpec
}

type TopicMessageSubmit struct {
	TopicID  hedera.TopicID
	Message  string
	TxMemo   string
	Schedule *ScheduleSpec
}

// CreateTopic always sets the caller's key as admin key so the topic
// stays updatable; the same key becomes the submit key when requested.
func (n *Normaliser) CreateTopic(ctx context.Context, p params.CreateTopic) (*TopicCreate, error) {
	adminKey, err := n.resolver.DefaultPublicKey(ctx)
	if err != nil {
		return nil, err
	}
	out := &TopicCreate{
		Memo:     truncateMemo(p.TopicMemo),
		AdminKey: adminKey,
		TxMemo:   truncateMemo(p.TransactionMemo),
	}
	if p.IsSubmitKey {
		out.SubmitKey = adminKey
	}
	schedule, err := n.Scheduled(ctx, p.Scheduling)
	if err != nil {
		return nil, err
	}
	out.Schedule = schedule
	return out, nil
}

func (n *Normaliser) UpdateTopic(ctx context.Context, p params.UpdateTopic) (*TopicUpdate, error) {
	topicID, err := hedera.TopicIDFromString(p.TopicID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid topic id", hederr.ErrValidation, p.TopicID)
	}
	out := &TopicUpdate{
		TopicID: topicID,
		TxMemo:  truncateMemo(p.TransactionMemo),
	}
	if p.TopicMemo != nil {
		memo := truncateMemo(*p.TopicMemo)
		out.Memo = &memo
	}

	adminKey, err := n.resolver.Key(ctx, p.AdminKey)
	if err != nil {
		return nil, err
	}
	out.AdminKey = adminKey
	submitKey, err := n.resolver.Key(ctx, p.SubmitKey)
	if err != nil {
		return nil, err
	}
	out.SubmitKey = submitKey

	if p.AutoRenewAccountID != "" {
		renew, err := hedera.AccountIDFromString(p.AutoRenewAccountID)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a valid account id", hederr.ErrIdentityResolution, p.AutoRenewAccountID)
		}
		out.AutoRenewAccount = &renew
	}
	if p.ExpirationTime != "" {
		exp, err := time.Parse(time.RFC3339, p.ExpirationTime)
		if err != nil {
			return nil, fmt.Errorf("%w: expiration_time must be ISO-8601, got %q", hederr.ErrValidation, p.ExpirationTime)
		}
		out.ExpirationTime = &exp
	}

	schedule, err := n.Scheduled(ctx, p.Scheduling)
	if err != nil {
		return nil, err
	}
	out.Schedule = schedule
	return out, nil
}

func (n *Normaliser) DeleteTopic(ctx context.Context, p params.DeleteTopic) (*TopicDelete, error) {
	topicID, err := hedera.TopicIDFromString(p.TopicID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid topic id", hederr.ErrValidation, p.TopicID)
	}
	schedule, err := n.Scheduled(ctx, p.Scheduling)
	if err != nil {
		return nil, err
	}
	return &TopicDelete{
		TopicID:  topicID,
		TxMemo:   truncateMemo(p.TransactionMemo),
		Schedule: schedule,
	}, nil
}

func (n *Normaliser) SubmitTopicMessage(ctx context.Context, p params.SubmitTopicMessage) (*TopicMessageSubmit, error) {
	topicID, err := hedera.TopicIDFromString(p.TopicID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid topic id", hederr.ErrValidation, p.TopicID)
	}
	schedule, err := n.Scheduled(ctx, p.Scheduling)
	if err != nil {
		return nil, err
	}
	return &TopicMessageSubmit{
		TopicID:  topicID,
		Message:  p.Message,
		TxMemo:   truncateMemo(p.TransactionMemo),
		Schedule: schedule,
	}, nil
}
