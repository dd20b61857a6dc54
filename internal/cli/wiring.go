package cli

import (
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashpilot/hashpilot/internal/config"
	"github.com/hashpilot/hashpilot/internal/mirror"
	"github.com/hashpilot/hashpilot/internal/normalise"
	"github.com/hashpilot/hashpilot/internal/resolve"
	"github.com/hashpilot/hashpilot/internal/toolkit"
	"github.com/hashpilot/hashpilot/internal/tools"
)

// session is the assembled tool pipeline for one CLI invocation.
type session struct {
	cctx     config.Context
	mirror   mirror.Service
	registry *toolkit.Registry
	client   *hedera.Client
}

// newSession builds the mirror client, resolver, normaliser, executor,
// and tool registry from the loaded configuration. The SDK client is only
// created when operator credentials are present; return-bytes mode works
// without one.
func newSession(cfg *config.Config) (*session, error) {
	cctx := config.ContextFor(cfg)

	mirrorClient, err := mirror.NewClient(cctx.Network, cctx.MirrorBaseURL)
	if err != nil {
		return nil, err
	}

	var client *hedera.Client
	var operatorKey *hedera.PublicKey
	if cfg.HasOperator() {
		accountID, err := hedera.AccountIDFromString(cfg.OperatorAccountID)
		if err != nil {
			return nil, fmt.Errorf("invalid operator account id: %w", err)
		}
		privateKey, err := hedera.PrivateKeyFromString(cfg.OperatorKey)
		if err != nil {
			return nil, fmt.Errorf("invalid operator key: %w", err)
		}

		client, err = hedera.ClientForName(cctx.Network)
		if err != nil {
			return nil, fmt.Errorf("create client for %s: %w", cctx.Network, err)
		}
		client.SetOperator(accountID, privateKey)

		pub := privateKey.PublicKey()
		operatorKey = &pub
	}

	resolver := resolve.New(cctx, operatorKey, mirrorClient)
	normaliser := normalise.New(cctx, resolver, mirrorClient)
	executor := toolkit.NewClientExecutor(client, cctx.Mode)

	registry, err := tools.NewRegistry(tools.Deps{
		Normaliser: normaliser,
		Executor:   executor,
		Mirror:     mirrorClient,
	})
	if err != nil {
		return nil, err
	}

	return &session{
		cctx:     cctx,
		mirror:   mirrorClient,
		registry: registry,
		client:   client,
	}, nil
}

// Close releases the SDK client's network connections.
func (s *session) Close() {
	if s.client != nil {
		_ = s.client.Close()
	}
}
