// Package resolve turns loosely-specified identities from tool calls
// into concrete Hedera entities: account ids default to the configured
// operator, and key parameters accept a public key string, a boolean
// ("use my key"), or nothing at all.
package resolve

import (
	"context"
	"fmt"
	"regexp"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashpilot/hashpilot/internal/config"
	"github.com/hashpilot/hashpilot/internal/hederr"
	"github.com/hashpilot/hashpilot/internal/mirror"
)

var accountIDPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// IsHederaAddress reports whether s looks like a shard.realm.num entity id.
func IsHederaAddress(s string) bool {
	return accountIDPattern.MatchString(s)
}

// Resolver fills in identities that tool calls leave implicit.
type Resolver struct {
	cctx        config.Context
	operatorKey *hedera.PublicKey
	mirror      mirror.Service
}

// New builds a Resolver. operatorKey may be nil when no operator key is
// configured (read-only or return-bytes setups).
func New(cctx config.Context, operatorKey *hedera.PublicKey, svc mirror.Service) *Resolver {
	return &Resolver{cctx: cctx, operatorKey: operatorKey, mirror: svc}
}

// Account resolves an optionally-explicit account id. An empty value falls
// back to the configured operator account.
func (r *Resolver) Account(explicit string) (hedera.AccountID, error) {
	id := explicit
	if id == "" {
		id = r.cctx.AccountID
	}
	if id == "" {
		return hedera.AccountID{}, fmt.Errorf("%w: no account id given and no operator configured", hederr.ErrIdentityResolution)
	}
	acct, err := hedera.AccountIDFromString(id)
	if err != nil {
		return hedera.AccountID{}, fmt.Errorf("%w: %q is not a valid account id", hederr.ErrIdentityResolution, id)
	}
	return acct, nil
}

// AccountString is Account for call sites that keep the id textual.
func (r *Resolver) AccountString(explicit string) (string, error) {
	acct, err := r.Account(explicit)
	if err != nil {
		return "", err
	}
	return acct.String(), nil
}

// DefaultPublicKey returns the key that signs for the current identity:
// the configured operator key when present, otherwise the account key
// published on the mirror node.
func (r *Resolver) DefaultPublicKey(ctx context.Context) (hedera.PublicKey, error) {
	if r.operatorKey != nil {
		return *r.operatorKey, nil
	}
	if r.cctx.AccountID == "" {
		return hedera.PublicKey{}, fmt.Errorf("%w: no operator key and no account to look up", hederr.ErrIdentityResolution)
	}
	return r.AccountPublicKey(ctx, r.cctx.AccountID)
}

// AccountPublicKey reads an account's key from the mirror node. When the
// mirror lookup fails or the account has no single parseable key, it falls
// back to the operator key if one is configured.
func (r *Resolver) AccountPublicKey(ctx context.Context, accountID string) (hedera.PublicKey, error) {
	info, err := r.mirror.GetAccount(ctx, accountID)
	if err == nil && info.Key != nil {
		key, kerr := PublicKeyFromMirror(*info.Key)
		if kerr == nil {
			return key, nil
		}
		err = kerr
	} else if err == nil {
		err = fmt.Errorf("account %s has no key on the mirror node", accountID)
	}
	if r.operatorKey != nil {
		return *r.operatorKey, nil
	}
	return hedera.PublicKey{}, fmt.Errorf("%w: %v", hederr.ErrKeyParse, err)
}

// PublicKeyFromMirror decodes a mirror node key descriptor.
func PublicKeyFromMirror(key mirror.Key) (hedera.PublicKey, error) {
	switch key.Type {
	case "ED25519":
		return hedera.PublicKeyFromStringEd25519(key.Key)
	case "ECDSA_SECP256K1":
		return hedera.PublicKeyFromStringECDSA(key.Key)
	default:
		return hedera.PublicKey{}, fmt.Errorf("unsupported key type %q", key.Type)
	}
}

// ParsePublicKey parses a user-supplied public key string, trying ed25519
// first, then ECDSA, then the generic parser.
func ParsePublicKey(s string) (hedera.PublicKey, error) {
	if key, err := hedera.PublicKeyFromStringEd25519(s); err == nil {
		return key, nil
	}
	if key, err := hedera.PublicKeyFromStringECDSA(s); err == nil {
		return key, nil
	}
	key, err := hedera.PublicKeyFromString(s)
	if err != nil {
		return hedera.PublicKey{}, fmt.Errorf("%w: %q", hederr.ErrKeyParse, s)
	}
	return key, nil
}

// Key resolves a key parameter. Unset and false mean "no key"; true means
// the caller's own key; a string is parsed as a public key.
func (r *Resolver) Key(ctx context.Context, in KeyInput) (hedera.Key, error) {
	switch {
	case !in.IsSet() || in.IsFalse():
		return nil, nil
	case in.IsTrue():
		key, err := r.DefaultPublicKey(ctx)
		if err != nil {
			return nil, err
		}
		return key, nil
	default:
		key, err := ParsePublicKey(in.String())
		if err != nil {
			return nil, err
		}
		return key, nil
	}
}
