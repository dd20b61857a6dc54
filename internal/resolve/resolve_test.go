package resolve

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashpilot/hashpilot/internal/config"
	"github.com/hashpilot/hashpilot/internal/hederr"
	"github.com/hashpilot/hashpilot/internal/mirror"
	"github.com/hashpilot/hashpilot/internal/testutil"
)

func newEd25519Key(t *testing.T) hedera.PrivateKey {
	t.Helper()
	key, err := hedera.PrivateKeyGenerateEd25519()
	require.NoError(t, err)
	return key
}

func TestIsHederaAddress(t *testing.T) {
	assert.True(t, IsHederaAddress("0.0.1234"))
	assert.True(t, IsHederaAddress("1.2.3"))
	assert.False(t, IsHederaAddress("0.0"))
	assert.False(t, IsHederaAddress("0x00000000000000000000000000000000000004d2"))
	assert.False(t, IsHederaAddress("0.0.1234@1700000000.5"))
	assert.False(t, IsHederaAddress(""))
}

func TestResolverAccount(t *testing.T) {
	cctx := config.Context{Mode: config.ModeAutonomous, AccountID: "0.0.1002"}
	r := New(cctx, nil, &testutil.FakeMirror{})

	t.Run("explicit id wins", func(t *testing.T) {
		acct, err := r.Account("0.0.5005")
		require.NoError(t, err)
		assert.Equal(t, "0.0.5005", acct.String())
	})

	t.Run("falls back to operator", func(t *testing.T) {
		acct, err := r.Account("")
		require.NoError(t, err)
		assert.Equal(t, "0.0.1002", acct.String())
	})

	t.Run("no id anywhere", func(t *testing.T) {
		bare := New(config.Context{}, nil, &testutil.FakeMirror{})
		_, err := bare.Account("")
		assert.ErrorIs(t, err, hederr.ErrIdentityResolution)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := r.Account("not-an-id")
		assert.ErrorIs(t, err, hederr.ErrIdentityResolution)
	})
}

func TestParsePublicKey(t *testing.T) {
	t.Run("ed25519", func(t *testing.T) {
		pub := newEd25519Key(t).PublicKey()
		got, err := ParsePublicKey(pub.String())
		require.NoError(t, err)
		assert.Equal(t, pub.String(), got.String())
	})

	t.Run("ecdsa", func(t *testing.T) {
		priv, err := hedera.PrivateKeyGenerateEcdsa()
		require.NoError(t, err)
		got, perr := ParsePublicKey(priv.PublicKey().String())
		require.NoError(t, perr)
		assert.Equal(t, priv.PublicKey().String(), got.String())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParsePublicKey("zzzz")
		assert.ErrorIs(t, err, hederr.ErrKeyParse)
	})
}

func TestPublicKeyFromMirror(t *testing.T) {
	pub := newEd25519Key(t).PublicKey()
	raw := strings.TrimPrefix(pub.StringRaw(), "0x")

	got, err := PublicKeyFromMirror(mirror.Key{Type: "ED25519", Key: raw})
	require.NoError(t, err)
	assert.Equal(t, pub.String(), got.String())

	_, err = PublicKeyFromMirror(mirror.Key{Type: "ProtobufEncoded", Key: "0a00"})
	assert.ErrorContains(t, err, "unsupported key type")
}

func TestResolverKey(t *testing.T) {
	opPub := newEd25519Key(t).PublicKey()
	cctx := config.Context{AccountID: "0.0.1002"}
	r := New(cctx, &opPub, &testutil.FakeMirror{})
	ctx := context.Background()

	t.Run("unset means no key", func(t *testing.T) {
		key, err := r.Key(ctx, KeyInput{})
		require.NoError(t, err)
		assert.Nil(t, key)
	})

	t.Run("false means no key", func(t *testing.T) {
		key, err := r.Key(ctx, KeyBool(false))
		require.NoError(t, err)
		assert.Nil(t, key)
	})

	t.Run("true means operator key", func(t *testing.T) {
		key, err := r.Key(ctx, KeyBool(true))
		require.NoError(t, err)
		require.NotNil(t, key)
		pub, ok := key.(hedera.PublicKey)
		require.True(t, ok)
		assert.Equal(t, opPub.String(), pub.String())
	})

	t.Run("string is parsed", func(t *testing.T) {
		other := newEd25519Key(t).PublicKey()
		key, err := r.Key(ctx, KeyString(other.String()))
		require.NoError(t, err)
		pub, ok := key.(hedera.PublicKey)
		require.True(t, ok)
		assert.Equal(t, other.String(), pub.String())
	})

	t.Run("bad string", func(t *testing.T) {
		_, err := r.Key(ctx, KeyString("not-a-key"))
		assert.ErrorIs(t, err, hederr.ErrKeyParse)
	})
}

func TestDefaultPublicKeyMirrorFallback(t *testing.T) {
	pub := newEd25519Key(t).PublicKey()
	raw := pub.StringRaw()
	fm := &testutil.FakeMirror{
		Accounts: map[string]*mirror.AccountInfo{
			"0.0.1002": {Account: "0.0.1002", Key: &mirror.Key{Type: "ED25519", Key: raw}},
		},
	}
	r := New(config.Context{AccountID: "0.0.1002"}, nil, fm)

	got, err := r.DefaultPublicKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, pub.String(), got.String())
}

func TestAccountPublicKeyOperatorFallback(t *testing.T) {
	opPub := newEd25519Key(t).PublicKey()
	r := New(config.Context{AccountID: "0.0.1002"}, &opPub, &testutil.FakeMirror{})

	// Account unknown to the mirror: fall back to the operator key.
	got, err := r.AccountPublicKey(context.Background(), "0.0.4242")
	require.NoError(t, err)
	assert.Equal(t, opPub.String(), got.String())
}

func TestKeyInputJSON(t *testing.T) {
	type payload struct {
		AdminKey KeyInput `json:"admin_key"`
	}

	t.Run("absent", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.AdminKey.IsSet())
	})

	t.Run("null", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"admin_key": null}`), &p))
		assert.False(t, p.AdminKey.IsSet())
	})

	t.Run("string", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"admin_key": "302a300506"}`), &p))
		assert.True(t, p.AdminKey.IsSet())
		assert.Equal(t, "302a300506", p.AdminKey.String())
	})

	t.Run("bool", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"admin_key": true}`), &p))
		assert.True(t, p.AdminKey.IsTrue())
	})

	t.Run("number rejected", func(t *testing.T) {
		var p payload
		err := json.Unmarshal([]byte(`{"admin_key": 7}`), &p)
		assert.ErrorContains(t, err, "string or a boolean")
	})

	t.Run("round trip", func(t *testing.T) {
		out, err := json.Marshal(payload{AdminKey: KeyBool(true)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"admin_key": true}`, string(out))
	})
}
