package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerStartsDisconnected(t *testing.T) {
	mgr := NewManager("mongodb://127.0.0.1:1", "testdb")

	assert.Equal(t, StateDisconnected, mgr.State())
	assert.False(t, mgr.IsConnected())

	coll, err := mgr.Collection("certificates")
	assert.Nil(t, coll)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestConnStateString(t *testing.T) {
	assert.Equal(t, "disconnected", StateDisconnected.String())
	assert.Equal(t, "connecting", StateConnecting.String())
	assert.Equal(t, "connected", StateConnected.String())
}

func TestShutdownWithoutClient(t *testing.T) {
	mgr := NewManager("mongodb://127.0.0.1:1", "testdb")
	assert.NoError(t, mgr.Shutdown(context.Background()))
}
