package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-foodie-storefront/backend"
)

type fixedTokens struct {
	token string
}

func (f *fixedTokens) Token() string { return f.token }

func newCart(t *testing.T, tokens backend.TokenSource, handler http.Handler) *Cart {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewCart(backend.New(srv.URL, tokens), tokens)
}

func TestFetchReplacesLocalStateWithServerCart(t *testing.T) {
	// The server applies its own pricing; the local mirror must take the
	// server subtotal even when it differs from a naive sum of the lines.
	cart := newCart(t, &fixedTokens{token: "tok"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"items":[
				{"_id":"line1","menuItem":{"_id":"m1","name":"Dosa"},"price":120,"quantity":2},
				{"_id":"line2","menuItem":{"_id":"m2","name":"Idli"},"price":60,"quantity":1}
			],
			"totalAmount":250
		}`))
	}))

	require.NoError(t, cart.Fetch(context.Background()))

	assert.Len(t, cart.Items(), 2)
	assert.Equal(t, 250.0, cart.Subtotal(), "server amount wins over 120*2+60")
	assert.Equal(t, 3, cart.Count())

	lineID, qty := cart.Quantity("m1")
	assert.Equal(t, "line1", lineID)
	assert.Equal(t, 2, qty)

	_, qty = cart.Quantity("unknown")
	assert.Zero(t, qty)
}

func TestMutationsRequireCredential(t *testing.T) {
	var calls atomic.Int32
	cart := newCart(t, &fixedTokens{}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"items":[],"totalAmount":0}`))
	}))

	assert.ErrorIs(t, cart.Fetch(context.Background()), ErrNoCredential)
	assert.ErrorIs(t, cart.Add(context.Background(), "m1", 1), ErrNoCredential)
	assert.ErrorIs(t, cart.Update(context.Background(), "line1", 2), ErrNoCredential)
	assert.ErrorIs(t, cart.Remove(context.Background(), "line1"), ErrNoCredential)

	assert.Zero(t, calls.Load(), "the guard fires before any request leaves")
	assert.Equal(t, "please login first", cart.Err())
}

func TestUpdateToZeroRoutesToRemove(t *testing.T) {
	var gotMethod, gotPath string
	cart := newCart(t, &fixedTokens{token: "tok"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"items":[],"totalAmount":0}`))
	}))

	require.NoError(t, cart.Update(context.Background(), "line1", 0))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/cart/remove/line1", gotPath)

	require.NoError(t, cart.Update(context.Background(), "line1", 3))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/cart/update/line1", gotPath)
}

func TestFailedMutationKeepsPreviousState(t *testing.T) {
	var fail atomic.Bool
	cart := newCart(t, &fixedTokens{token: "tok"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"Item is not available"}`))
			return
		}
		w.Write([]byte(`{"items":[{"_id":"line1","menuItem":{"_id":"m1","name":"Dosa"},"price":120,"quantity":1}],"totalAmount":120}`))
	}))

	require.NoError(t, cart.Fetch(context.Background()))
	fail.Store(true)

	err := cart.Add(context.Background(), "m2", 1)
	require.Error(t, err)
	assert.Equal(t, "Item is not available", cart.Err())
	assert.Len(t, cart.Items(), 1, "the mirror still shows the last good cart")
	assert.Equal(t, 120.0, cart.Subtotal())
}

func TestMutationsSetLoadingWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	cart := newCart(t, &fixedTokens{token: "tok"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte(`{"items":[],"totalAmount":0}`))
	}))
	require.False(t, cart.Loading())

	done := make(chan error, 1)
	go func() { done <- cart.Add(context.Background(), "m1", 1) }()

	require.Eventually(t, cart.Loading, time.Second, 2*time.Millisecond,
		"every networked mutation flips the loading flag")
	close(release)
	require.NoError(t, <-done)
	assert.False(t, cart.Loading())
}

func TestClearLocalDropsStateWithoutNetwork(t *testing.T) {
	var calls atomic.Int32
	cart := newCart(t, &fixedTokens{token: "tok"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"items":[{"_id":"line1","menuItem":{"_id":"m1","name":"Dosa"},"price":120,"quantity":1}],"totalAmount":120}`))
	}))

	require.NoError(t, cart.Fetch(context.Background()))
	before := calls.Load()

	cart.ClearLocal()

	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.Subtotal())
	assert.Equal(t, before, calls.Load())
}
