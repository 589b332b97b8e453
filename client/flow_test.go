package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func availabilityServer(t *testing.T, available bool, hits *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		body := `{"success":true,"data":{"available":false}}`
		if available {
			body = `{"success":true,"data":{"available":true}}`
		}
		_, _ = w.Write([]byte(body))
	}))
}

func TestFlowRejectsMissingDatesLocally(t *testing.T) {
	var hits int32
	ts := availabilityServer(t, true, &hits)
	defer ts.Close()

	flow := NewAvailabilityFlow(New(ts.URL, NewSessionStore()), 1)

	state, err := flow.Check(context.Background())
	assert.ErrorIs(t, err, ErrFlowDatesRequired)
	assert.Equal(t, StateInput, state)
	// nothing went over the wire
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestFlowAvailable(t *testing.T) {
	ts := availabilityServer(t, true, nil)
	defer ts.Close()

	flow := NewAvailabilityFlow(New(ts.URL, NewSessionStore()), 1)
	flow.SetDates("2026-09-10", "2026-09-12")

	state, err := flow.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateAvailable, state)
}

func TestFlowFullThenChangeDatesRetainsDates(t *testing.T) {
	ts := availabilityServer(t, false, nil)
	defer ts.Close()

	flow := NewAvailabilityFlow(New(ts.URL, NewSessionStore()), 1)
	flow.SetDates("2026-09-10", "2026-09-12")

	state, err := flow.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateFull, state)

	flow.ChangeDates()
	assert.Equal(t, StateInput, flow.State())

	// the chosen dates survive the reset
	in, out := flow.Dates()
	assert.Equal(t, "2026-09-10", in)
	assert.Equal(t, "2026-09-12", out)
}

func TestFlowServerErrorFallsBackToInput(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"availability check failed"}`))
	}))
	defer ts.Close()

	flow := NewAvailabilityFlow(New(ts.URL, NewSessionStore()), 1)
	flow.SetDates("2026-09-10", "2026-09-12")

	state, err := flow.Check(context.Background())
	assert.Error(t, err)
	assert.Equal(t, StateInput, state)
}

func TestFlowBookRequiresConfirmedAvailability(t *testing.T) {
	ts := availabilityServer(t, true, nil)
	defer ts.Close()

	store := NewSessionStore()
	store.Set(Session{Access: "tok"})
	flow := NewAvailabilityFlow(New(ts.URL, store), 1)
	flow.SetDates("2026-09-10", "2026-09-12")

	_, err := flow.Book(context.Background(), 2, 1)
	assert.Error(t, err)

	_, err = flow.Check(context.Background())
	require.NoError(t, err)

	// changing dates invalidates the earlier confirmation
	flow.ChangeDates()
	_, err = flow.Book(context.Background(), 2, 1)
	assert.Error(t, err)
}
