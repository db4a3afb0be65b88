package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	sent []Notification
	err  error
}

func (r *recordingNotifier) Send(n Notification) error {
	r.sent = append(r.sent, n)
	return r.err
}

func TestFanoutDeliversToAllBackends(t *testing.T) {
	first := &recordingNotifier{}
	second := &recordingNotifier{}
	fanout := NewFanout(first, second)

	n := Notification{Title: "Time Tracker", Message: "hello"}
	require.NoError(t, fanout.Send(n))

	assert.Equal(t, []Notification{n}, first.sent)
	assert.Equal(t, []Notification{n}, second.sent)
}

func TestFanoutContinuesAfterBackendFailure(t *testing.T) {
	failing := &recordingNotifier{err: errors.New("unreachable")}
	working := &recordingNotifier{}
	fanout := NewFanout(failing, working)

	n := Notification{Title: "Time Tracker", Message: "hello"}
	require.NoError(t, fanout.Send(n))

	assert.Len(t, failing.sent, 1)
	assert.Len(t, working.sent, 1)
}

func TestFanoutWithNoBackends(t *testing.T) {
	require.NoError(t, NewFanout().Send(Notification{Title: "Time Tracker"}))
}
