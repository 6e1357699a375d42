package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/carousel/internal/notify"
	"github.com/llehouerou/carousel/internal/state"
)

type recordingNotifier struct {
	sent []notify.Notification
	err  error
}

func (r *recordingNotifier) Notify(n notify.Notification) (uint32, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.sent = append(r.sent, n)
	return uint32(len(r.sent)), nil
}

func (r *recordingNotifier) Close(uint32) error {
	return nil
}

func TestUpdate_SelectNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	m := newTestModel(t, state.NewMock(), 3).WithNotifier(notifier)
	m, _ = sendKey(t, m, "tab")

	m, cmd := sendKey(t, m, "enter")
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, NotifiedMsg{ID: 1}, msg)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Selected itemA", notifier.sent[0].Title)
	assert.Equal(t, "Item 1 of 3", notifier.sent[0].Body)

	// The next notification replaces the first
	m, _ = update(t, m, msg)
	_, cmd = sendKey(t, m, "enter")
	require.NotNil(t, cmd)
	cmd()
	require.Len(t, notifier.sent, 2)
	assert.Equal(t, uint32(1), notifier.sent[1].ReplacesID)
}

func TestUpdate_NotifyErrorIsLogged(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("no bus")}
	m := newTestModel(t, state.NewMock(), 3).WithNotifier(notifier)

	m, cmd := update(t, m, NotifiedMsg{Err: notifier.err})

	assert.Nil(t, cmd)
	assert.Empty(t, m.ErrorMsg, "notification failures stay out of the status line")
}

func TestUpdate_SelectWithoutNotifier(t *testing.T) {
	m := newTestModel(t, state.NewMock(), 3)
	m, _ = sendKey(t, m, "tab")

	_, cmd := sendKey(t, m, "enter")

	assert.Nil(t, cmd)
}
