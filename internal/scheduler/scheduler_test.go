package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/omarshaarawi/sleeperbot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReporter struct {
	week    int
	weekErr error
	err     error
}

func (r *stubReporter) Lineups(ctx context.Context, w io.Writer, opts service.LineupOptions) error {
	if r.err != nil {
		return r.err
	}
	fmt.Fprintf(w, "lineups %d", opts.Week)
	return nil
}

func (r *stubReporter) TrashTalk(ctx context.Context, w io.Writer, opts service.TrashTalkOptions) error {
	if r.err != nil {
		return r.err
	}
	fmt.Fprintf(w, "trash talk %d", opts.Week)
	return nil
}

func (r *stubReporter) GetCurrentWeek(ctx context.Context, sport string) (int, error) {
	return r.week, r.weekErr
}

type recordingNotifier struct {
	sent []string
	err  error
}

func (n *recordingNotifier) Name() string { return "recording" }

func (n *recordingNotifier) Send(ctx context.Context, text string) error {
	n.sent = append(n.sent, text)
	return n.err
}

func newTestScheduler(t *testing.T, r *stubReporter, n *recordingNotifier) *Scheduler {
	t.Helper()
	s, err := NewScheduler(r, n, "America/Chicago",
		service.LineupOptions{Week: 7},
		service.TrashTalkOptions{Week: 6},
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Stop() })
	return s
}

func TestScheduler_RegistersJobs(t *testing.T) {
	s := newTestScheduler(t, &stubReporter{}, &recordingNotifier{})

	require.NoError(t, s.Start())
	assert.ElementsMatch(t, []string{"trash_talk", "lineups"}, s.Jobs())
}

func TestScheduler_BadTimezoneFallsBackToUTC(t *testing.T) {
	s, err := NewScheduler(&stubReporter{}, &recordingNotifier{}, "Mars/Olympus", service.LineupOptions{}, service.TrashTalkOptions{})
	require.NoError(t, err)
	require.NoError(t, s.Stop())
}

func TestScheduler_SendTrashTalkUsesCurrentWeek(t *testing.T) {
	n := &recordingNotifier{}
	s := newTestScheduler(t, &stubReporter{week: 11}, n)

	s.sendTrashTalk()
	assert.Equal(t, []string{"trash talk 11"}, n.sent)
}

func TestScheduler_FallsBackToConfiguredWeek(t *testing.T) {
	n := &recordingNotifier{}
	s := newTestScheduler(t, &stubReporter{weekErr: errors.New("down")}, n)

	s.sendTrashTalk()
	s.sendLineups()
	assert.Equal(t, []string{"trash talk 6", "lineups 7"}, n.sent)
}

func TestScheduler_ReportErrorSendsNothing(t *testing.T) {
	n := &recordingNotifier{}
	s := newTestScheduler(t, &stubReporter{week: 3, err: errors.New("boom")}, n)

	s.sendTrashTalk()
	s.sendLineups()
	assert.Empty(t, n.sent)
}

func TestScheduler_NotifierErrorIsNotFatal(t *testing.T) {
	n := &recordingNotifier{err: errors.New("rate limited")}
	s := newTestScheduler(t, &stubReporter{week: 3}, n)

	s.sendLineups()
	assert.Equal(t, []string{"lineups 3"}, n.sent)
}
