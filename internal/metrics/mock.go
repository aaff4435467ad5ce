package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu             sync.Mutex
	reportRuns     map[string]int
	trashTalkLines map[string]int
	fetchFailures  map[string]int
	notifSent      map[string]int
	notifFailed    map[string]int
}

var _ Metrics = (*Mock)(nil)

func NewMock() *Mock {
	return &Mock{
		reportRuns:     make(map[string]int),
		trashTalkLines: make(map[string]int),
		fetchFailures:  make(map[string]int),
		notifSent:      make(map[string]int),
		notifFailed:    make(map[string]int),
	}
}

func (m *Mock) IncReportRuns(report string)      { m.inc(m.reportRuns, report) }
func (m *Mock) IncTrashTalkLines(kind string)    { m.inc(m.trashTalkLines, kind) }
func (m *Mock) IncFetchFailures(resource string) { m.inc(m.fetchFailures, resource) }
func (m *Mock) IncNotifSent(channel string)      { m.inc(m.notifSent, channel) }
func (m *Mock) IncNotifFailed(channel string)    { m.inc(m.notifFailed, channel) }

func (m *Mock) ReportRuns(report string) int      { return m.get(m.reportRuns, report) }
func (m *Mock) TrashTalkLines(kind string) int    { return m.get(m.trashTalkLines, kind) }
func (m *Mock) FetchFailures(resource string) int { return m.get(m.fetchFailures, resource) }
func (m *Mock) NotifSent(channel string) int      { return m.get(m.notifSent, channel) }
func (m *Mock) NotifFailed(channel string) int    { return m.get(m.notifFailed, channel) }

func (m *Mock) inc(counts map[string]int, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts[key]++
}

func (m *Mock) get(counts map[string]int, key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return counts[key]
}
