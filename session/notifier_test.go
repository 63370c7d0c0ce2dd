package session

import (
	"io"
	"log/slog"
	"sync"
)

// sentEvent is one outbound notification captured by fakeNotifier. The
// audience is "teacher", "students", "all" or a connection id.
type sentEvent struct {
	audience string
	event    string
	data     any
}

type fakeNotifier struct {
	mu     sync.Mutex
	sent   []sentEvent
	closed []string
}

func (f *fakeNotifier) SendToTeacher(event string, data any)  { f.record("teacher", event, data) }
func (f *fakeNotifier) SendToStudents(event string, data any) { f.record("students", event, data) }
func (f *fakeNotifier) SendToAll(event string, data any)      { f.record("all", event, data) }

func (f *fakeNotifier) SendToConnection(connID, event string, data any) {
	f.record(connID, event, data)
}

func (f *fakeNotifier) CloseConnection(connID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = append(f.closed, connID)
}

func (f *fakeNotifier) record(audience, event string, data any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentEvent{audience: audience, event: event, data: data})
}

// byEvent returns every captured notification with the given event name.
func (f *fakeNotifier) byEvent(event string) []sentEvent {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []sentEvent
	for _, e := range f.sent {
		if e.event == event {
			out = append(out, e)
		}
	}
	return out
}

// last returns the most recent notification with the given event name.
func (f *fakeNotifier) last(event string) (sentEvent, bool) {
	evts := f.byEvent(event)
	if len(evts) == 0 {
		return sentEvent{}, false
	}
	return evts[len(evts)-1], true
}

func (f *fakeNotifier) closedConns() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.closed...)
}

func newTestSession() (*Session, *fakeNotifier) {
	n := &fakeNotifier{}
	return New(n, slog.New(slog.NewTextHandler(io.Discard, nil))), n
}
