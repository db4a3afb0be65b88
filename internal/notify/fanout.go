package notify

import "log"

// Fanout delivers each notification to every backend. A failing backend is
// logged and does not stop delivery to the others.
type Fanout struct {
	backends []Notifier
}

func NewFanout(backends ...Notifier) *Fanout {
	return &Fanout{backends: backends}
}

func (f *Fanout) Send(n Notification) error {
	for _, b := range f.backends {
		if err := b.Send(n); err != nil {
			log.Printf("notify: %v", err)
		}
	}
	return nil
}
