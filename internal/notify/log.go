package notify

import "log"

// LogNotifier writes notifications to the process log. Used in quiet mode
// instead of desktop banners.
type LogNotifier struct{}

func (LogNotifier) Send(n Notification) error {
	log.Printf("[notify] %s: %s", n.Title, n.Message)
	return nil
}
