package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// DesktopNotifier shows notification-center banners.
type DesktopNotifier struct {
	// Icon is an optional path to an icon file.
	Icon string
}

func (d *DesktopNotifier) Send(n Notification) error {
	if err := beeep.Notify(n.Title, n.Message, d.Icon); err != nil {
		return fmt.Errorf("desktop notification: %w", err)
	}
	return nil
}
