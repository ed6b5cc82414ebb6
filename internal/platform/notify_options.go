package platform

import (
	"image"
	"time"
)

// AppName identifies the application to the host notification service.
const AppName = "Paintbucket"

// DefaultTimeout is how long a notification stays on screen when Options
// leaves Timeout unset.
const DefaultTimeout = 5 * time.Second

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image shown with the
	// notification if the platform supports it.
	IconPath string
	// Image is sent inline where the platform accepts pixel data, so the
	// notification service never has to read a file after Notify returns.
	Image image.Image
	// Transient notifications are not kept in the notification history.
	Transient bool
	Timeout   time.Duration
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}
