package worker

import (
	"github.com/spec-kit/constituent-office/internal/events"
	"github.com/spec-kit/constituent-office/internal/service"
)

// StartNotificationWorker attaches the notification emitter to the event
// stream.
func StartNotificationWorker(notificationService *service.NotificationService, dispatcher events.Dispatcher) {
	if notificationService == nil || dispatcher == nil {
		return
	}
	notificationService.Register(dispatcher)
}
