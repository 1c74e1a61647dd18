package service

import "context"

// PushSender delivers push notifications to guardian devices. The concrete
// implementation is Firebase Cloud Messaging; a nil sender means push is not
// configured and delivery silently degrades to in-app notifications only.
type PushSender interface {
	// SendToDevice sends one notification to a single device token.
	SendToDevice(ctx context.Context, deviceToken, title, body string, data map[string]string) error

	// SendToDevices sends the same notification to up to 500 device tokens
	// and reports per-token failures. Tokens FCM rejects as unregistered are
	// returned so callers can clear them from profiles.
	SendToDevices(ctx context.Context, deviceTokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
