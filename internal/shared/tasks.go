package shared

// Asynq task types and queue names shared by the API (producer) and the
// worker (consumer).
const (
	TypeContactNotify = "contact:notify"
	TypeUnreadDigest  = "contact:unread_digest"

	QueueNotifications = "notifications"
)

// ContactNotifyPayload describes a contact-form submission to announce by
// email. The message row is already committed when this task is enqueued;
// delivery failures never affect the stored message.
type ContactNotifyPayload struct {
	MessageID string `json:"message_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// UnreadDigestPayload triggers the daily unread-messages summary email.
type UnreadDigestPayload struct{}
