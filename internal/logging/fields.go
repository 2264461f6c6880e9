package logging

// Standardized attribute keys shared across components so log lines stay
// machine-filterable.
const (
	FieldComponent = "component"
	FieldEventType = "event_type"
	FieldRequestID = "request_id"
	FieldCommand   = "command"
	FieldChatID    = "chat_id"
	FieldUserID    = "user_id"
	FieldErrorHint = "error_hint"
)
