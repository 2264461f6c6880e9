package ipc

// StatusRequest fetches daemon status.
type StatusRequest struct{}

// StatusResponse represents daemon runtime information.
type StatusResponse struct {
	Running     bool   `json:"running"`
	PID         int    `json:"pid"`
	BotUsername string `json:"bot_username"`
	Movies      int    `json:"movies"`
	Genres      int    `json:"genres"`
	LockPath    string `json:"lock_path"`
	SocketPath  string `json:"socket_path"`
	StorePath   string `json:"store_path"`
}

// StopRequest stops the daemon.
type StopRequest struct{}

// StopResponse indicates stop result.
type StopResponse struct {
	Stopped bool `json:"stopped"`
}

// AskRequest runs a command handler inside the daemon.
type AskRequest struct {
	Command  string `json:"command"`
	Argument string `json:"argument"`
}

// AskResponse carries the handler's reply text.
type AskResponse struct {
	Reply string `json:"reply"`
}

// SendTestRequest delivers a test message to a chat.
type SendTestRequest struct {
	ChatID int64 `json:"chat_id"`
}

// SendTestResponse reports delivery outcome.
type SendTestResponse struct {
	Sent    bool   `json:"sent"`
	Message string `json:"message"`
}
