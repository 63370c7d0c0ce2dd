package ws

import "encoding/json"

// ClientEnvelope frames every inbound message: an event name plus an
// event-specific payload left raw until the gateway knows its type.
type ClientEnvelope struct {
	Event string          `json:"event" validate:"required"`
	Data  json.RawMessage `json:"data"`
}

// ServerMessage frames every outbound message.
type ServerMessage struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// StudentJoinPayload is the body of a student:join event.
type StudentJoinPayload struct {
	Name      string `json:"name" validate:"required"`
	SessionID string `json:"sessionId" validate:"required"`
}

// CreatePollPayload is the body of a teacher:create-poll event. Option texts
// are deliberately not de-duplicated or blank-checked; only the presence of
// a question and at least one option is enforced.
type CreatePollPayload struct {
	Question  string   `json:"question" validate:"required"`
	Options   []string `json:"options" validate:"required,min=1"`
	TimeLimit int      `json:"timeLimit"`
}

// SubmitAnswerPayload is the body of a student:submit-answer event. OptionID
// is a pointer because 0 is a valid option id.
type SubmitAnswerPayload struct {
	SessionID string `json:"sessionId" validate:"required"`
	OptionID  *int   `json:"optionId" validate:"required"`
}

// RemoveStudentPayload is the body of a teacher:remove-student event.
type RemoveStudentPayload struct {
	SessionID string `json:"sessionId" validate:"required"`
}

// ChatPayload is the body of an inbound chat:message event.
type ChatPayload struct {
	Sender     string `json:"sender" validate:"required"`
	Message    string `json:"message" validate:"required"`
	SenderType string `json:"senderType" validate:"required"`
}

// ChatBroadcast is the re-broadcast chat message with the server timestamp
// (unix milliseconds) added.
type ChatBroadcast struct {
	ChatPayload
	Timestamp int64 `json:"timestamp"`
}

// ErrorPayload carries the one typed error the server ever surfaces.
type ErrorPayload struct {
	Message string `json:"message"`
}
