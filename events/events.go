// Package events names every message exchanged over the WebSocket transport.
package events

// Inbound events (client -> server).
const (
	TeacherJoin   = "teacher:join"
	StudentJoin   = "student:join"
	CreatePoll    = "teacher:create-poll"
	StartPoll     = "teacher:start-poll"
	SubmitAnswer  = "student:submit-answer"
	RemoveStudent = "teacher:remove-student"
	EndPoll       = "teacher:end-poll"

	// ChatMessage flows both ways: clients send it and the server
	// re-broadcasts it to everyone with a timestamp added.
	ChatMessage = "chat:message"
)

// Outbound events (server -> client).
const (
	TeacherJoined       = "teacher:joined"
	StudentJoined       = "student:joined"
	StudentConnected    = "student:connected"
	StudentDisconnected = "student:disconnected"
	StudentRemoved      = "student:removed"
	StudentKicked       = "student:kicked"
	PollCreated         = "poll:created"
	PollStarted         = "poll:started"
	PollResultsUpdated  = "poll:results-updated"
	PollEnded           = "poll:ended"
	Error               = "error"
)
