package models

// Student is one roster entry. The ID is the client-supplied session id and
// stays stable across reconnects; ConnectionID is the transport binding and
// changes on every reconnect. Answered is nil while no poll is active and a
// per-poll boolean otherwise.
type Student struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ConnectionID string `json:"connectionId"`
	Connected    bool   `json:"connected"`
	Answered     *bool  `json:"answered"`
}
