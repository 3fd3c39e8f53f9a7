package service

// Broadcaster pushes attempt updates to live clients (avoids import cycle with ws)
type Broadcaster interface {
	BroadcastToAttempt(attemptID string, msgType string, payload interface{})
}
