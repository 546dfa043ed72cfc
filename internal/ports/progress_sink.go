package ports

// ProgressSink receives pipeline stage events for a session so open pages
// can follow along while processing runs.
type ProgressSink interface {
	Publish(sessionID, stage string)
}
