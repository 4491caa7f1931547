package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncBlogCreated is a no-op.
func (n *NoopRecorder) IncBlogCreated() {}

// IncBlogUpdated is a no-op.
func (n *NoopRecorder) IncBlogUpdated() {}

// IncBlogDeleted is a no-op.
func (n *NoopRecorder) IncBlogDeleted() {}

// IncUserRegistered is a no-op.
func (n *NoopRecorder) IncUserRegistered() {}

// IncLoginSucceeded is a no-op.
func (n *NoopRecorder) IncLoginSucceeded() {}

// IncLoginFailed is a no-op.
func (n *NoopRecorder) IncLoginFailed() {}
