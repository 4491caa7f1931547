// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Blog lifecycle metrics
	IncBlogCreated()
	IncBlogUpdated()
	IncBlogDeleted()

	// Account metrics
	IncUserRegistered()
	IncLoginSucceeded()
	IncLoginFailed()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
