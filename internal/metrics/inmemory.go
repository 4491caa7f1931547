package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	BlogsCreated    uint64 `json:"blogs_created"`
	BlogsUpdated    uint64 `json:"blogs_updated"`
	BlogsDeleted    uint64 `json:"blogs_deleted"`
	UsersRegistered uint64 `json:"users_registered"`
	LoginsSucceeded uint64 `json:"logins_succeeded"`
	LoginsFailed    uint64 `json:"logins_failed"`
}

// InMemoryRecorder stores counters in memory. It backs the debug metrics
// endpoint and the test suite.
type InMemoryRecorder struct {
	blogsCreated    uint64
	blogsUpdated    uint64
	blogsDeleted    uint64
	usersRegistered uint64
	loginsSucceeded uint64
	loginsFailed    uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		BlogsCreated:    atomic.LoadUint64(&m.blogsCreated),
		BlogsUpdated:    atomic.LoadUint64(&m.blogsUpdated),
		BlogsDeleted:    atomic.LoadUint64(&m.blogsDeleted),
		UsersRegistered: atomic.LoadUint64(&m.usersRegistered),
		LoginsSucceeded: atomic.LoadUint64(&m.loginsSucceeded),
		LoginsFailed:    atomic.LoadUint64(&m.loginsFailed),
	}
}

// IncBlogCreated increments the created-blog counter.
func (m *InMemoryRecorder) IncBlogCreated() {
	atomic.AddUint64(&m.blogsCreated, 1)
}

// IncBlogUpdated increments the updated-blog counter.
func (m *InMemoryRecorder) IncBlogUpdated() {
	atomic.AddUint64(&m.blogsUpdated, 1)
}

// IncBlogDeleted increments the deleted-blog counter.
func (m *InMemoryRecorder) IncBlogDeleted() {
	atomic.AddUint64(&m.blogsDeleted, 1)
}

// IncUserRegistered increments the registration counter.
func (m *InMemoryRecorder) IncUserRegistered() {
	atomic.AddUint64(&m.usersRegistered, 1)
}

// IncLoginSucceeded increments the successful-login counter.
func (m *InMemoryRecorder) IncLoginSucceeded() {
	atomic.AddUint64(&m.loginsSucceeded, 1)
}

// IncLoginFailed increments the failed-login counter.
func (m *InMemoryRecorder) IncLoginFailed() {
	atomic.AddUint64(&m.loginsFailed, 1)
}
