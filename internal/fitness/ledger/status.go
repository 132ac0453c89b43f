package ledger

// Status is the readiness of the in-memory session cache. Reads are served
// in any state (possibly empty), mutations only when the cache is ready.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)
