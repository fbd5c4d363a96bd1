package workflow

const (
	// Signal names
	StopSchedulerSignalName = "stop-scheduler"

	// Query names
	SchedulerStateQuery = "scheduler-state"
)

// StopSchedulerSignal asks the scheduler to finish after the current cycle.
type StopSchedulerSignal struct {
	Reason      string `json:"reason"`
	RequestedBy string `json:"requested_by"`
}
