package tasks

// TaskSchedulerInterface defines the interface for task scheduling
// operations. The scheduler owns a worker pool over a task queue and
// enqueues one scan task per watched company per interval.
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueScanPass() error
	EnqueueTask(task TaskInterface) error
}
