package constants

// InvoiceStatus is the processing lifecycle of an invoice record.
type InvoiceStatus string

// Stable values (store these exact strings in DB).
const (
	InvoiceStatusPending    InvoiceStatus = "PENDING"    // created, extraction not started
	InvoiceStatusProcessing InvoiceStatus = "PROCESSING" // extraction in flight
	InvoiceStatusCompleted  InvoiceStatus = "COMPLETED"  // extraction reconciled
	InvoiceStatusFailed     InvoiceStatus = "FAILED"     // terminal extraction failure
	InvoiceStatusArchived   InvoiceStatus = "ARCHIVED"   // explicit user action
)

// ReimbursementStatus is the business-process axis, tracked independently of InvoiceStatus.
type ReimbursementStatus string

const (
	ReimbursementUnsubmitted ReimbursementStatus = "UNSUBMITTED"
	ReimbursementSubmitted   ReimbursementStatus = "SUBMITTED"
	ReimbursementReimbursed  ReimbursementStatus = "REIMBURSED"
)

// TaskStatus is the canonical status for rows in extraction_tasks.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusCompleted  TaskStatus = "COMPLETED" // terminal
	TaskStatusFailed     TaskStatus = "FAILED"    // terminal once the retry budget is spent
	TaskStatusRetrying   TaskStatus = "RETRYING"  // failed, re-start scheduled
	TaskStatusCancelled  TaskStatus = "CANCELLED" // terminal
)

// Terminal reports whether no transition out of s is ever allowed.
// FAILED is not listed: it is terminal only when retries are exhausted,
// and that check belongs to the task machine.
func (s TaskStatus) Terminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusCancelled
}

// Enumerations for schema validation.
var (
	InvoiceStatuses = []string{
		string(InvoiceStatusPending),
		string(InvoiceStatusProcessing),
		string(InvoiceStatusCompleted),
		string(InvoiceStatusFailed),
		string(InvoiceStatusArchived),
	}
	ReimbursementStatuses = []string{
		string(ReimbursementUnsubmitted),
		string(ReimbursementSubmitted),
		string(ReimbursementReimbursed),
	}
	TaskStatuses = []string{
		string(TaskStatusPending),
		string(TaskStatusProcessing),
		string(TaskStatusCompleted),
		string(TaskStatusFailed),
		string(TaskStatusRetrying),
		string(TaskStatusCancelled),
	}
)
