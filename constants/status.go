package constants

// BatchStatus is the per-document outcome of a batch run.
type BatchStatus string

// Stable values (logged and stored as these exact strings).
const (
	BatchStatusProcessed  BatchStatus = "PROCESSED"  // extracted and handed downstream
	BatchStatusDuplicate  BatchStatus = "DUPLICATE"  // fingerprint already seen
	BatchStatusIncomplete BatchStatus = "INCOMPLETE" // processed but missing mandatory fields
	BatchStatusFailed     BatchStatus = "FAILED"     // acquisition or downstream failure
)
