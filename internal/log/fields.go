package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldChannelID = "channel_id"
	FieldVideoID   = "video_id"
	FieldJobID     = "job_id"

	// Process / pipeline fields
	FieldComponent = "component"
	FieldStage     = "stage"
	FieldOutcome   = "outcome"

	// Content fields
	FieldExpression = "expression"
	FieldCategory   = "category"
	FieldStatus     = "status"
	FieldReason     = "reason"

	// Timing fields
	FieldSegments = "segments"
	FieldProfile  = "profile"
	FieldSeconds  = "seconds"
	FieldSeed     = "seed"

	// Path fields
	FieldPath    = "path"
	FieldBackend = "backend"
)
