package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"

	// Engine fields.
	FieldEntities = "entities"
	FieldEntity   = "entity"
	FieldReason   = "reason"
	FieldChunks   = "chunks"
	FieldLimit    = "limit"

	// Delivery fields.
	FieldChatID     = "chat_id"
	FieldChunk      = "chunk"
	FieldRequestID  = "request_id"
	FieldParseMode  = "parse_mode"
	FieldRetryAfter = "retry_after"
	FieldStatus     = "status"
	FieldAddr       = "addr"
	FieldURL        = "url"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
