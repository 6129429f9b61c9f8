package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldRequestID     = "request_id"
	FieldClientIP      = "client_ip"
	FieldMethod        = "method"
	FieldPath          = "path"
	FieldQuery         = "query"
	FieldStatusCode    = "status_code"
	FieldDuration      = "duration_ms"
	FieldDurationHuman = "duration_human"
	FieldUserAgent     = "user_agent"
	FieldReferer       = "referer"
	FieldSuccess       = "success"
	FieldError         = "error"
	FieldOperation     = "operation"
	FieldProjectID     = "project_id"
	FieldProjectName   = "project_name"
	FieldTransactionID = "transaction_id"
	FieldQuotationID   = "quotation_id"
	FieldMilestoneID   = "milestone_id"
	FieldActionItemID  = "action_item_id"
	FieldAmountPaise   = "amount_paise"
	FieldTxnType       = "transaction_type"
	FieldCollection    = "collection"
	FieldMirrorRef     = "mirror_ref"
	FieldBlobPath      = "blob_path"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentLedger    = "ledger"
	ComponentStorage   = "storage"
	ComponentBlob      = "blob"
	ComponentExport    = "export"
	ComponentAMQP      = "amqp"
	ComponentWorker    = "worker"
	ComponentSheets    = "sheets"
	ComponentCache     = "cache"
	ComponentSecurity  = "security"
	ComponentRateLimit = "rate_limit"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpRead     = "read"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpList     = "list"
	OpAppend   = "append"
	OpMirror   = "mirror"
	OpExport   = "export"
	OpUpload   = "upload"
	OpValidate = "validate"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)
