package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldUserAgent  = "user_agent"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldUserID     = "user_id"
	FieldCategory   = "category"
	FieldSource     = "source"
	FieldModel      = "model"
)

// Component names
const (
	ComponentApp         = "app"
	ComponentHTTP        = "http"
	ComponentAuth        = "auth"
	ComponentExpense     = "expense"
	ComponentBudget      = "budget"
	ComponentAnalytics   = "analytics"
	ComponentCategorizer = "categorizer"
	ComponentStorage     = "storage"
	ComponentAI          = "ai"
)
