package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldArea            = "area"
	FieldChannel         = "channel"
	FieldChannels        = "channels"
	FieldChatID          = "chat-id"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldListings        = "listings"
	FieldMessageID       = "message-id"
	FieldPlatform        = "platform"
	FieldPlatforms       = "platforms"
	FieldReason          = "reason"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseSize    = "response-size"
	FieldResponseStatus  = "response-status"
	FieldSkipped         = "skipped"
	FieldSlug            = "slug"
	FieldStack           = "stack"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
