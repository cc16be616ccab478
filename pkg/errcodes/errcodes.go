package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Rate lookup pipeline.
	InvalidArea      failure.ErrorCode = "InvalidArea"      // Area token not recognised
	FetchFailed      failure.ErrorCode = "FetchFailed"      // Non-2xx or transport failure
	EmptyResponse    failure.ErrorCode = "EmptyResponse"    // 2xx with an empty body
	ConfigNotFound   failure.ErrorCode = "ConfigNotFound"   // Config script or its marker is missing
	ConfigParseError failure.ErrorCode = "ConfigParseError" // Channel literal is not valid
	ChannelSkipped   failure.ErrorCode = "ChannelSkipped"   // Internal only, never surfaced
	NoData           failure.ErrorCode = "NoData"           // Run finished with zero platforms
	RequestInFlight  failure.ErrorCode = "RequestInFlight"
)
