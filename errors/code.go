package errors

// ErrorCode is a machine-readable application error code returned in API
// responses alongside the HTTP status.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_PERMISSION_DENIED ErrorCode = 1003
	ErrorCode_UNAUTHENTICATED   ErrorCode = 1004
	ErrorCode_FORBIDDEN         ErrorCode = 1005

	// Assessment analytics
	ErrorCode_INVALID_FILTER       ErrorCode = 2000
	ErrorCode_ORG_NOT_FOUND        ErrorCode = 2001
	ErrorCode_ASSESSMENT_NOT_FOUND ErrorCode = 2002
	ErrorCode_FETCH_FAILED         ErrorCode = 2003

	// Authentication
	ErrorCode_AUTH_INVALID_TOKEN  ErrorCode = 3000
	ErrorCode_AUTH_TOKEN_EXPIRED  ErrorCode = 3001
	ErrorCode_AUTH_USER_NOT_FOUND ErrorCode = 3002
)

// String returns the symbolic name of the error code
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "OK"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_NOT_FOUND:
		return "NOT_FOUND"
	case ErrorCode_PERMISSION_DENIED:
		return "PERMISSION_DENIED"
	case ErrorCode_UNAUTHENTICATED:
		return "UNAUTHENTICATED"
	case ErrorCode_FORBIDDEN:
		return "FORBIDDEN"
	case ErrorCode_INVALID_FILTER:
		return "INVALID_FILTER"
	case ErrorCode_ORG_NOT_FOUND:
		return "ORG_NOT_FOUND"
	case ErrorCode_ASSESSMENT_NOT_FOUND:
		return "ASSESSMENT_NOT_FOUND"
	case ErrorCode_FETCH_FAILED:
		return "FETCH_FAILED"
	case ErrorCode_AUTH_INVALID_TOKEN:
		return "AUTH_INVALID_TOKEN"
	case ErrorCode_AUTH_TOKEN_EXPIRED:
		return "AUTH_TOKEN_EXPIRED"
	case ErrorCode_AUTH_USER_NOT_FOUND:
		return "AUTH_USER_NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}
