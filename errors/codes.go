package errors

// ErrorCode identifies an application error category. Codes are stable and
// map one-to-one onto the HTTP statuses used by the API layer.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK          ErrorCode = 200
	ErrorCode_INVALID_ARGUMENT ErrorCode = 40001
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 40002
	ErrorCode_NOT_FOUND        ErrorCode = 40401
	ErrorCode_INTERNAL         ErrorCode = 50001
	ErrorCode_DB_QUERY_FAILED  ErrorCode = 50002
	ErrorCode_DB_TX_FAILED     ErrorCode = 50003
	ErrorCode_CACHE_FAILED     ErrorCode = 50004
)

// String returns a human-readable name for the code.
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "OK"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_INVALID_PAYLOAD:
		return "INVALID_PAYLOAD"
	case ErrorCode_NOT_FOUND:
		return "NOT_FOUND"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_DB_QUERY_FAILED:
		return "DB_QUERY_FAILED"
	case ErrorCode_DB_TX_FAILED:
		return "DB_TX_FAILED"
	case ErrorCode_CACHE_FAILED:
		return "CACHE_FAILED"
	default:
		return "UNKNOWN"
	}
}
