package xerror

import "net/http"

const (
	CodeInternalError       = http.StatusInternalServerError
	CodeResourceUnavailable = http.StatusServiceUnavailable
	CodeInvalidParams       = http.StatusBadRequest
	CodeMalformedResource   = http.StatusUnprocessableEntity
	CodeDataNotExist        = http.StatusNotFound
)

var ErrMsgs = map[int]string{
	CodeInternalError:       "service internal error",
	CodeResourceUnavailable: "resource unavailable",
	CodeInvalidParams:       "invalid params",
	CodeMalformedResource:   "malformed resource",
	CodeDataNotExist:        "data not exist",
}
