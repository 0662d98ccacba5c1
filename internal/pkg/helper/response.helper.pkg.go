package helper

import (
	"net/http"

	types "exchange-api/internal/common/type"
	"exchange-api/internal/pkg/logger"
)

// ParseResponse normalizes a service response before it is written to the
// client: defaults the message from the status code and logs server-side
// failures.
func ParseResponse(r *types.Response) *types.Response {
	if r.Code == 0 {
		r.Code = http.StatusOK
	}
	if r.Message == "" {
		r.Message = http.StatusText(r.Code)
	}

	if r.Error != nil && r.Code >= http.StatusInternalServerError {
		logger.Error.Printf("%d %s: %v", r.Code, r.Message, r.Error)
	}

	return r
}
