package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"adcraft/creative-api/internal/utils/platformerrors"
)

// ErrorResponse is the JSON error body. Error carries the human-readable
// detail, including the failing generation stage when the domain layer names
// one.
type ErrorResponse struct {
	Code          string `json:"code"` // UUID from PlatformError
	Error         string `json:"error"`
	Message       string `json:"message,omitempty"`
	ErrorInstance error  `json:"-"`
	RequestID     string `json:"request_id,omitempty"`
}

// HandleError maps a platform error onto its HTTP status and writes the
// error body. Anything else becomes an opaque 500 carrying fallback.
func HandleError(c *gin.Context, err error, fallback string) {
	var perr *platformerrors.PlatformError
	if !errors.As(err, &perr) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Error:         fallback,
			Message:       fallback,
			ErrorInstance: err,
		})
		return
	}

	detail := perr.Message
	if detail == "" {
		detail = fallback
	}
	writeError(c, perr, detail)
}

// HandleNewError creates a typed error at the route layer and writes it.
func HandleNewError(c *gin.Context, errorType platformerrors.ErrorType, message string, uuid string) {
	perr := platformerrors.NewError(c.Request.Context(), platformerrors.LayerRoute, errorType, message, nil, uuid)
	writeError(c, perr, message)
}

func writeError(c *gin.Context, perr *platformerrors.PlatformError, detail string) {
	c.AbortWithStatusJSON(platformerrors.ErrorTypeToHTTPStatus(perr.GetErrorType()), ErrorResponse{
		Code:          perr.GetUUID(),
		Error:         detail,
		Message:       detail,
		ErrorInstance: perr,
		RequestID:     perr.GetRequestID(),
	})
}
