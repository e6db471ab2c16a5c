package v1

import (
	"encoding/json"
	"io"

	"go-resume-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const maxBodyBytes = 1 << 20

const errInvalidJSON = "Invalid JSON body."

// readObject decodes a JSON object body into dst and returns its keys.
func readObject(c *gin.Context, dst any) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		return nil, apperror.BadRequest(errInvalidJSON)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, apperror.BadRequest(errInvalidJSON)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return nil, apperror.BadRequest(errInvalidJSON)
	}
	return fields, nil
}
