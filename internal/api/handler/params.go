package handler

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"hr-records/internal/dto"
	"hr-records/pkg/response"
)

// parseIDParam reads a positive integer path parameter. On failure it
// writes 400 and returns ok=false; the caller should return.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, dto.MsgInvalidID)
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the request body into obj. On failure it writes 400,
// or 413 when the body exceeded the configured limit.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, http.StatusRequestEntityTooLarge, dto.MsgBodyTooLarge)
			return false
		}
		response.BadRequest(c, dto.MsgInvalidBody)
		return false
	}
	return true
}

// validate runs v and writes 400 with the first failing rule's message.
func validate(c *gin.Context, v validation.Validatable) bool {
	if err := v.Validate(); err != nil {
		response.BadRequest(c, validationMessage(err))
		return false
	}
	return true
}

// validationMessage picks one message out of a (possibly nested) ozzo
// error. Field keys are visited in sorted order so the choice is stable.
func validationMessage(err error) string {
	var errs validation.Errors
	if errors.As(err, &errs) {
		keys := make([]string, 0, len(errs))
		for k := range errs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if errs[k] != nil {
				return validationMessage(errs[k])
			}
		}
	}
	var verr validation.Error
	if errors.As(err, &verr) {
		return verr.Message()
	}
	return dto.MsgInvalidBody
}
