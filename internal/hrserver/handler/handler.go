// Package handler exposes the HTTP handlers for the HR server.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/hr-center/pkg/errors"
	"github.com/kart-io/hr-center/pkg/validator"
)

// bindAndValidate decodes the JSON body into obj and runs struct
// validation. The returned error is ready to be written to the client.
func bindAndValidate(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return errors.ErrBadRequest.WithMessage(err.Error())
	}
	if verrs := validator.StructTranslated(obj); verrs != nil && verrs.HasErrors() {
		return errors.ErrValidationFailed.WithMessage(verrs.Error())
	}
	return nil
}
