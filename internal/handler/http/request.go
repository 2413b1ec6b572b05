package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/unesleaf/unesleaf-server/internal/logger"
	"github.com/unesleaf/unesleaf-server/internal/utils"
)

// decodeAndValidate decodes the JSON request body into dst and runs the
// struct validation rules declared on it. On failure it writes the 400
// response itself and returns false, so handlers can simply return.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	log := logger.FromRequest(r)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON body", http.StatusBadRequest)
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		log.Err(err).Msg("request body failed validation")
		utils.WriteError(w, validationMessage(err), http.StatusBadRequest)
		return false
	}

	return true
}

// validationMessage turns the first field violation into a short
// client-facing message. Field names come out in their JSON spelling via
// the struct tags registered on the validator.
func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return "invalid request body"
	}

	fe := fieldErrors[0]
	switch fe.Tag() {
	case "required":
		return "missing required field: " + fe.Field()
	case "email":
		return "invalid email address"
	case "min":
		return fe.Field() + " is too short"
	case "max":
		return fe.Field() + " is too long"
	case "gte", "lte":
		return fe.Field() + " is out of range"
	default:
		return "invalid value for field: " + fe.Field()
	}
}
