package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// requestValidate checks the validate tags carried by the generated request models.
var requestValidate *validator.Validate

// fieldMessages holds the message reported for a failed rule, keyed by "<json field>.<tag>".
var fieldMessages = map[string]string{
	"listSizeA.min":  "List must have at least 1 element.",
	"listSizeB.min":  "List must have at least 1 element.",
	"listSizeA.max":  "List must have at most 10000000 elements.",
	"listSizeB.max":  "List must have at most 10000000 elements.",
	"iterations.min": "A benchmark must have at least 2 iterations.",
}

func init() {
	requestValidate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so messages match the request body.
	requestValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// validationMessages returns one "<field>: <message>" entry per invalid field,
// or nil if err is not a validation failure.
func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
			if fe.Param() != "" {
				msg = fmt.Sprintf("must satisfy %s=%s", fe.Tag(), fe.Param())
			}
		}
		msgs = append(msgs, fe.Field()+": "+msg)
	}
	return msgs
}
