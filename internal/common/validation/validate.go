package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"

	"github.com/sellerdesk/go-fin-ledger/internal/models"
)

type ErrorValidateResponse struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e ErrorValidateResponse) Error() string {
	return e.Message
}

var (
	validate = validator.New()

	reDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerNoSpacesAtStartOrEnd()
	registerDate()
}

// ValidateStruct returns a *multierror.Error holding one ErrorValidateResponse
// per failed field, or nil. Messages come from models.MapErrors, looked up by
// "<Struct>.<field>_<tag>" first and "<field>_<tag>" second.
func ValidateStruct(toValidate interface{}) error {
	var errs *multierror.Error

	err := validate.Struct(toValidate)
	if err == nil {
		return nil
	}

	var invalidErr *validator.InvalidValidationError
	if errors.As(err, &invalidErr) {
		errs = multierror.Append(errs, ErrorValidateResponse{Message: err.Error()})
		return errs.ErrorOrNil()
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		for _, valErr := range valErrs {
			errs = multierror.Append(errs, toErrorResponse(valErr))
		}
	}

	return errs.ErrorOrNil()
}

func toErrorResponse(valErr validator.FieldError) ErrorValidateResponse {
	keys := []string{
		fmt.Sprintf("%s_%s", valErr.Namespace(), valErr.Tag()),
		fmt.Sprintf("%s_%s", valErr.Field(), valErr.Tag()),
	}
	for _, key := range keys {
		if data, found := models.MapErrors[key]; found {
			return ErrorValidateResponse{
				Code:    data.Code,
				Field:   valErr.Field(),
				Message: data.ErrorMessage.Error(),
			}
		}
	}

	return ErrorValidateResponse{
		Code:    "UNKNOWN",
		Field:   valErr.Field(),
		Message: strings.TrimSpace(fmt.Sprintf("%s %s %s", valErr.Field(), valErr.Tag(), valErr.Param())),
	}
}

// FirstMessage is the message of the first validation error, used where the
// response carries a single error string.
func FirstMessage(err error) string {
	var merr *multierror.Error
	if errors.As(err, &merr) && len(merr.Errors) > 0 {
		return merr.Errors[0].Error()
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

func registerNoSpacesAtStartOrEnd() {
	_ = validate.RegisterValidation("noStartEndSpaces", func(fl validator.FieldLevel) bool {
		str := fl.Field().String()
		return str == "" || (str[0] != ' ' && str[len(str)-1] != ' ')
	})
}

func registerDate() {
	_ = validate.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		input := fl.Field().String()
		return input == "" || reDate.MatchString(input)
	})
}
