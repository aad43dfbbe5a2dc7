package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
	"golang.org/x/exp/slices"

	"github.com/sellerdesk/go-fin-ledger/internal/common"
	"github.com/sellerdesk/go-fin-ledger/internal/models"
)

type (
	RestErrorResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Code    interface{} `json:"code"`
		Message string      `json:"message" example:"error"`
	}

	RestPaginationResponseModel[T any] struct {
		Kind       string           `json:"kind" example:"collection"`
		Contents   T                `json:"contents"`
		Pagination CursorPagination `json:"pagination"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Message string      `json:"message" example:"validation error"`
		Errors  interface{} `json:"errors"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

// RestSuccessResponseCursorPagination expects data fetched with limit+1 rows,
// the extra row only tells whether another page exists.
func RestSuccessResponseCursorPagination[ModelResponse any, S ~[]E, E PaginateableContent[ModelResponse]](c echo.Context, data S, requestLimit, totalRows int) error {
	hasMorePages := len(data) >= requestLimit
	if hasMorePages && len(data) > 0 {
		data = data[:len(data)-1]
	}
	if isBackward(c) {
		slices.Reverse(data)
	}

	contents := make([]ModelResponse, len(data))
	for i, datum := range data {
		contents[i] = datum.ToModelResponse()
	}

	return c.JSON(http.StatusOK, RestPaginationResponseModel[[]ModelResponse]{
		Kind:       "collection",
		Contents:   contents,
		Pagination: NewCursorPagination[ModelResponse](c, data, hasMorePages, totalRows),
	})
}

// RestErrorResponse writes the {status, code, message} envelope. A mapped
// models.ErrorDetail or an echo.HTTPError wins over statusCode for the code.
func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	return c.JSON(statusCode, newErrorBody(statusCode, err))
}

func newErrorBody(statusCode int, err error) RestErrorResponseModel {
	var (
		detail  models.ErrorDetail
		echoErr *echo.HTTPError
	)

	switch {
	case errors.As(err, &detail):
		return RestErrorResponseModel{Status: "error", Code: detail.Code, Message: detail.ErrorMessage.Error()}
	case errors.As(err, &echoErr):
		return RestErrorResponseModel{Status: "error", Code: echoErr.Code, Message: fmt.Sprint(echoErr.Message)}
	default:
		return RestErrorResponseModel{Status: "error", Code: statusCode, Message: err.Error()}
	}
}

func RestErrorValidationResponse(c echo.Context, errs error) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Message: common.ErrValidation.Error(),
		Errors:  []error{errs},
	}

	var merr *multierror.Error
	if errors.As(errs, &merr) {
		res.Errors = merr.Errors
	}

	return c.JSON(http.StatusUnprocessableEntity, res)
}

// RestOfxErrorResponse writes the {"error": "..."} body the statement
// endpoints answer with.
func RestOfxErrorResponse(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, models.OfxErrorResponse{Error: message})
}
