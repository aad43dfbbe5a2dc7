package ofximports

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sellerdesk/go-fin-ledger/internal/common/ctxdata"
	commonhttp "github.com/sellerdesk/go-fin-ledger/internal/common/http"
	"github.com/sellerdesk/go-fin-ledger/internal/common/validation"
	"github.com/sellerdesk/go-fin-ledger/internal/models"
	"github.com/sellerdesk/go-fin-ledger/internal/services"
)

type ofxImportsHandler struct {
	historySrv services.OfxImportHistoryService
}

// New ofx imports handler will initialize the ofx-imports/ resources endpoint
func New(app *echo.Group, historySrv services.OfxImportHistoryService) {
	handler := ofxImportsHandler{historySrv}
	app.GET("/ofx-imports", handler.list)
	app.GET("/ofx-imports/:id/statement", handler.statement)
}

// list API get the statement imports of the tenant
// @Summary 	Get all OFX imports
// @Description Get the import history, newest first
// @Tags 		OFX
// @Accept		json
// @Produce		json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param	X-Tenant-Id header string true "X-Tenant-Id"
// @Param   params query models.DoGetListOfxImportBatchRequest true "Get all ofx imports query parameters"
// @Success 200 {object} http.RestPaginationResponseModel[[]models.DoGetOfxImportBatchResponse] "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the filter is invalid"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while get the imports"
// @Router /v1/ofx-imports [get]
func (h *ofxImportsHandler) list(c echo.Context) (err error) {
	req := new(models.DoGetListOfxImportBatchRequest)

	err = c.Bind(req)
	if err != nil {
		return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
	}

	if err = validation.ValidateStruct(req); err != nil {
		return commonhttp.RestErrorValidationResponse(c, err)
	}

	ctx := c.Request().Context()

	opts, err := req.ToFilterOpts(ctxdata.GetTenantID(ctx))
	if err != nil {
		return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
	}

	batches, total, err := h.historySrv.GetList(ctx, *opts)
	if err != nil {
		if models.HasErrKey(err, models.ErrKeyDataNotFound) {
			return commonhttp.RestErrorResponse(c, http.StatusNotFound, err)
		}
		return commonhttp.RestErrorResponse(c, http.StatusInternalServerError, err)
	}

	return commonhttp.RestSuccessResponseCursorPagination[models.DoGetOfxImportBatchResponse](c, batches, opts.Limit, total)
}

// statement API download the archived raw file of an import
// @Summary 	Download the OFX file of an import
// @Description Returns the statement exactly as it was uploaded, when it was archived
// @Tags 		OFX
// @Produce		application/x-ofx
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param	X-Tenant-Id header string true "X-Tenant-Id"
// @Param	id path string true "import batch id"
// @Success 200 {file} file "raw statement"
// @Failure 404 {object} http.RestErrorResponseModel "Import not found or its file was not archived"
// @Failure 422 {object} http.RestErrorValidationResponseModel "Invalid id"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error"
// @Router /v1/ofx-imports/{id}/statement [get]
func (h *ofxImportsHandler) statement(c echo.Context) (err error) {
	req := new(models.DoGetOfxImportStatementRequest)
	if err = c.Bind(req); err != nil {
		return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
	}

	if err = validation.ValidateStruct(req); err != nil {
		return commonhttp.RestErrorValidationResponse(c, err)
	}

	ctx := c.Request().Context()
	file, err := h.historySrv.GetStatement(ctx, ctxdata.GetTenantID(ctx), req.ID)
	if err != nil {
		if models.HasErrKey(err, models.ErrKeyDataNotFound) || models.HasErrKey(err, models.ErrKeyStatementNotArchived) {
			return commonhttp.RestErrorResponse(c, http.StatusNotFound, err)
		}
		return commonhttp.RestErrorResponse(c, http.StatusInternalServerError, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.FileName))
	return c.Blob(http.StatusOK, "application/x-ofx", file.Content)
}
