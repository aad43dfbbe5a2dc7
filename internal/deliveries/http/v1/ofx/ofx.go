package ofx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sellerdesk/go-fin-ledger/internal/common"
	"github.com/sellerdesk/go-fin-ledger/internal/common/ctxdata"
	commonhttp "github.com/sellerdesk/go-fin-ledger/internal/common/http"
	"github.com/sellerdesk/go-fin-ledger/internal/common/http/middleware"
	"github.com/sellerdesk/go-fin-ledger/internal/common/validation"
	"github.com/sellerdesk/go-fin-ledger/internal/common/xlog"
	"github.com/sellerdesk/go-fin-ledger/internal/models"
	ofxparser "github.com/sellerdesk/go-fin-ledger/internal/ofx"
	"github.com/sellerdesk/go-fin-ledger/internal/services"
)

type ofxHandler struct {
	ofxSrv services.OfxService
}

// New ofx handler will initialize the ofx/ resources endpoint
func New(app *echo.Group, ofxSrv services.OfxService, m middleware.AppMiddleware) {
	handler := ofxHandler{ofxSrv}
	ofx := app.Group("/ofx")
	ofx.POST("/preview", handler.preview)
	ofx.POST("/import", handler.importStatement, m.CheckIdempotentRequest())
}

// preview API parse a bank statement without booking it
// @Summary Preview OFX statement
// @Description Parse the statement and list its transactions for review. Nothing is written.
// @Tags OFX
// @Accept  json
// @Produce  json
// @Param 	payload body models.OfxPreviewRequest true "A JSON object containing the raw OFX file"
// @Param	checkDuplicates query bool false "flag transactions already in the ledger"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param	X-Tenant-Id header string true "X-Tenant-Id"
// @Success 200 {object} models.DoOfxPreviewResponse
// @Failure 400 {object} models.OfxErrorResponse "Missing content, not an OFX file or no transactions"
// @Failure 413 {object} models.OfxErrorResponse "File too large"
// @Failure 500 {object} models.OfxErrorResponse
// @Router /v1/ofx/preview [post]
func (h *ofxHandler) preview(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(models.OfxPreviewRequest)
	if err := c.Bind(req); err != nil {
		return commonhttp.RestOfxErrorResponse(c, http.StatusBadRequest, common.ErrInvalidRequestBody.Error())
	}

	if err := validation.ValidateStruct(req); err != nil {
		return commonhttp.RestOfxErrorResponse(c, http.StatusBadRequest, validation.FirstMessage(err))
	}

	out, err := h.ofxSrv.Preview(ctx, models.OfxPreviewIn{
		TenantID:    ctxdata.GetTenantID(ctx),
		FileContent: req.FileContent,
	})
	if err != nil {
		return respondOfxError(c, err, common.ErrUnexpectedPreview)
	}

	if checkDuplicates, _ := strconv.ParseBool(c.QueryParam("checkDuplicates")); checkDuplicates {
		// the preview stays usable without the flags
		if err := h.ofxSrv.MarkDuplicates(ctx, ctxdata.GetTenantID(ctx), out); err != nil {
			xlog.Warn(ctx, "[OFX-PREVIEW] failed to check duplicates", xlog.Err(err))
		}
	}

	return commonhttp.RestSuccessResponse(c, http.StatusOK, models.NewDoOfxPreviewResponse(out))
}

// importStatement API book the transactions of a bank statement
// @Summary Import OFX statement
// @Description Book every statement line not yet in the ledger. Credits become receivables, debits become payables.
// @Tags OFX
// @Accept  json
// @Produce  json
// @Param 	payload body models.OfxImportRequest true "A JSON object containing the raw OFX file and the target bank account"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param	X-Tenant-Id header string true "X-Tenant-Id"
// @Param	X-Idempotency-Key header string false "X-Idempotency-Key"
// @Success 200 {object} models.DoOfxImportResponse
// @Failure 400 {object} models.OfxErrorResponse "Missing content, not an OFX file or no transactions"
// @Failure 413 {object} models.OfxErrorResponse "File too large"
// @Failure 500 {object} models.OfxErrorResponse
// @Router /v1/ofx/import [post]
func (h *ofxHandler) importStatement(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(models.OfxImportRequest)
	if err := c.Bind(req); err != nil {
		return commonhttp.RestOfxErrorResponse(c, http.StatusBadRequest, common.ErrInvalidRequestBody.Error())
	}

	if err := validation.ValidateStruct(req); err != nil {
		return commonhttp.RestOfxErrorResponse(c, http.StatusBadRequest, validation.FirstMessage(err))
	}

	out, err := h.ofxSrv.Import(ctx, models.OfxImportIn{
		TenantID:      ctxdata.GetTenantID(ctx),
		FileContent:   req.FileContent,
		BankAccountID: req.BankAccountID,
	})
	if err != nil {
		return respondOfxError(c, err, common.ErrUnexpectedImport)
	}

	return commonhttp.RestSuccessResponse(c, http.StatusOK, models.NewDoOfxImportResponse(out))
}

// respondOfxError maps statement errors to the {"error": ...} body. Anything
// unknown is hidden behind the generic message.
func respondOfxError(c echo.Context, err error, unexpected error) error {
	var parseErr *ofxparser.ParseError

	switch {
	case errors.Is(err, common.ErrMissingFileContent),
		errors.Is(err, ofxparser.ErrNotOfxFormat),
		errors.Is(err, ofxparser.ErrNoTransactions),
		errors.Is(err, common.ErrNoTransactionsFound):
		return commonhttp.RestOfxErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &parseErr):
		return commonhttp.RestOfxErrorResponse(c, http.StatusBadRequest, common.ErrMalformedStatement.Error())
	case errors.Is(err, common.ErrFileTooLarge):
		return commonhttp.RestOfxErrorResponse(c, http.StatusRequestEntityTooLarge, err.Error())
	default:
		xlog.Error(c.Request().Context(), "[OFX] unexpected error", xlog.Err(err))
		return commonhttp.RestOfxErrorResponse(c, http.StatusInternalServerError, unexpected.Error())
	}
}
