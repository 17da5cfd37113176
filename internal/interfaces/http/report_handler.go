package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hutecki/bankiety-api/internal/application/dto"
	"github.com/hutecki/bankiety-api/internal/application/report"
)

const reportDateLayout = "2006-01-02"

// ReportHandler serves turnover reporting (protected).
type ReportHandler struct {
	uc *report.TurnoverUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *report.TurnoverUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// reportWindow parses from/to query dates. Defaults to the last 30 days;
// the window end is inclusive through end of day.
func reportWindow(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(reportDateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(reportDateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = t.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}

// Turnover godoc
// @Summary      Per-product delivered/used/turnover sums over a date window
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        scope  query  string  false  "Domain or all"    default(all)
// @Param        from   query  string  false  "Start date, YYYY-MM-DD"
// @Param        to     query  string  false  "End date, YYYY-MM-DD"
// @Success      200  {object}  dto.TurnoverReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/turnover [get]
func (h *ReportHandler) Turnover(c *fiber.Ctx) error {
	from, to, err := reportWindow(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dates must be YYYY-MM-DD"})
	}
	out, err := h.uc.Turnover(c.Context(), c.Query("scope", "all"), from, to)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// TurnoverPDF godoc
// @Summary      The turnover report rendered as a PDF document
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        scope  query  string  false  "Domain or all"    default(all)
// @Param        from   query  string  false  "Start date, YYYY-MM-DD"
// @Param        to     query  string  false  "End date, YYYY-MM-DD"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/turnover/pdf [get]
func (h *ReportHandler) TurnoverPDF(c *fiber.Ctx) error {
	from, to, err := reportWindow(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dates must be YYYY-MM-DD"})
	}
	pdf, err := h.uc.TurnoverPDF(c.Context(), c.Query("scope", "all"), from, to)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="raport-obrotow.pdf"`)
	return c.Send(pdf)
}
