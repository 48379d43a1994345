package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/booking_ledger_engine/internal/apperrors"
	portssvc "github.com/SscSPs/booking_ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/booking_ledger_engine/internal/dto"
	"github.com/SscSPs/booking_ledger_engine/internal/middleware"
	"github.com/SscSPs/booking_ledger_engine/internal/utils/mapping"
	"github.com/gin-gonic/gin"
)

// bookingHandler handles HTTP requests for booking calculations.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
	maxBatchSize   int
}

// newBookingHandler creates a new bookingHandler.
func newBookingHandler(bookingService portssvc.BookingSvcFacade, maxBatchSize int) *bookingHandler {
	return &bookingHandler{
		bookingService: bookingService,
		maxBatchSize:   maxBatchSize,
	}
}

// calculateFinancials godoc
// @Summary Calculate booking financials
// @Description Computes gross profit, VAT (included in the sale amount), commission, net profit and margin for one booking
// @Tags bookings
// @Accept  json
// @Produce  json
// @Param   booking body dto.BookingRequest true "Booking"
// @Success 200 {object} dto.BookingFinancialsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 422 {object} dto.ErrorResponse "Booking cannot be calculated"
// @Router /bookings/financials [post]
func (h *bookingHandler) calculateFinancials(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	req, ok := h.decodeBooking(c, logger)
	if !ok {
		return
	}

	financials, err := h.bookingService.CalculateBookingFinancials(c.Request.Context(), mapping.ToDomainBookingInput(*req))
	if err != nil {
		respondCalculationError(c, logger, err)
		return
	}

	resp, defaulted := mapping.ToBookingFinancialsResponse(*financials)
	logDefaulted(logger, defaulted)
	c.JSON(http.StatusOK, resp)
}

// generateJournal godoc
// @Summary Generate journal entries for a booking
// @Description Derives the five-line double-entry journal (receivable, revenue, VAT payable, cost of sales, payable)
// @Tags bookings
// @Accept  json
// @Produce  json
// @Param   booking body dto.BookingRequest true "Booking"
// @Success 200 {object} dto.JournalEntriesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 422 {object} dto.ErrorResponse "Booking cannot be journalled"
// @Router /bookings/journal [post]
func (h *bookingHandler) generateJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	req, ok := h.decodeBooking(c, logger)
	if !ok {
		return
	}

	journal, err := h.bookingService.GenerateJournalEntries(c.Request.Context(), mapping.ToDomainBookingInput(*req))
	if err != nil {
		respondCalculationError(c, logger, err)
		return
	}

	resp, defaulted := mapping.ToJournalEntriesResponse(*journal)
	logDefaulted(logger, defaulted)
	c.JSON(http.StatusOK, resp)
}

// calculateBatch godoc
// @Summary Calculate a batch of bookings
// @Description Calculates each booking and aggregates totals with a revenue-weighted average margin. Bookings that cannot be calculated are skipped.
// @Tags bookings
// @Accept  json
// @Produce  json
// @Param   batch body dto.BatchBookingRequest true "Bookings"
// @Success 200 {object} dto.BatchBookingResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to calculate batch"
// @Router /bookings/batch [post]
func (h *bookingHandler) calculateBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	body, err := c.GetRawData()
	if err != nil {
		respondInvalidInput(c, logger, err)
		return
	}
	req, err := dto.DecodeBatchBookingRequest(body, h.maxBatchSize)
	if err != nil {
		logger.Warn("Failed to decode batch request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.bookingService.CalculateBatch(c.Request.Context(), mapping.ToDomainBookingInputs(*req))
	if err != nil {
		respondCalculationError(c, logger, err)
		return
	}

	if len(result.Failures) > 0 {
		logger.Info("Batch calculated with skipped bookings",
			slog.Int("booking_count", result.Summary.BookingCount),
			slog.Int("skipped", len(result.Failures)),
		)
	}

	resp, defaulted := mapping.ToBatchBookingResponse(*result)
	logDefaulted(logger, defaulted)
	c.JSON(http.StatusOK, resp)
}

func (h *bookingHandler) decodeBooking(c *gin.Context, logger *slog.Logger) (*dto.BookingRequest, bool) {
	body, err := c.GetRawData()
	if err != nil {
		respondInvalidInput(c, logger, err)
		return nil, false
	}

	req, err := dto.DecodeBookingRequest(body)
	if err != nil {
		logger.Warn("Failed to decode booking request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return nil, false
	}
	return req, true
}

func respondInvalidInput(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to read request body", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: (&dto.DecodeError{Msg: err.Error()}).Error()})
}

func respondCalculationError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error calculating booking", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDivisionByZero):
		logger.Warn("Booking cannot be calculated", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Failed to calculate booking in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to calculate booking"})
	}
}

// logDefaulted makes fields that were written as zero visible in the logs.
func logDefaulted(logger *slog.Logger, fields []string) {
	if len(fields) == 0 {
		return
	}
	logger.Warn("Amounts out of wire range were written as zero", slog.Any("fields", fields))
}

// RegisterBookingRoutes registers booking calculation routes.
func RegisterBookingRoutes(group *gin.RouterGroup, bookingService portssvc.BookingSvcFacade, maxBatchSize int) {
	h := newBookingHandler(bookingService, maxBatchSize)

	bookings := group.Group("/bookings")
	{
		bookings.POST("/financials", h.calculateFinancials)
		bookings.POST("/journal", h.generateJournal)
		bookings.POST("/batch", h.calculateBatch)
	}
}
