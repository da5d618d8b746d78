package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hotelero/reservas/internal/model"
	"github.com/hotelero/reservas/internal/queue"
	"github.com/hotelero/reservas/internal/repository"
	"github.com/hotelero/reservas/internal/validation"
)

// ReservationStore is the persistence capability the handlers depend on.
// *repository.ReservationRepo satisfies it in production; tests use an
// in-memory fake.
type ReservationStore interface {
	List(ctx context.Context, f repository.ListFilter) ([]model.Reservation, error)
	GetByID(ctx context.Context, id uint64) (*model.Reservation, error)
	Create(ctx context.Context, res *model.Reservation) error
	Update(ctx context.Context, res *model.Reservation) error
	Delete(ctx context.Context, id uint64) error
	AverageTotal(ctx context.Context) (float64, error)
	SummaryByRoom(ctx context.Context) ([]model.RoomSummary, error)
}

// ReservationHandler maps HTTP requests onto the store and translates
// validation and storage outcomes into status codes.  PublishCreated, when
// set, is invoked after a successful create; failures there must never
// affect the response.
type ReservationHandler struct {
	Store          ReservationStore
	PublishCreated func(ctx context.Context, evt queue.ReservaCreadaEvent)
}

// NewReservationHandler constructs a handler and panics on a nil store.
func NewReservationHandler(store ReservationStore) *ReservationHandler {
	if store == nil {
		panic("nil store passed to NewReservationHandler")
	}
	return &ReservationHandler{Store: store}
}

// List handles GET /reservas with optional habitacion and fechaEntrada
// query filters.
func (h *ReservationHandler) List(c echo.Context) error {
	var filter repository.ListFilter
	if raw := c.QueryParam("habitacion"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || n == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "habitacion must be a positive integer"})
		}
		filter.Habitacion = uint(n)
	}
	if raw := c.QueryParam("fechaEntrada"); raw != "" {
		day, err := time.ParseInLocation(model.DateLayout, raw, time.UTC)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "fechaEntrada must be a valid date in YYYY-MM-DD format"})
		}
		filter.FechaEntrada = &day
	}
	items, err := h.Store.List(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /reservas/:id.
func (h *ReservationHandler) Get(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	res, err := h.Store.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, res)
}

// Create handles POST /reservas.  Input is validated before the store is
// touched; an overlapping stay in the same room yields 409.
func (h *ReservationHandler) Create(c echo.Context) error {
	var body validation.ReservaInput
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	res, err := validation.Validate(body)
	if err != nil {
		return validationError(c, err)
	}
	if err := h.Store.Create(c.Request().Context(), &res); err != nil {
		if errors.Is(err, repository.ErrOverlap) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "room already reserved for the requested dates"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create reservation"})
	}
	if h.PublishCreated != nil {
		h.PublishCreated(c.Request().Context(), queue.NewReservaCreadaEvent(res))
	}
	return c.JSON(http.StatusCreated, res)
}

// Update handles PUT /reservas/:id as a full replacement of the mutable
// fields.  The stored record is excluded from the overlap check so an
// unchanged date range never conflicts with itself.
func (h *ReservationHandler) Update(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body validation.ReservaInput
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	res, err := validation.Validate(body)
	if err != nil {
		return validationError(c, err)
	}
	res.ID = id
	if err := h.Store.Update(c.Request().Context(), &res); err != nil {
		switch {
		case errors.Is(err, repository.ErrReservationNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		case errors.Is(err, repository.ErrOverlap):
			return c.JSON(http.StatusConflict, echo.Map{"error": "room already reserved for the requested dates"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update reservation"})
	}
	return c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /reservas/:id.  Hard delete, no tombstone.
func (h *ReservationHandler) Delete(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Store.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete reservation"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "reservation deleted"})
}

// AverageTotal handles GET /reservas/promedio-total.
func (h *ReservationHandler) AverageTotal(c echo.Context) error {
	avg, err := h.Store.AverageTotal(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"promedioTotal": avg})
}

// SummaryByRoom handles GET /reservas/resumen-por-habitacion.
func (h *ReservationHandler) SummaryByRoom(c echo.Context) error {
	items, err := h.Store.SummaryByRoom(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// reservationID parses the :id path parameter.
func reservationID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid reservation id")
	}
	return id, nil
}

// validationError writes the 400 response for a failed Validate call.
func validationError(c echo.Context, err error) error {
	var fe *validation.FieldError
	if errors.As(err, &fe) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": fe.Message,
			"field": fe.Field,
			"code":  fe.Code,
		})
	}
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid input"})
}
