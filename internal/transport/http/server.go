package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"photogallery/internal/domain/models"
	"photogallery/internal/lib/logger/sl"
	"photogallery/internal/storage"
	"photogallery/internal/transport/http/dto"
	"photogallery/internal/transport/http/dto/response"

	_ "photogallery/docs"
)

type GalleryService interface {
	CreateEntry(ctx context.Context, fields models.EntryFields) (int64, error)
	ListEntries(ctx context.Context) ([]models.Entry, error)
	UpdateEntry(ctx context.Context, id int64, fields models.EntryFields) (models.Entry, error)
	DeleteEntry(ctx context.Context, id int64) error
	ResetAll(ctx context.Context) ([]models.Entry, error)
}

const entryIDKey = "entry_id"

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Routers struct {
	log            *slog.Logger
	GalleryService GalleryService
	checks         map[string]HealthCheck
}

func NewRouter(log *slog.Logger, galleryService GalleryService, checks map[string]HealthCheck) *Routers {
	return &Routers{
		log:            log,
		GalleryService: galleryService,
		checks:         checks,
	}
}

// CreateEntry godoc
// @Summary Добавить запись
// @Description Создает запись галереи. Все пять полей обязательны.
// @Tags gallery
// @Accept json
// @Produce json
// @Param request body dto.CreateEntryRequest true "Данные записи"
// @Success 201 "Запись создана"
// @Failure 400 {object} response.ErrorResponse "Не заполнены обязательные поля"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router / [post]
func (r *Routers) CreateEntry(c echo.Context) error {
	const op = "http.routers.CreateEntry"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateEntryRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, invalidFormat(err))
	}

	if _, err := r.GalleryService.CreateEntry(c.Request().Context(), req.Fields()); err != nil {
		return r.storeError(c, log, err)
	}

	return c.NoContent(http.StatusCreated)
}

// ListEntries godoc
// @Summary Список записей
// @Description Возвращает все записи галереи в порядке ID
// @Tags gallery
// @Produce json
// @Success 200 {array} dto.EntryResponse
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router / [get]
func (r *Routers) ListEntries(c echo.Context) error {
	const op = "http.routers.ListEntries"

	log := r.log.With(
		slog.String("op", op),
	)

	entries, err := r.GalleryService.ListEntries(c.Request().Context())
	if err != nil {
		return r.storeError(c, log, err)
	}

	return c.JSON(http.StatusOK, dto.NewEntryListResponse(entries))
}

// UpdateEntry godoc
// @Summary Обновить запись
// @Description Изменяет только переданные непустые поля записи
// @Tags gallery
// @Accept json
// @Produce json
// @Param request body dto.UpdateEntryRequest true "ID и изменяемые поля"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} response.ErrorResponse "Не передан id"
// @Failure 404 {object} response.ErrorResponse "Запись не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router / [patch]
func (r *Routers) UpdateEntry(c echo.Context) error {
	const op = "http.routers.UpdateEntry"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.UpdateEntryRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, invalidFormat(err))
	}

	if err := c.Validate(req); err != nil {
		log.Warn("id is missing", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrIDRequired)
	}

	c.Set(entryIDKey, req.ID)

	entry, err := r.GalleryService.UpdateEntry(c.Request().Context(), req.ID, req.Fields())
	if err != nil {
		return r.storeError(c, log.With(slog.Int64("id", req.ID)), err)
	}

	return c.JSON(http.StatusOK, dto.NewEntryResponse(entry))
}

// DeleteEntry godoc
// @Summary Удалить запись
// @Tags gallery
// @Accept json
// @Param request body dto.DeleteEntryRequest true "ID записи"
// @Success 200
// @Failure 400 {object} response.ErrorResponse "Не передан id"
// @Failure 404 {object} response.ErrorResponse "Запись не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router / [delete]
func (r *Routers) DeleteEntry(c echo.Context) error {
	const op = "http.routers.DeleteEntry"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.DeleteEntryRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, invalidFormat(err))
	}

	if err := c.Validate(req); err != nil {
		log.Warn("id is missing", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrIDRequired)
	}

	c.Set(entryIDKey, req.ID)

	if err := r.GalleryService.DeleteEntry(c.Request().Context(), req.ID); err != nil {
		return r.storeError(c, log.With(slog.Int64("id", req.ID)), err)
	}

	return c.NoContent(http.StatusOK)
}

// ResetEntries godoc
// @Summary Сбросить галерею
// @Description Пересоздает таблицу и заполняет её двумя исходными записями
// @Tags gallery
// @Produce json
// @Success 200 {array} dto.EntryResponse
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /reset [get]
func (r *Routers) ResetEntries(c echo.Context) error {
	const op = "http.routers.ResetEntries"

	log := r.log.With(
		slog.String("op", op),
	)

	entries, err := r.GalleryService.ResetAll(c.Request().Context())
	if err != nil {
		return r.storeError(c, log, err)
	}

	return c.JSON(http.StatusOK, dto.NewEntryListResponse(entries))
}

// Health godoc
// @Summary Проверка состояния
// @Tags service
// @Produce json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /health [get]
func (r *Routers) Health(c echo.Context) error {
	ctx := c.Request().Context()

	status := make(map[string]string, len(r.checks))
	healthy := true

	for name, check := range r.checks {
		if err := check(ctx); err != nil {
			r.log.Warn("health check failed", slog.String("dependency", name), sl.Err(err))
			status[name] = err.Error()
			healthy = false
			continue
		}
		status[name] = "ok"
	}

	if !healthy {
		return c.JSON(http.StatusServiceUnavailable, response.Response{
			Status: "error",
			Data:   status,
		})
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(status))
}

// storeError maps service errors to status codes.
func (r *Routers) storeError(c echo.Context, log *slog.Logger, err error) error {
	var verr *models.ValidationError

	switch {
	case errors.As(err, &verr):
		log.Warn("missing required fields", slog.Any("fields", verr.Fields))
		return c.JSON(http.StatusBadRequest, response.MissingFields(verr.Error(), verr.Fields))
	case errors.Is(err, models.ErrNothingToUpdate):
		log.Warn("nothing to update")
		return c.JSON(http.StatusBadRequest, response.MissingFields(err.Error(), models.FieldNames))
	case errors.Is(err, storage.ErrEntryNotFound):
		log.Warn("entry not found")
		return c.JSON(http.StatusNotFound, response.Error(notFoundMessage(c)))
	default:
		log.Error("store failure", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Error! "+err.Error()))
	}
}

func notFoundMessage(c echo.Context) string {
	if id, ok := c.Get(entryIDKey).(int64); ok {
		return fmt.Sprintf("Error! entry %d not found", id)
	}

	return "Error! entry not found"
}

func invalidFormat(err error) response.ErrorResponse {
	return response.ErrorResponseWithDetails(response.ErrInvalidRequestFormat.Error, err.Error())
}
