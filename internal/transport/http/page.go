package http

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"photogallery/internal/domain/models"
	"photogallery/internal/lib/logger/sl"
	"photogallery/internal/transport/http/dto"
	"photogallery/internal/transport/http/dto/response"
	"photogallery/internal/view"
)

//go:embed templates/gallery.html
var templatesFS embed.FS

var galleryTemplate = template.Must(template.ParseFS(templatesFS, "templates/gallery.html"))

type chipLink struct {
	view.Chip
	Href string
}

type galleryPage struct {
	Rows          []view.Row
	Chips         []chipLink
	ActiveAuthors []string
	Search        string
	EditLabel     string
	SubmitAction  string
	ResetAction   string
	Error         string
	Form          dto.CreateEntryRequest
}

// Gallery godoc
// @Summary HTML-страница галереи
// @Description Отрисовывает записи с фильтрами по авторам (author, можно несколько) и поиском (q)
// @Tags gallery
// @Produce html
// @Param author query []string false "Активные фильтры по авторам"
// @Param q query string false "Строка поиска"
// @Success 200 {string} string "HTML"
// @Router /gallery [get]
func (r *Routers) Gallery(c echo.Context) error {
	const op = "http.routers.Gallery"

	log := r.log.With(
		slog.String("op", op),
	)

	return r.renderGallery(c, log, http.StatusOK, "", dto.CreateEntryRequest{})
}

// GallerySubmit godoc
// @Summary Добавить запись из формы страницы
// @Description Создает запись и перенаправляет обратно на страницу с теми же фильтрами
// @Tags gallery
// @Accept x-www-form-urlencoded
// @Produce html
// @Param author formData string true "Автор"
// @Param alt formData string true "Альтернативный текст"
// @Param tags formData string true "Теги через запятую"
// @Param image formData string true "URL изображения"
// @Param description formData string true "Описание"
// @Success 303 "Перенаправление на /gallery"
// @Failure 400 {string} string "HTML с сообщением об ошибке"
// @Router /gallery [post]
func (r *Routers) GallerySubmit(c echo.Context) error {
	const op = "http.routers.GallerySubmit"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateEntryRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind form", sl.Err(err))
		return r.renderGallery(c, log, http.StatusBadRequest, response.ErrInvalidRequestFormat.Error, req)
	}

	if _, err := r.GalleryService.CreateEntry(c.Request().Context(), req.Fields()); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			log.Warn("missing required fields", slog.Any("fields", verr.Fields))
			return r.renderGallery(c, log, http.StatusBadRequest, verr.Error(), req)
		}

		log.Error("store failure", sl.Err(err))
		return r.renderGallery(c, log, http.StatusInternalServerError, "Error! "+err.Error(), req)
	}

	return c.Redirect(http.StatusSeeOther, "/gallery"+pageQuery(c.QueryParams()["author"], c.QueryParams().Get("q")))
}

// GalleryReset godoc
// @Summary Сбросить галерею со страницы
// @Tags gallery
// @Produce html
// @Success 303 "Перенаправление на /gallery"
// @Router /gallery/reset [post]
func (r *Routers) GalleryReset(c echo.Context) error {
	const op = "http.routers.GalleryReset"

	log := r.log.With(
		slog.String("op", op),
	)

	if _, err := r.GalleryService.ResetAll(c.Request().Context()); err != nil {
		log.Error("failed to reset gallery", sl.Err(err))
		return r.renderGallery(c, log, http.StatusInternalServerError, "Error! "+err.Error(), dto.CreateEntryRequest{})
	}

	return c.Redirect(http.StatusSeeOther, "/gallery"+pageQuery(c.QueryParams()["author"], c.QueryParams().Get("q")))
}

// renderGallery draws the page for the filters and search in the URL query.
func (r *Routers) renderGallery(c echo.Context, log *slog.Logger, status int, errMsg string, form dto.CreateEntryRequest) error {
	entries, err := r.GalleryService.ListEntries(c.Request().Context())
	if err != nil {
		return r.storeError(c, log, err)
	}

	params := c.QueryParams()

	st := view.NewState()
	st.RenderAll(entries)
	for _, author := range params["author"] {
		if !st.Filters()[author] {
			st.ToggleAuthorFilter(author)
		}
	}
	st.SetSearch(params.Get("q"))

	page := galleryPage{
		Rows:      st.Rows(entries),
		Search:    st.Search(),
		EditLabel: view.EditLabel,
		Error:     errMsg,
		Form:      form,
	}

	for _, author := range st.Authors() {
		if st.Filters()[author] {
			page.ActiveAuthors = append(page.ActiveAuthors, author)
		}
	}

	query := pageQuery(page.ActiveAuthors, page.Search)
	page.SubmitAction = "/gallery" + query
	page.ResetAction = "/gallery/reset" + query

	for _, chip := range st.Chips() {
		page.Chips = append(page.Chips, chipLink{
			Chip: chip,
			Href: toggleHref(page.ActiveAuthors, chip.Name, page.Search),
		})
	}

	var buf bytes.Buffer
	if err := galleryTemplate.Execute(&buf, page); err != nil {
		log.Error("failed to render gallery page", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Error! "+err.Error()))
	}

	return c.HTMLBlob(status, buf.Bytes())
}

// toggleHref builds the page link with author switched in or out of the
// active set.
func toggleHref(active []string, author, search string) string {
	next := make([]string, 0, len(active)+1)

	found := false
	for _, a := range active {
		if a == author {
			found = true
			continue
		}
		next = append(next, a)
	}
	if !found {
		next = append(next, author)
	}

	return "/gallery" + pageQuery(next, search)
}

// pageQuery encodes filters and search as a query string, "" when both are
// empty.
func pageQuery(authors []string, search string) string {
	q := url.Values{}
	for _, a := range authors {
		q.Add("author", a)
	}

	if search != "" {
		q.Set("q", search)
	}

	if len(q) == 0 {
		return ""
	}

	return "?" + q.Encode()
}
