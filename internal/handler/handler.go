package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/campushub/circulation-service/docs"
	"github.com/campushub/circulation-service/internal/errs"
	"github.com/campushub/circulation-service/internal/model"
	"github.com/campushub/circulation-service/pkg/auth"
	md "github.com/campushub/circulation-service/pkg/middleware"
	"github.com/campushub/circulation-service/pkg/validate"
)

type Handler struct {
	circulationSvc CirculationService
	log            *zap.Logger
}

func New(circulationSrv CirculationService, log *zap.Logger) *Handler {
	h := &Handler{
		circulationSvc: circulationSrv,
		log:            log,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/manage/reconcile", h.Reconcile)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.AuthContext,
	)

	api.POST("/books", h.CreateBook)
	api.GET("/books", h.FindBookByCode)
	api.GET("/books/:bookUid", h.GetBook)
	api.POST("/books/:bookUid/copies", h.AddCopies)

	api.POST("/copies/:copyUid/lost", h.MarkCopyLost)
	api.POST("/copies/:copyUid/maintenance", h.MarkCopyMaintenance)

	api.POST("/borrowings", h.LendBook)
	api.GET("/borrowings", h.ListBorrowings)
	api.POST("/borrowings/:borrowingUid/return-request", h.RequestReturn)
	api.POST("/borrowings/:borrowingUid/return", h.ApproveReturn)

	api.GET("/stats", h.GetLibraryStats)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps the domain error taxonomy onto HTTP statuses. Invariant
// violations are the only 5xx the domain produces on purpose.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrCodeConflict),
		errors.Is(err, errs.ErrNoAvailableCopy),
		errors.Is(err, errs.ErrInvalidState):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrStudentRole), errors.Is(err, errs.ErrDueDate):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// CreateBook godoc
// @Summary  Register a book with N physical copies
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    input body model.CreateBookRequest true "book"
// @Success  200 {object} model.Book
// @Router   /books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	actorID, err := auth.ActorID(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	book, err := h.circulationSvc.CreateBook(c.Request().Context(), actorID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// GetBook godoc
// @Summary  Catalog entry by uid
// @Tags     catalog
// @Produce  json
// @Param    bookUid path string true "book uid"
// @Success  200 {object} model.Book
// @Router   /books/{bookUid} [get]
func (h *Handler) GetBook(c echo.Context) error {
	bookUID := c.Param("bookUid")
	book, err := h.circulationSvc.GetBook(c.Request().Context(), bookUID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// FindBookByCode godoc
// @Summary  Resolve a scannable unique code within the actor's college
// @Tags     catalog
// @Produce  json
// @Param    code query string true "unique code"
// @Success  200 {object} model.Book
// @Router   /books [get]
func (h *Handler) FindBookByCode(c echo.Context) error {
	actorID, err := auth.ActorID(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	code := c.QueryParam("code")
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "code is required")
	}
	book, err := h.circulationSvc.FindBookByCode(c.Request().Context(), actorID, code)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// AddCopies godoc
// @Summary  Provision newly acquired copies of a book
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    bookUid path string true "book uid"
// @Success  200 {array} model.BookCopy
// @Router   /books/{bookUid}/copies [post]
func (h *Handler) AddCopies(c echo.Context) error {
	actorID, err := auth.ActorID(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	type Req struct {
		Count int `json:"count" validate:"required,min=1"`
	}
	var req Req
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	copies, err := h.circulationSvc.AddCopies(c.Request().Context(), actorID, c.Param("bookUid"), req.Count)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, copies)
}

func (h *Handler) MarkCopyLost(c echo.Context) error {
	return h.retireCopy(c, h.circulationSvc.MarkCopyLost)
}

func (h *Handler) MarkCopyMaintenance(c echo.Context) error {
	return h.retireCopy(c, h.circulationSvc.MarkCopyMaintenance)
}

func (h *Handler) retireCopy(c echo.Context, fn func(ctx context.Context, actorID, copyUID string) (model.BookCopy, error)) error {
	actorID, err := auth.ActorID(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	copyUID := c.Param("copyUid")
	if copyUID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "copyUid is empty")
	}
	cp, err := fn(c.Request().Context(), actorID, copyUID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cp)
}

// LendBook godoc
// @Summary  Lend a book to a student by uid or unique code
// @Tags     circulation
// @Accept   json
// @Produce  json
// @Param    input body model.LendRequest true "lend"
// @Success  200 {object} model.Borrowing
// @Router   /borrowings [post]
func (h *Handler) LendBook(c echo.Context) error {
	actorID, err := auth.ActorID(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.LendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	brw, err := h.circulationSvc.LendBook(c.Request().Context(), actorID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, brw)
}

// RequestReturn godoc
// @Summary  Student (or staff on their behalf) requests a return
// @Tags     circulation
// @Produce  json
// @Param    borrowingUid path string true "borrowing uid"
// @Success  200 {object} model.Borrowing
// @Router   /borrowings/{borrowingUid}/return-request [post]
func (h *Handler) RequestReturn(c echo.Context) error {
	return h.transition(c, h.circulationSvc.RequestReturn)
}

// ApproveReturn godoc
// @Summary  Librarian approves a return, computing the fine
// @Tags     circulation
// @Produce  json
// @Param    borrowingUid path string true "borrowing uid"
// @Success  200 {object} model.Borrowing
// @Router   /borrowings/{borrowingUid}/return [post]
func (h *Handler) ApproveReturn(c echo.Context) error {
	return h.transition(c, h.circulationSvc.ApproveReturn)
}

func (h *Handler) transition(c echo.Context, fn func(ctx context.Context, actorID, borrowingUID string) (model.Borrowing, error)) error {
	actorID, err := auth.ActorID(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	borrowingUID := c.Param("borrowingUid")
	if borrowingUID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "borrowingUid is empty")
	}
	brw, err := fn(c.Request().Context(), actorID, borrowingUID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, brw)
}

// ListBorrowings godoc
// @Summary  Borrowings of the actor's college, optionally for one student
// @Tags     circulation
// @Produce  json
// @Param    student query string false "student id"
// @Success  200 {array} model.Borrowing
// @Router   /borrowings [get]
func (h *Handler) ListBorrowings(c echo.Context) error {
	actorID, err := auth.ActorID(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	items, err := h.circulationSvc.ListBorrowings(c.Request().Context(), actorID, c.QueryParam("student"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetLibraryStats godoc
// @Summary  Library-wide statistics for the actor's college
// @Tags     stats
// @Produce  json
// @Success  200 {object} model.LibraryStats
// @Router   /stats [get]
func (h *Handler) GetLibraryStats(c echo.Context) error {
	actorID, err := auth.ActorID(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	stats, err := h.circulationSvc.GetLibraryStats(c.Request().Context(), actorID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// Reconcile is the pull-based counter audit, exposed on the management
// surface rather than the public API.
func (h *Handler) Reconcile(c echo.Context) error {
	items, err := h.circulationSvc.Reconcile(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}
