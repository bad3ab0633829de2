package furnishing

import (
	"room-furnisher/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for furnishing.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the furnishing routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/furnishing")
	group.Get("/catalog", h.HandleGetCatalog)
	group.Get("/sets", h.HandleGetSets)
	group.Get("/sets/:code", h.HandleGetSet)
	group.Get("/rooms", h.HandleGetRooms)
	group.Post("/run", h.HandleRun)
}

// HandleGetCatalog returns the furniture catalog.
// @Summary Get Furniture Catalog
// @Description List every logical furniture name with the family and type it resolves to.
// @Tags furnishing
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} catalog.ItemDescriptor "Catalog"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /furnishing/catalog [get]
func (h *Handler) HandleGetCatalog(c *fiber.Ctx) error {
	items, err := h.service.Catalog(c.Context())
	if err != nil {
		return h.fail(c, "Catalog load failed", err)
	}
	return c.JSON(items)
}

// HandleGetSets returns the furniture sets.
// @Summary Get Furniture Sets
// @Description List every furniture set in table order.
// @Tags furnishing
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} catalog.SetDefinition "Sets"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /furnishing/sets [get]
func (h *Handler) HandleGetSets(c *fiber.Ctx) error {
	sets, err := h.service.Sets(c.Context())
	if err != nil {
		return h.fail(c, "Set load failed", err)
	}
	return c.JSON(sets)
}

// HandleGetSet returns every set with the given code, resolved against the catalog.
// @Summary Expand Furniture Set
// @Description Resolve each item of the sets sharing a code against the catalog.
// @Tags furnishing
// @Security ApiKeyAuth
// @Produce json
// @Param code path string true "Set code (e.g. 'A')"
// @Success 200 {array} SetExpansion "Expanded sets"
// @Failure 404 {object} map[string]string "Unknown set code"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /furnishing/sets/{code} [get]
func (h *Handler) HandleGetSet(c *fiber.Ctx) error {
	code := c.Params("code")

	expansions, err := h.service.ExpandSet(c.Context(), code)
	if err != nil {
		return h.fail(c, "Set expansion failed", err)
	}
	if len(expansions) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown set code: " + code,
		})
	}
	return c.JSON(expansions)
}

// HandleGetRooms returns the rooms of the building model.
// @Summary Get Rooms
// @Description List rooms with their furniture set code and furniture count.
// @Tags furnishing
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} modelhost.RoomSummary "Rooms"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /furnishing/rooms [get]
func (h *Handler) HandleGetRooms(c *fiber.Ctx) error {
	rooms, err := h.service.Rooms(c.Context())
	if err != nil {
		return h.fail(c, "Room listing failed", err)
	}
	return c.JSON(rooms)
}

// HandleRun furnishes every room of the building model.
// @Summary Furnish Rooms
// @Description Place the furniture of each room's set at the room point and write the furniture count. All changes are applied in one transaction.
// @Tags furnishing
// @Security ApiKeyAuth
// @Produce json
// @Param dry_run query bool false "Report without committing"
// @Success 200 {object} RunReport "Run report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /furnishing/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	dryRun := c.QueryBool("dry_run", false)
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Furnishing run requested", zap.Bool("dry_run", dryRun))

	report, err := h.service.Furnish(c.Context(), dryRun)
	if err != nil {
		return h.fail(c, "Furnishing run failed", err)
	}
	return c.JSON(report)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
