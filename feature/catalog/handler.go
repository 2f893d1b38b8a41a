package catalog

import (
	"github.com/gofiber/fiber/v2"

	"ornasync/core/utils"
	"ornasync/feature/codex"
	"ornasync/feature/snapshot"
)

// Handler handles HTTP requests for the catalogue.
type Handler struct {
	service *Service
	locales snapshot.LocaleStrings
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, locales snapshot.LocaleStrings) *Handler {
	return &Handler{service: service, locales: locales}
}

// RegisterRoutes registers the catalogue routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api")
	group.Get("/items", h.HandleItems)
	group.Get("/monsters", h.HandleMonsters)
	group.Get("/skills", h.HandleSkills)
	group.Get("/pets", h.HandlePets)
	group.Get("/coverage/:kind", h.HandleCoverage)
}

func queryFromCtx(c *fiber.Ctx) Query {
	return Query{
		Name: utils.ToString(c.Query("name")),
		Tier: utils.ToInt(c.Query("tier")),
		Sort: c.Query("sort"),
	}
}

// HandleItems returns the items matching the query parameters.
func (h *Handler) HandleItems(c *fiber.Ctx) error {
	return c.JSON(h.service.Items(queryFromCtx(c)))
}

// HandleMonsters returns the monsters, bosses and raids matching the query
// parameters.
func (h *Handler) HandleMonsters(c *fiber.Ctx) error {
	return c.JSON(h.service.Monsters(queryFromCtx(c)))
}

// HandleSkills returns the skills matching the query parameters.
func (h *Handler) HandleSkills(c *fiber.Ctx) error {
	return c.JSON(h.service.Skills(queryFromCtx(c)))
}

// HandlePets returns the followers matching the query parameters.
func (h *Handler) HandlePets(c *fiber.Ctx) error {
	return c.JSON(h.service.Pets(queryFromCtx(c)))
}

// HandleCoverage returns the entities of a kind present on only one site.
func (h *Handler) HandleCoverage(c *fiber.Ctx) error {
	kind := codex.Kind(c.Params("kind"))
	switch kind {
	case codex.KindItems, codex.KindMonsters, codex.KindBosses,
		codex.KindRaids, codex.KindSkills, codex.KindFollowers:
	default:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown kind",
		})
	}
	return c.JSON(h.service.Coverage(kind, h.locales))
}
