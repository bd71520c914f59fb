package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/planofit/planofit-whatsapp-be/internal/modules/intake/repositories"
)

type ClientHandler struct {
	clientRepo repositories.ClientRepo
}

func NewClientHandler(clientRepo repositories.ClientRepo) *ClientHandler {
	return &ClientHandler{clientRepo: clientRepo}
}

// ListClients godoc
// @Summary List clients
// @Description Returns the most recent clients
// @Tags Clients
// @Produce json
// @Param limit query int false "Max rows" default(100)
// @Success 200 {array} models.Client
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)

	clients, err := h.clientRepo.List(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch clients"})
	}

	return c.JSON(clients)
}

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
