package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/pumpshop/seed/internal/dto"
	"github.com/pumpshop/seed/internal/services"
)

type JobHandler struct {
	auth *services.AuthService
	jobs *services.JobService
}

func NewJobHandler(auth *services.AuthService, jobs *services.JobService) *JobHandler {
	return &JobHandler{auth: auth, jobs: jobs}
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	v, err := currentViewer(c, h.auth)
	if err != nil {
		return unauthorized(c)
	}

	var q dto.JobQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid query parameters"})
	}
	return c.JSON(h.jobs.List(v, q))
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	v, err := currentViewer(c, h.auth)
	if err != nil {
		return unauthorized(c)
	}

	detail, err := h.jobs.Get(v, c.Params("jobNumber"))
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Service request not found"})
		}
		return err
	}
	return c.JSON(detail)
}

func (h *JobHandler) Stats(c *fiber.Ctx) error {
	v, err := currentViewer(c, h.auth)
	if err != nil {
		return unauthorized(c)
	}
	return c.JSON(h.jobs.Stats(v))
}
