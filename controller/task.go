package controller

import (
	"strconv"
	"task_management_ms/domain"
	"task_management_ms/dtos/request"
	"task_management_ms/middleware"
	"task_management_ms/services"

	"github.com/gofiber/fiber/v2"
)

type ITaskController interface {
	List(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Toggle(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

type TaskController struct {
	service services.ITaskService
}

func NewTaskController(service services.ITaskService) ITaskController {
	return &TaskController{service: service}
}

func (tc *TaskController) List(c *fiber.Ctx) error {
	user := c.Locals(middleware.UserKey).(*domain.User)

	tasks, err := tc.service.List(user.Name)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(tasks)
}

func (tc *TaskController) Create(c *fiber.Ctx) error {
	user := c.Locals(middleware.UserKey).(*domain.User)
	body := c.Locals("body").(*request.CreateTaskRequest)

	task, err := tc.service.Create(user.Name, body.Name)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (tc *TaskController) Toggle(c *fiber.Ctx) error {
	user := c.Locals(middleware.UserKey).(*domain.User)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid task id"})
	}

	found, err := tc.service.Toggle(user.Name, uint(id))
	if err != nil {
		return errorResponse(c, err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "task not found"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func (tc *TaskController) Delete(c *fiber.Ctx) error {
	user := c.Locals(middleware.UserKey).(*domain.User)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid task id"})
	}

	found, err := tc.service.Delete(user.Name, uint(id))
	if err != nil {
		return errorResponse(c, err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "task not found"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
