package controller

import (
	"errors"

	"exam-variation-be/internal/dto"
	"exam-variation-be/internal/entity"
	"exam-variation-be/internal/pkg/serverutils"
	"exam-variation-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQuestionController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
	BulkGenerate(ctx *fiber.Ctx) error
	Manipulate(ctx *fiber.Ctx) error
}

type questionController struct {
	service service.IQuestionService
}

func NewQuestionController(service service.IQuestionService) IQuestionController {
	return &questionController{service: service}
}

func (c *questionController) RegisterRoutes(r fiber.Router) {
	r.Get("/questions", c.GetAll)
	r.Post("/generate", c.Generate)
	r.Post("/bulk-generate", c.BulkGenerate)
	r.Post("/manipulate", c.Manipulate)
}

func (c *questionController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *questionController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateVariationsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid request body"))
	}

	res, err := c.service.Generate(ctx.UserContext(), req.QuestionId)
	if err != nil {
		if errors.Is(err, entity.ErrQuestionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("Question not found"))
		}
		return err
	}

	return ctx.JSON(res)
}

func (c *questionController) BulkGenerate(ctx *fiber.Ctx) error {
	res, err := c.service.BulkGenerate(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *questionController) Manipulate(ctx *fiber.Ctx) error {
	var req dto.ManipulateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Manipulate(ctx.UserContext(), &req)
	if err != nil {
		if errors.Is(err, service.ErrQuestionTextRequired) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Question is required"))
		}
		return err
	}

	return ctx.JSON(res)
}
