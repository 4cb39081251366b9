package controllers

import (
	"inspection-app/dto"
	"inspection-app/middleware"
	"inspection-app/services"
	"inspection-app/types"

	"github.com/gofiber/fiber/v2"
)

type ScheduleController struct {
	Schedules *services.ScheduleService
}

func NewScheduleController(schedules *services.ScheduleService) *ScheduleController {
	return &ScheduleController{Schedules: schedules}
}

func (c *ScheduleController) Schedule(ctx *fiber.Ctx) error {
	var input dto.ScheduleRequest
	if err := ctx.BodyParser(&input); err != nil {
		return badRequest(ctx, err)
	}

	schedule, err := c.Schedules.Schedule(ctx.UserContext(), input, middleware.CallerIdentity(ctx))
	if err != nil {
		return respondError(ctx, "Schedule not found", err)
	}
	return success(ctx, "Call scheduled successfully", schedule)
}

func (c *ScheduleController) Reschedule(ctx *fiber.Ctx) error {
	var input dto.ScheduleRequest
	if err := ctx.BodyParser(&input); err != nil {
		return badRequest(ctx, err)
	}

	schedule, err := c.Schedules.Reschedule(ctx.UserContext(), input, middleware.CallerIdentity(ctx))
	if err != nil {
		return respondError(ctx, "Call is not scheduled yet", err)
	}
	return success(ctx, "Call rescheduled successfully", schedule)
}

func (c *ScheduleController) GetAll(ctx *fiber.Ctx) error {
	schedules, err := c.Schedules.GetAll(ctx.UserContext())
	if err != nil {
		return respondError(ctx, "Schedules not found", err)
	}
	return success(ctx, "Schedules found", schedules)
}

func (c *ScheduleController) GetByCallNo(ctx *fiber.Ctx) error {
	schedule, err := c.Schedules.GetByCallNo(ctx.UserContext(), ctx.Params("callNo"))
	if err != nil {
		return respondError(ctx, "Schedule not found", err)
	}
	return success(ctx, "Schedule found", schedule)
}

func (c *ScheduleController) GetHistory(ctx *fiber.Ctx) error {
	history, err := c.Schedules.GetHistory(ctx.UserContext(), ctx.Params("callNo"))
	if err != nil {
		return respondError(ctx, "Schedule history not found", err)
	}
	return success(ctx, "Schedule history found", history)
}

func (c *ScheduleController) IsScheduled(ctx *fiber.Ctx) error {
	scheduled, err := c.Schedules.IsScheduled(ctx.UserContext(), ctx.Params("callNo"))
	if err != nil {
		return respondError(ctx, "Schedule not found", err)
	}
	return success(ctx, "Schedule checked", scheduled)
}

func (c *ScheduleController) CountByDate(ctx *fiber.Ctx) error {
	date, err := types.ParseLocalDate(ctx.Query("date"))
	if err != nil {
		return failure(ctx, fiber.StatusBadRequest, "Invalid date", err)
	}

	count, err := c.Schedules.CountByDate(ctx.UserContext(), date)
	if err != nil {
		return respondError(ctx, "Schedules not found", err)
	}
	return success(ctx, "Schedules counted", count)
}
