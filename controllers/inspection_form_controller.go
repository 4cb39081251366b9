package controllers

import (
	"fmt"
	"inspection-app/dto"
	"inspection-app/middleware"
	"inspection-app/repositories"
	"inspection-app/services"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type InspectionFormController struct {
	Forms  *services.InspectionFormService
	Export *services.ExportService
}

func NewInspectionFormController(forms *services.InspectionFormService, export *services.ExportService) *InspectionFormController {
	return &InspectionFormController{Forms: forms, Export: export}
}

// verifier is the verifiedBy query parameter, or the authenticated caller.
func verifier(ctx *fiber.Ctx) string {
	if who := ctx.Query("verifiedBy"); who != "" {
		return who
	}
	return middleware.CallerIdentity(ctx)
}

// MissingCallNo answers a section prefix requested without a call number.
func (c *InspectionFormController) MissingCallNo(ctx *fiber.Ctx) error {
	return failure(ctx, fiber.StatusNotFound, "Inspection call number is required", nil)
}

func (c *InspectionFormController) GetFormData(ctx *fiber.Ctx) error {
	form, err := c.Forms.GetFormData(ctx.UserContext(), ctx.Params("callNo"))
	if err != nil {
		return respondError(ctx, "Form data not found", err)
	}
	return success(ctx, "Form data found", form)
}

func (c *InspectionFormController) ExportFormData(ctx *fiber.Ctx) error {
	callNo := ctx.Params("callNo")
	data, err := c.Export.ExportFormData(ctx.UserContext(), callNo)
	if err != nil {
		return respondError(ctx, "No data found for call "+callNo, err)
	}

	ctx.Set(fiber.HeaderContentType, xlsxContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="inspection_%s.xlsx"`, callNo))
	return ctx.Status(fiber.StatusOK).Send(data)
}

func (c *InspectionFormController) GetHistory(ctx *fiber.Ctx) error {
	history, err := c.Forms.GetHistory(ctx.UserContext(), ctx.Params("callNo"))
	if err != nil {
		return respondError(ctx, "History not found", err)
	}
	return success(ctx, "History found", history)
}

// PO details

func (c *InspectionFormController) GetPODetails(ctx *fiber.Ctx) error {
	po, err := c.Forms.GetPODetails(ctx.UserContext(), ctx.Params("callNo"))
	if err != nil {
		return respondError(ctx, "PO details not found", err)
	}
	return success(ctx, "PO details found", po)
}

func (c *InspectionFormController) SavePODetails(ctx *fiber.Ctx) error {
	var input dto.PODetails
	if err := ctx.BodyParser(&input); err != nil {
		return badRequest(ctx, err)
	}

	saved, err := c.Forms.SavePODetails(ctx.UserContext(), input, middleware.CallerIdentity(ctx))
	if err != nil {
		return respondError(ctx, "PO details not found", err)
	}
	return success(ctx, "PO details saved successfully", saved)
}

func (c *InspectionFormController) VerifyPODetails(ctx *fiber.Ctx) error {
	verified, err := c.Forms.VerifyPODetails(ctx.UserContext(), ctx.Params("callNo"), verifier(ctx))
	if err != nil {
		return respondError(ctx, "PO details not found", err)
	}
	return success(ctx, "PO details verified successfully", verified)
}

// Call details

func (c *InspectionFormController) ListCallDetails(ctx *fiber.Ctx) error {
	calls, err := c.Forms.ListCallDetails(ctx.UserContext(), repositories.CallDetailsFilter{
		ProductType:       ctx.Query("productType"),
		StageOfInspection: ctx.Query("stageOfInspection"),
	})
	if err != nil {
		return respondError(ctx, "Call details not found", err)
	}
	return success(ctx, "Call details found", calls)
}

func (c *InspectionFormController) GetCallDetails(ctx *fiber.Ctx) error {
	call, err := c.Forms.GetCallDetails(ctx.UserContext(), ctx.Params("callNo"))
	if err != nil {
		return respondError(ctx, "Call details not found", err)
	}
	return success(ctx, "Call details found", call)
}

func (c *InspectionFormController) SaveCallDetails(ctx *fiber.Ctx) error {
	var input dto.CallDetails
	if err := ctx.BodyParser(&input); err != nil {
		return badRequest(ctx, err)
	}

	saved, err := c.Forms.SaveCallDetails(ctx.UserContext(), input, middleware.CallerIdentity(ctx))
	if err != nil {
		return respondError(ctx, "Call details not found", err)
	}
	return success(ctx, "Call details saved successfully", saved)
}

func (c *InspectionFormController) UpdateCallDetails(ctx *fiber.Ctx) error {
	var input dto.CallDetails
	if err := ctx.BodyParser(&input); err != nil {
		return badRequest(ctx, err)
	}

	updated, err := c.Forms.UpdateCallDetails(ctx.UserContext(), input, middleware.CallerIdentity(ctx))
	if err != nil {
		return respondError(ctx, "Call details not found", err)
	}
	return success(ctx, "Call details updated successfully", updated)
}

func (c *InspectionFormController) VerifyCallDetails(ctx *fiber.Ctx) error {
	verified, err := c.Forms.VerifyCallDetails(ctx.UserContext(), ctx.Params("callNo"), verifier(ctx))
	if err != nil {
		return respondError(ctx, "Call details not found", err)
	}
	return success(ctx, "Call details verified successfully", verified)
}

// Sub PO details

func (c *InspectionFormController) GetSubPODetails(ctx *fiber.Ctx) error {
	sub, err := c.Forms.GetSubPODetails(ctx.UserContext(), ctx.Params("callNo"))
	if err != nil {
		return respondError(ctx, "Sub PO details not found", err)
	}
	return success(ctx, "Sub PO details found", sub)
}

func (c *InspectionFormController) SaveSubPODetails(ctx *fiber.Ctx) error {
	var input dto.SubPODetails
	if err := ctx.BodyParser(&input); err != nil {
		return badRequest(ctx, err)
	}

	saved, err := c.Forms.SaveSubPODetails(ctx.UserContext(), input, middleware.CallerIdentity(ctx))
	if err != nil {
		return respondError(ctx, "Sub PO details not found", err)
	}
	return success(ctx, "Sub PO details saved successfully", saved)
}

func (c *InspectionFormController) VerifySubPODetails(ctx *fiber.Ctx) error {
	verified, err := c.Forms.VerifySubPODetails(ctx.UserContext(), ctx.Params("callNo"), verifier(ctx))
	if err != nil {
		return respondError(ctx, "Sub PO details not found", err)
	}
	return success(ctx, "Sub PO details verified successfully", verified)
}

// Production lines

func (c *InspectionFormController) GetProductionLines(ctx *fiber.Ctx) error {
	lines, err := c.Forms.GetProductionLines(ctx.UserContext(), ctx.Params("callNo"))
	if err != nil {
		return respondError(ctx, "Production lines not found", err)
	}
	return success(ctx, "Production lines found", lines)
}

func (c *InspectionFormController) SaveProductionLines(ctx *fiber.Ctx) error {
	var input []dto.ProductionLine
	if err := ctx.BodyParser(&input); err != nil {
		return badRequest(ctx, err)
	}

	saved, err := c.Forms.SaveProductionLines(ctx.UserContext(), ctx.Params("callNo"), input, middleware.CallerIdentity(ctx))
	if err != nil {
		return respondError(ctx, "Production lines not found", err)
	}
	return success(ctx, "Production lines saved successfully", saved)
}

func (c *InspectionFormController) VerifyProductionLines(ctx *fiber.Ctx) error {
	verified, err := c.Forms.VerifyProductionLines(ctx.UserContext(), ctx.Params("callNo"), verifier(ctx))
	if err != nil {
		return respondError(ctx, "No production lines found", err)
	}
	return success(ctx, "Production lines verified successfully", verified)
}
