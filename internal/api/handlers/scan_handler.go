package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pixelpantry/domain"
	"pixelpantry/internal/api/presenters"
	"pixelpantry/pkg/scanner"
)

type (
	ScanHandler interface {
		AnalyzeImage(c *fiber.Ctx) error
		SaveScannedItems(c *fiber.Ctx) error
	}

	scanHandler struct {
		scannerService scanner.ScannerService
		validator      *validator.Validate
	}
)

func NewScanHandler(scannerService scanner.ScannerService, validator *validator.Validate) ScanHandler {
	return &scanHandler{
		scannerService: scannerService,
		validator:      validator,
	}
}

func (h *scanHandler) AnalyzeImage(c *fiber.Ctx) error {
	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req := domain.AnalyzeImageRequest{
		Image:    image,
		ScanType: c.FormValue("scan_type", domain.ScanTypeGroceries),
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeImage, err)
	}

	res, err := h.scannerService.AnalyzeImage(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAnalyzeImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAnalyzeImage)
}

func (h *scanHandler) SaveScannedItems(c *fiber.Ctx) error {
	req := new(domain.SaveScannedItemsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveScannedItems, err)
	}

	if err := h.scannerService.SaveScannedItems(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedSaveScannedItems, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessSaveScannedItems)
}
