package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessAnalyzeImage     = "image analyzed successfully"
	MessageSuccessSaveScannedItems = "scanned items saved successfully"

	MessageFailedAnalyzeImage     = "failed to analyze image"
	MessageFailedSaveScannedItems = "failed to save scanned items"

	ErrInvalidScanType       = errors.New("scan type must be groceries or receipt")
	ErrClassifierUnavailable = errors.New("image classifier unavailable")
)

const (
	ScanTypeGroceries = "groceries"
	ScanTypeReceipt   = "receipt"
)

type (
	AnalyzeImageRequest struct {
		Image    *multipart.FileHeader `json:"image" form:"image" validate:"required"`
		ScanType string                `json:"scan_type" form:"scan_type" validate:"required,oneof=groceries receipt"`
	}

	DetectedItem struct {
		Name       string  `json:"name"`
		Quantity   string  `json:"quantity,omitempty"`
		Confidence float64 `json:"confidence"`
		Category   string  `json:"category,omitempty"`
	}

	AnalyzeImageResponse struct {
		ScanID   string         `json:"scan_id"`
		ScanType string         `json:"scan_type"`
		ImageURL string         `json:"image_url,omitempty"`
		Items    []DetectedItem `json:"items"`
	}

	SaveScannedItemRequest struct {
		Name       string  `json:"name" validate:"required"`
		Quantity   string  `json:"quantity"`
		Confidence float64 `json:"confidence" validate:"min=0,max=1"`
		Category   string  `json:"category"`
	}

	SaveScannedItemsRequest struct {
		Items []SaveScannedItemRequest `json:"items" validate:"required,min=1,dive"`
	}
)
