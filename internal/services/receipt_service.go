// internal/services/receipt_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/JonathanMaverick/split-chain-backend/internal/config"
	"github.com/JonathanMaverick/split-chain-backend/internal/ocr"
)

const maxReceiptSize = 10 << 20 // 10 MB

// ReceiptScanner is the slice of the OCR client the receipt service needs.
type ReceiptScanner interface {
	ScanReceipt(ctx context.Context, filename string, file io.Reader) (*ocr.ScannedReceipt, error)
}

// ReceiptService turns an uploaded receipt photo into a draft bill. The
// image goes to storage first so a failed scan can be retried without a
// re-upload, then to the OCR service for itemization.
type ReceiptService struct {
	config  *config.Config
	scanner ReceiptScanner
	storage *StorageService
}

// DraftBill is the scanned receipt shaped for the bill creation form.
// Nothing is persisted until the user reviews it and submits.
type DraftBill struct {
	StoreName string          `json:"store_name"`
	BillDate  time.Time       `json:"bill_date"`
	Tax       float64         `json:"tax"`
	Items     []DraftBillItem `json:"items"`
	ImageURL  string          `json:"image_url"`
}

type DraftBillItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func NewReceiptService(config *config.Config, scanner ReceiptScanner, storage *StorageService) *ReceiptService {
	return &ReceiptService{
		config:  config,
		scanner: scanner,
		storage: storage,
	}
}

// ProcessReceipt stores the uploaded image and scans it into a draft bill.
func (s *ReceiptService) ProcessReceipt(ctx context.Context, fileHeader *multipart.FileHeader) (*DraftBill, error) {
	if fileHeader.Size > maxReceiptSize {
		return nil, fmt.Errorf("receipt image exceeds %d bytes", maxReceiptSize)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxReceiptSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(data)) > maxReceiptSize {
		return nil, fmt.Errorf("receipt image exceeds %d bytes", maxReceiptSize)
	}

	upload, err := s.storage.StoreReceiptImage(fileHeader.Filename, data)
	if err != nil {
		return nil, err
	}

	scanned, err := s.scanner.ScanReceipt(ctx, fileHeader.Filename, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("receipt scan failed: %w", err)
	}

	draft := &DraftBill{
		StoreName: scanned.StoreName,
		Tax:       scanned.Tax,
		ImageURL:  upload.URL,
		Items:     make([]DraftBillItem, 0, len(scanned.Items)),
	}

	draft.BillDate = parseBillDate(scanned.BillDate)

	for _, item := range scanned.Items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		draft.Items = append(draft.Items, DraftBillItem{
			Name:     item.Name,
			Quantity: qty,
			Price:    item.Price,
		})
	}

	logrus.WithFields(logrus.Fields{
		"store": draft.StoreName,
		"items": len(draft.Items),
	}).Info("Receipt scanned")

	return draft, nil
}

// parseBillDate tries the formats the OCR service is known to emit and
// falls back to today when none match.
func parseBillDate(raw string) time.Time {
	formats := []string{
		time.RFC3339,
		"2006-01-02",
		"02/01/2006",
		"01/02/2006",
		"2006/01/02",
	}
	for _, layout := range formats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Now()
}
