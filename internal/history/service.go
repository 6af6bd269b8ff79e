package history

import (
	"encoding/json"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type HistoryService struct {
	DB *gorm.DB
}

// Record appends one audit entry. It runs in a transaction so a failed
// metadata write leaves no partial row behind. Callers are expected to
// log and swallow the returned error: audit failures must never replace
// the primary response.
func (hs *HistoryService) Record(entry ServiceRequest, payload any) error {
	var meta []byte
	if payload != nil {
		if b, err := json.Marshal(payload); err == nil {
			meta = b
		}
	}

	return hs.DB.Transaction(func(tx *gorm.DB) error {
		row := ServiceRequest{
			UserID:    entry.UserID,
			Service:   entry.Service,
			Result:    entry.Result,
			Metadata:  meta,
			CreatedAt: time.Now(),
		}
		return tx.Create(&row).Error
	})
}

// GetHistory returns one page of a user's records, newest first.
func (hs *HistoryService) GetHistory(userID uint, page, pageSize int) (*HistoryPage, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	if err := hs.DB.Model(&ServiceRequest{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, err
	}

	var records []ServiceRequest
	err := hs.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return &HistoryPage{
		Records:  records,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Export renders a user's full history as an .xlsx workbook.
func (hs *HistoryService) Export(userID uint) ([]byte, error) {
	var records []ServiceRequest
	err := hs.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "History")
	_ = f.SetSheetRow("History", "A1", &[]interface{}{"id", "service", "result", "created_at"})
	for i, rec := range records {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		_ = f.SetSheetRow("History", cell, &[]interface{}{
			rec.ID, rec.Service, rec.Result, rec.CreatedAt.Format(time.RFC3339),
		})
	}

	b, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
