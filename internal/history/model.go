package history

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ServiceFaceDetection = "face-detection"
	ServiceVoiceClone    = "voice-clone"
)

// ServiceRequest is one append-only audit record: who called which
// service, when, and how it ended.
type ServiceRequest struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uint          `gorm:"index" json:"user_id,omitempty"`
	Service   string         `gorm:"size:50;not null;index" json:"service"`
	Result    string         `gorm:"type:text;not null" json:"result"`
	Metadata  datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (ServiceRequest) TableName() string {
	return "service_requests"
}

type HistoryPage struct {
	Records  []ServiceRequest `json:"records"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}
