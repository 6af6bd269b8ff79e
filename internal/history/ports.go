package history

type HistoryServicePort interface {
	Record(entry ServiceRequest, payload any) error
	GetHistory(userID uint, page, pageSize int) (*HistoryPage, error)
	Export(userID uint) ([]byte, error)
}

var _ HistoryServicePort = (*HistoryService)(nil)
