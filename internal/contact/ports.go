package contact

type ContactServicePort interface {
	Submit(req SubmitContactRequest) (*ContactMessage, error)
}

var _ ContactServicePort = (*ContactService)(nil)
