package infra

import "context"

type ProductClientInterface interface {
	AdjustStock(ctx context.Context, productID uint64, quantity int) error
}

var _ ProductClientInterface = (*ProductClient)(nil)

// Mailer is the outbound delivery collaborator. It reports success as a
// bare boolean; senders treat anything else as a failed delivery.
type Mailer interface {
	Send(to, subject, body string, isHTML bool) bool
}

var _ Mailer = (*SMTPMailer)(nil)
