package ports

import (
	"pickleshop/internal/core/domain/model/kernel"
	"pickleshop/internal/core/domain/model/order"
)

// Receipt is a generated order receipt artifact.
type Receipt struct {
	// Filename is the suggested download name for the artifact.
	Filename string

	// Content is the rendered document.
	Content []byte
}

// ReceiptGenerator renders a receipt document for a persisted order.
type ReceiptGenerator interface {
	// Generate renders a receipt from the order details, its assigned
	// identifier and the derived total amount.
	Generate(details order.Draft, orderID kernel.UUID, total int) (Receipt, error)
}
