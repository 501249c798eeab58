package http

import (
	"pickleshop/internal/core/domain/model/order"
	"pickleshop/internal/core/domain/services"
)

// ErrorResponse is the uniform error body for every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SubmitOrderRequest carries the order draft as entered plus the client's
// snapshot slot name.
type SubmitOrderRequest struct {
	SnapshotSlot string `json:"snapshot_slot"`

	FullName   string `json:"full_name"`
	Province   string `json:"province"`
	District   string `json:"district"`
	PostalCode string `json:"postal_code"`

	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`

	DeliveryLine1 string `json:"delivery_line1"`
	DeliveryLine2 string `json:"delivery_line2"`
	DeliveryCity  string `json:"delivery_city"`
	SameAsBilling bool   `json:"same_as_billing"`

	WhatsappNumber  string `json:"whatsapp_number"`
	PackageSize     string `json:"package_size"`
	NumberOfBottles int    `json:"number_of_bottles"`
}

func (r SubmitOrderRequest) toDraft() order.Draft {
	return order.Draft{
		FullName:        r.FullName,
		Province:        r.Province,
		District:        r.District,
		PostalCode:      r.PostalCode,
		AddressLine1:    r.AddressLine1,
		AddressLine2:    r.AddressLine2,
		City:            r.City,
		DeliveryLine1:   r.DeliveryLine1,
		DeliveryLine2:   r.DeliveryLine2,
		DeliveryCity:    r.DeliveryCity,
		SameAsBilling:   r.SameAsBilling,
		WhatsappNumber:  r.WhatsappNumber,
		PackageSize:     r.PackageSize,
		NumberOfBottles: r.NumberOfBottles,
	}
}

// SubmitOrderResponse confirms a persisted order.
type SubmitOrderResponse struct {
	OrderID         string `json:"order_id"`
	TotalAmount     int    `json:"total_amount"`
	ReceiptFilename string `json:"receipt_filename"`
	ThankYouDelayMs int64  `json:"thank_you_delay_ms"`
}

// DraftResponse is the restored draft plus the derived state a client needs
// to repopulate the form without re-running the cascade itself.
type DraftResponse struct {
	FullName   string `json:"full_name"`
	Province   string `json:"province"`
	District   string `json:"district"`
	PostalCode string `json:"postal_code"`

	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`

	DeliveryLine1 string `json:"delivery_line1"`
	DeliveryLine2 string `json:"delivery_line2"`
	DeliveryCity  string `json:"delivery_city"`
	SameAsBilling bool   `json:"same_as_billing"`

	WhatsappNumber  string `json:"whatsapp_number"`
	PackageSize     string `json:"package_size"`
	NumberOfBottles int    `json:"number_of_bottles"`

	Districts   []DistrictResponse `json:"districts"`
	TotalAmount int                `json:"total_amount"`
}

func draftResponseFrom(controller *services.FormController) DraftResponse {
	draft := controller.Draft()

	districts := controller.Districts()
	districtResponses := make([]DistrictResponse, 0, len(districts))
	for _, d := range districts {
		districtResponses = append(districtResponses, DistrictResponse{
			Name:       d.Name(),
			PostalCode: d.PostalCode(),
		})
	}

	return DraftResponse{
		FullName:        draft.FullName,
		Province:        draft.Province,
		District:        draft.District,
		PostalCode:      controller.PostalCode(),
		AddressLine1:    draft.AddressLine1,
		AddressLine2:    draft.AddressLine2,
		City:            draft.City,
		DeliveryLine1:   draft.DeliveryLine1,
		DeliveryLine2:   draft.DeliveryLine2,
		DeliveryCity:    draft.DeliveryCity,
		SameAsBilling:   draft.SameAsBilling,
		WhatsappNumber:  draft.WhatsappNumber,
		PackageSize:     draft.PackageSize,
		NumberOfBottles: draft.NumberOfBottles,
		Districts:       districtResponses,
		TotalAmount:     controller.Total(),
	}
}

// OrderSummaryResponse is the display context for the thank-you view.
type OrderSummaryResponse struct {
	OrderID         string `json:"order_id"`
	FullName        string `json:"full_name"`
	Province        string `json:"province"`
	District        string `json:"district"`
	PostalCode      string `json:"postal_code"`
	DeliveryLine1   string `json:"delivery_line1"`
	DeliveryCity    string `json:"delivery_city"`
	PackageSize     string `json:"package_size"`
	NumberOfBottles int    `json:"number_of_bottles"`
	TotalAmount     int    `json:"total_amount"`
}

// CredentialsRequest is the body for sign-up and sign-in.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse carries the bearer token for subsequent requests.
type SignInResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// ContactRequest is the contact-form body.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// DistrictResponse is one district with its postal code.
type DistrictResponse struct {
	Name       string `json:"name"`
	PostalCode string `json:"postal_code"`
}

// PriceResponse is one package size with its unit price.
type PriceResponse struct {
	Size      string `json:"size"`
	UnitPrice int    `json:"unit_price"`
}
