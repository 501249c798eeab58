package order

// Draft is the in-progress, mutable representation of an order before
// persistence. It is owned by the form controller, serialized as-is into the
// draft snapshot slot, and turned into an Order by the submission pipeline.
//
// The billing block is AddressLine1/AddressLine2/City; the delivery block
// mirrors it while SameAsBilling is on. PostalCode is derived from the
// province/district selection and is never edited directly.
type Draft struct {
	FullName string `json:"full_name,omitempty"`

	Province   string `json:"province,omitempty"`
	District   string `json:"district,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`

	AddressLine1 string `json:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city,omitempty"`

	DeliveryLine1 string `json:"delivery_line1,omitempty"`
	DeliveryLine2 string `json:"delivery_line2,omitempty"`
	DeliveryCity  string `json:"delivery_city,omitempty"`
	SameAsBilling bool   `json:"same_as_billing,omitempty"`

	WhatsappNumber  string `json:"whatsapp_number,omitempty"`
	PackageSize     string `json:"package_size,omitempty"`
	NumberOfBottles int    `json:"number_of_bottles,omitempty"`
}

// IsEmpty reports whether no field of the draft has been filled in.
func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

// ApplySnapshot repopulates the draft field-by-field from a persisted
// snapshot, skipping any field whose snapshot value is empty or absent so
// that in-progress input is never overwritten with blanks.
func (d *Draft) ApplySnapshot(snapshot Draft) {
	applyString(&d.FullName, snapshot.FullName)
	applyString(&d.Province, snapshot.Province)
	applyString(&d.District, snapshot.District)
	applyString(&d.PostalCode, snapshot.PostalCode)
	applyString(&d.AddressLine1, snapshot.AddressLine1)
	applyString(&d.AddressLine2, snapshot.AddressLine2)
	applyString(&d.City, snapshot.City)
	applyString(&d.DeliveryLine1, snapshot.DeliveryLine1)
	applyString(&d.DeliveryLine2, snapshot.DeliveryLine2)
	applyString(&d.DeliveryCity, snapshot.DeliveryCity)
	applyString(&d.WhatsappNumber, snapshot.WhatsappNumber)
	applyString(&d.PackageSize, snapshot.PackageSize)

	if snapshot.SameAsBilling {
		d.SameAsBilling = true
	}
	if snapshot.NumberOfBottles != 0 {
		d.NumberOfBottles = snapshot.NumberOfBottles
	}
}

func applyString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
