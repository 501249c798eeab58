package geography

import (
	"pickleshop/internal/pkg/errs"
)

// District is an immutable delivery sub-region with its head post office code.
// Exactly one postal code belongs to each district.
type District struct {
	name       string
	postalCode string
}

// Name returns the district name.
func (d District) Name() string {
	return d.name
}

// PostalCode returns the statically associated postal code.
func (d District) PostalCode() string {
	return d.postalCode
}

// Province is an immutable delivery region grouping its districts.
// District names are unique within a province.
type Province struct {
	name      string
	districts []District
}

// Name returns the province name.
func (p Province) Name() string {
	return p.name
}

// Districts returns a copy of the province's district list, so callers
// cannot mutate the catalog.
func (p Province) Districts() []District {
	out := make([]District, len(p.districts))
	copy(out, p.districts)
	return out
}

// catalog is the full delivery area: Sri Lankan provinces, their districts and
// the head post office postal code of each district. Loaded once at startup,
// never mutated.
var catalog = []Province{
	{name: "Western", districts: []District{
		{name: "Colombo", postalCode: "00100"},
		{name: "Gampaha", postalCode: "11000"},
		{name: "Kalutara", postalCode: "12000"},
	}},
	{name: "Central", districts: []District{
		{name: "Kandy", postalCode: "20000"},
		{name: "Matale", postalCode: "21000"},
		{name: "Nuwara Eliya", postalCode: "22200"},
	}},
	{name: "Southern", districts: []District{
		{name: "Galle", postalCode: "80000"},
		{name: "Matara", postalCode: "81000"},
		{name: "Hambantota", postalCode: "82000"},
	}},
	{name: "Northern", districts: []District{
		{name: "Jaffna", postalCode: "40000"},
		{name: "Kilinochchi", postalCode: "44000"},
		{name: "Mannar", postalCode: "41000"},
		{name: "Mullaitivu", postalCode: "42000"},
		{name: "Vavuniya", postalCode: "43000"},
	}},
	{name: "Eastern", districts: []District{
		{name: "Ampara", postalCode: "32000"},
		{name: "Batticaloa", postalCode: "30000"},
		{name: "Trincomalee", postalCode: "31000"},
	}},
	{name: "North Western", districts: []District{
		{name: "Kurunegala", postalCode: "60000"},
		{name: "Puttalam", postalCode: "61300"},
	}},
	{name: "North Central", districts: []District{
		{name: "Anuradhapura", postalCode: "50000"},
		{name: "Polonnaruwa", postalCode: "51000"},
	}},
	{name: "Uva", districts: []District{
		{name: "Badulla", postalCode: "90000"},
		{name: "Monaragala", postalCode: "91000"},
	}},
	{name: "Sabaragamuwa", districts: []District{
		{name: "Ratnapura", postalCode: "70000"},
		{name: "Kegalle", postalCode: "71000"},
	}},
}

// Provinces returns all provinces in catalog order.
func Provinces() []Province {
	out := make([]Province, len(catalog))
	copy(out, catalog)
	return out
}

// ProvinceByName looks up a province by its exact name.
func ProvinceByName(name string) (Province, error) {
	for _, p := range catalog {
		if p.name == name {
			return p, nil
		}
	}
	return Province{}, errs.NewObjectNotFoundError("province", name)
}

// DistrictsOf returns the districts belonging to the named province.
func DistrictsOf(province string) ([]District, error) {
	p, err := ProvinceByName(province)
	if err != nil {
		return nil, err
	}
	return p.Districts(), nil
}

// PostalCodeOf returns the postal code statically associated with the
// district within the named province.
func PostalCodeOf(province, district string) (string, error) {
	p, err := ProvinceByName(province)
	if err != nil {
		return "", err
	}
	for _, d := range p.districts {
		if d.name == district {
			return d.postalCode, nil
		}
	}
	return "", errs.NewObjectNotFoundError("district", district)
}
