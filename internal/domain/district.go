package domain

// District is one entry of the district/municipality catalogue: a district
// name with its ordered municipalities. Immutable after load.
type District struct {
	Name           string   `json:"distrito"`
	Municipalities []string `json:"concelhos"`
}

// DistrictCatalogue exposes the read-only district reference data loaded at
// boot. DistrictNames preserves the catalogue's file order.
type DistrictCatalogue interface {
	DistrictNames() []string
	// MunicipalitiesByDistrict returns the district name to municipality
	// list mapping consumed by the registration form script.
	MunicipalitiesByDistrict() map[string][]string
}
