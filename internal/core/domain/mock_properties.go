package domain

const imageQuery = "?q=60&w=640&auto=format&fit=crop&ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D"

var mockProperties = []Property{
	{
		ID:         "1",
		Name:       "Luxury Villa",
		Address:    "123 Ocean View Dr, Miami, FL",
		Price:      850000,
		Image:      "https://images.unsplash.com/photo-1580587771525-78b9dba3b914" + imageQuery,
		Bedrooms:   4,
		Bathrooms:  3,
		Area:       2500,
		Type:       PropertyTypeVilla,
		Rating:     4.8,
		Facilities: []Facility{FacilityGym, FacilitySwimmingpool, FacilityWifi, FacilityCarParking},
	},
	{
		ID:         "2",
		Name:       "Modern Apartment",
		Address:    "456 Downtown Ave, New York, NY",
		Price:      550000,
		Image:      "https://images.unsplash.com/photo-1605146768851-eda79da39897" + imageQuery,
		Bedrooms:   2,
		Bathrooms:  2,
		Area:       1200,
		Type:       PropertyTypeApartment,
		Rating:     4.5,
		Facilities: []Facility{FacilityGym, FacilityWifi, FacilityLaundry},
	},
	{
		ID:         "3",
		Name:       "Cozy House",
		Address:    "789 Suburban St, Austin, TX",
		Price:      425000,
		Image:      "https://images.unsplash.com/photo-1568605114967-8130f3a36994" + imageQuery,
		Bedrooms:   3,
		Bathrooms:  2,
		Area:       1800,
		Type:       PropertyTypeHouse,
		Rating:     4.3,
		Facilities: []Facility{FacilityLaundry, FacilityCarParking, FacilityWifi},
	},
	{
		ID:         "4",
		Name:       "Downtown Condo",
		Address:    "321 City Center Blvd, San Francisco, CA",
		Price:      720000,
		Image:      "https://images.unsplash.com/photo-1564013799919-ab600027ffc6" + imageQuery,
		Bedrooms:   2,
		Bathrooms:  2,
		Area:       1100,
		Type:       PropertyTypeCondos,
		Rating:     4.6,
		Facilities: []Facility{FacilityGym, FacilitySwimmingpool, FacilityWifi, FacilityConcierge},
	},
}

// MockProperties возвращает копию резервного набора объектов,
// который отдается вместо данных бэкенда при его недоступности.
func MockProperties() []Property {
	out := make([]Property, len(mockProperties))
	for i, p := range mockProperties {
		out[i] = p.clone()
	}
	return out
}
