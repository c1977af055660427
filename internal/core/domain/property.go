package domain

// PropertyType - категория объекта недвижимости, как она хранится в коллекции properties.
type PropertyType string

const (
	PropertyTypeHouse     PropertyType = "House"
	PropertyTypeTownhouse PropertyType = "Townhouse"
	PropertyTypeCondos    PropertyType = "Condos"
	PropertyTypeDuplex    PropertyType = "Duplex"
	PropertyTypeStudio    PropertyType = "Studio"
	PropertyTypeVilla     PropertyType = "Villa"
	PropertyTypeApartment PropertyType = "Apartment"
	PropertyTypeOthers    PropertyType = "Others"
)

// FilterAll - значение фильтра, при котором фильтрация по типу не применяется.
const FilterAll = "All"

// PropertyTypes returns every known property type in display order.
func PropertyTypes() []PropertyType {
	return []PropertyType{
		PropertyTypeHouse,
		PropertyTypeTownhouse,
		PropertyTypeCondos,
		PropertyTypeDuplex,
		PropertyTypeStudio,
		PropertyTypeVilla,
		PropertyTypeApartment,
		PropertyTypeOthers,
	}
}

// Facility - удобство, доступное в объекте.
type Facility string

const (
	FacilityLaundry      Facility = "Laundry"
	FacilityCarParking   Facility = "CarParking"
	FacilitySports       Facility = "Sports"
	FacilityCutlery      Facility = "Cutlery"
	FacilityGym          Facility = "Gym"
	FacilitySwimmingpool Facility = "Swimmingpool"
	FacilityWifi         Facility = "Wifi"
	FacilityPetFriendly  Facility = "Pet-Friendly"
	FacilityConcierge    Facility = "Concierge"
)

// Property - карточка объекта. Записи из бэкенда и из резервного набора
// имеют одинаковую форму, поэтому вызывающий код не различает источник.
type Property struct {
	ID         string       `json:"$id"`
	Name       string       `json:"name"`
	Address    string       `json:"address"`
	Price      float64      `json:"price"`
	Image      string       `json:"image"`
	Bedrooms   int          `json:"bedrooms"`
	Bathrooms  int          `json:"bathrooms"`
	Area       float64      `json:"area"`
	Type       PropertyType `json:"type"`
	Rating     float64      `json:"rating"`
	Facilities []Facility   `json:"facilities"`
}

// clone returns a deep copy so callers never share the facilities slice.
func (p Property) clone() Property {
	out := p
	if p.Facilities != nil {
		out.Facilities = append([]Facility(nil), p.Facilities...)
	}
	return out
}

// QuerySpec - параметры выборки списка объектов. Создается на каждый вызов.
type QuerySpec struct {
	Filter string
	// Query принимается, но к запросу не применяется: полнотекстовые индексы
	// в коллекции пока не настроены.
	Query string
	// Limit <= 0 означает "без ограничения".
	Limit int
}

// HasTypeFilter reports whether results are narrowed to a single property type.
func (s QuerySpec) HasTypeFilter() bool {
	return s.Filter != "" && s.Filter != FilterAll
}

// HasLimit reports whether a result-count limit should be applied.
func (s QuerySpec) HasLimit() bool {
	return s.Limit > 0
}
