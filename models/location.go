package models

// LocationKind names what a Location identifier refers to.
type LocationKind string

const (
	KindCity        LocationKind = "city"
	KindSubdistrict LocationKind = "subdistrict"
	KindCountry     LocationKind = "country"
)

// Location is an origin or destination of a cost request: an identifier
// tagged with the kind of area it points to.
//
// Kind is free-form on purpose: origins that are not a city and destinations
// that are neither a city nor a country are treated as subdistricts.
type Location struct {
	Kind LocationKind
	ID   string
}

// CityOf returns a city Location.
func CityOf(id string) Location {
	return Location{Kind: KindCity, ID: id}
}

// SubdistrictOf returns a subdistrict Location.
func SubdistrictOf(id string) Location {
	return Location{Kind: KindSubdistrict, ID: id}
}

// CountryOf returns an international destination.
func CountryOf(id string) Location {
	return Location{Kind: KindCountry, ID: id}
}

// OriginKind normalizes the kind of an origin: anything but a city is a subdistrict.
func (l Location) OriginKind() LocationKind {
	if l.Kind == KindCity {
		return KindCity
	}
	return KindSubdistrict
}

// DestinationKind normalizes the kind of a destination: anything but a city
// or a country is a subdistrict.
func (l Location) DestinationKind() LocationKind {
	switch l.Kind {
	case KindCity, KindCountry:
		return l.Kind
	default:
		return KindSubdistrict
	}
}
