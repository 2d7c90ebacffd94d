package models

// Province is an entry of the province endpoint.
type Province struct {
	ProvinceID string `json:"province_id"`
	Province   string `json:"province"`
}

// City is an entry of the city endpoint.
type City struct {
	CityID     string `json:"city_id"`
	ProvinceID string `json:"province_id"`
	Province   string `json:"province"`
	Type       string `json:"type"`
	CityName   string `json:"city_name"`
	PostalCode string `json:"postal_code"`
}

// Subdistrict is an entry of the subdistrict endpoint (pro accounts only).
type Subdistrict struct {
	SubdistrictID   string `json:"subdistrict_id"`
	ProvinceID      string `json:"province_id"`
	Province        string `json:"province"`
	CityID          string `json:"city_id"`
	City            string `json:"city"`
	Type            string `json:"type"`
	SubdistrictName string `json:"subdistrict_name"`
}

// InternationalOrigin is a domestic city that international shipments can leave from.
type InternationalOrigin struct {
	CityID     string `json:"city_id"`
	CityName   string `json:"city_name"`
	ProvinceID string `json:"province_id"`
	Province   string `json:"province"`
}

// InternationalDestination is a country that international shipments can go to.
type InternationalDestination struct {
	CountryID   string `json:"country_id"`
	CountryName string `json:"country_name"`
}
