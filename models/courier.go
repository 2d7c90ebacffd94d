package models

// couriers maps every courier code known to Rajaongkir to its display name.
var couriers = map[string]string{
	"cahaya":        "Cahaya Logistik (CAHAYA)",
	"dse":           "21 Express (DSE)",
	"esl":           "Eka Sari Lorena (ESL)",
	"expedito*":     "Expedito*",
	"first":         "First Logistics (FIRST)",
	"idl":           "IDL Cargo (IDL)",
	"indah":         "Indah Logistic (INDAH)",
	"j&t":           "J&T Express (J&T)",
	"jet":           "JET Express (JET)",
	"jne":           "Jalur Nugraha Ekakurir (JNE)",
	"lion":          "Lion Parcel (LION)",
	"ncs":           "Nusantara Card Semesta (NCS)",
	"ninja-express": "Ninja Xpress (NINJA)",
	"pahala":        "Pahala Kencana Express (PAHALA)",
	"pandu":         "Pandu Logistics (PANDU)",
	"pcp":           "Priority Cargo and Package (PCP)",
	"pos":           "POS Indonesia (POS)",
	"rex":           "Royal Express Indonesia (REX)",
	"rpx":           "RPX Holding (RPX)",
	"sap":           "SAP Express (SAP)",
	"sicepat":       "SiCepat Express (SICEPAT)",
	"slis":          "Solusi Express (SLIS)",
	"star":          "Star Cargo (STAR)",
	"tiki":          "Citra Van Titipan Kilat (TIKI)",
	"wahana":        "Wahana Prestasi Logistik (WAHANA)",
}

// CourierCatalog returns a copy of the courier catalog: code to display name.
func CourierCatalog() map[string]string {
	out := make(map[string]string, len(couriers))
	for code, name := range couriers {
		out[code] = name
	}
	return out
}
