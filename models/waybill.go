package models

// Waybill is the tracking record returned by the waybill endpoint.
type Waybill struct {
	Delivered      bool            `json:"delivered"`
	Summary        WaybillSummary  `json:"summary"`
	Details        WaybillDetails  `json:"details"`
	DeliveryStatus DeliveryStatus  `json:"delivery_status"`
	Manifest       []ManifestEntry `json:"manifest"`
}

// WaybillSummary is the headline of a tracked shipment.
type WaybillSummary struct {
	CourierCode   string `json:"courier_code"`
	CourierName   string `json:"courier_name"`
	WaybillNumber string `json:"waybill_number"`
	ServiceCode   string `json:"service_code"`
	WaybillDate   string `json:"waybill_date"`
	ShipperName   string `json:"shipper_name"`
	ReceiverName  string `json:"receiver_name"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Status        string `json:"status"`
}

// WaybillDetails holds shipper and receiver data as entered at pickup.
type WaybillDetails struct {
	WaybillNumber    string `json:"waybill_number"`
	WaybillDate      string `json:"waybill_date"`
	WaybillTime      string `json:"waybill_time"`
	Weight           string `json:"weight"`
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	ShipperName      string `json:"shippper_name"`
	ShipperAddress1  string `json:"shipper_address1"`
	ShipperCity      string `json:"shipper_city"`
	ReceiverName     string `json:"receiver_name"`
	ReceiverAddress1 string `json:"receiver_address1"`
	ReceiverCity     string `json:"receiver_city"`
}

// DeliveryStatus is the proof-of-delivery state.
type DeliveryStatus struct {
	Status      string `json:"status"`
	PodReceiver string `json:"pod_receiver"`
	PodDate     string `json:"pod_date"`
	PodTime     string `json:"pod_time"`
}

// ManifestEntry is one tracking checkpoint.
type ManifestEntry struct {
	ManifestCode        string `json:"manifest_code"`
	ManifestDescription string `json:"manifest_description"`
	ManifestDate        string `json:"manifest_date"`
	ManifestTime        string `json:"manifest_time"`
	CityName            string `json:"city_name"`
}
