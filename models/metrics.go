package models

// VolumetricDivisor converts cubic centimetres into kilograms of billable weight.
const VolumetricDivisor = 6000

// Metrics describes a parcel. Weight is in grams, dimensions in centimetres.
// Every field is optional; nil means "not given".
type Metrics struct {
	Weight   *float64
	Length   *float64
	Width    *float64
	Height   *float64
	Diameter *float64
}

// WeightOf returns Metrics carrying only a weight in grams.
func WeightOf(grams float64) Metrics {
	return Metrics{Weight: &grams}
}

// Dimensions returns Metrics carrying only length, width and height.
func Dimensions(length, width, height float64) Metrics {
	return Metrics{Length: &length, Width: &width, Height: &height}
}

// WithWeight returns a copy of m with Weight set to grams.
func (m Metrics) WithWeight(grams float64) Metrics {
	m.Weight = &grams
	return m
}

// WithDiameter returns a copy of m with Diameter set to cm.
func (m Metrics) WithDiameter(cm float64) Metrics {
	m.Diameter = &cm
	return m
}

// HasDimensions reports whether any of length, width, height or diameter is set.
func (m Metrics) HasDimensions() bool {
	return m.Length != nil || m.Width != nil || m.Height != nil || m.Diameter != nil
}

// VolumetricWeight returns (L*W*H)/6000*1000 grams. ok is false unless all
// three of length, width and height are present.
func (m Metrics) VolumetricWeight() (grams float64, ok bool) {
	if m.Length == nil || m.Width == nil || m.Height == nil {
		return 0, false
	}
	return *m.Length * *m.Width * *m.Height / VolumetricDivisor * 1000, true
}

// Resolve returns a copy of m whose Weight is the billable weight:
// the volumetric weight when no weight was given, or the greater of the
// two when both are known.
func (m Metrics) Resolve() Metrics {
	volumetric, ok := m.VolumetricWeight()
	if !ok {
		return m
	}
	if m.Weight == nil || volumetric > *m.Weight {
		m.Weight = &volumetric
	}
	return m
}
