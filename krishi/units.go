package krishi

// AreaUnit is a land-area unit accepted by the planning operations.
type AreaUnit string

const (
	UnitAcre  AreaUnit = "acre"
	UnitBigha AreaUnit = "bigha"
)

// bighaToAcre is a fixed approximation (1 bigha ≈ 0.33 acre). It is used only
// to annotate prompts with an acre equivalent; results keep the caller's unit.
const bighaToAcre = 0.33

// ToAcres converts a land-area measurement to acres. Acre input passes
// through unchanged.
func ToAcres(area float64, unit AreaUnit) float64 {
	if unit == UnitBigha {
		return area * bighaToAcre
	}
	return area
}
