package krishi

import (
	"fmt"
	"math"
	"strconv"
)

// The normalizers own the shape guarantees of the typed results: every list
// field is a []string, confidence lands in [1, 100], missing substructure
// degrades to typed defaults. They never fail; a malformed field produces a
// safe default rather than failing the request.

const expertFallback = "Consult an expert."

func normalizeDiagnosis(obj map[string]any) DiagnosisResult {
	return DiagnosisResult{
		DiseaseName: stringOr(obj["diseaseName"], "Unknown Disease"),
		Confidence:  clampConfidence(obj["confidence"]),
		Description: stringOr(obj["description"], "Disease analysis completed"),
		Symptoms:    stringOr(obj["symptoms"], "Unable to determine specific symptoms"),
		Treatment:   stringListOr(obj["treatment"], expertFallback),
	}
}

func normalizeFertilizer(obj map[string]any, crop CropType, area float64, unit AreaUnit, lang Language) FertilizerPlan {
	return FertilizerPlan{
		CropName:        stringOr(obj["cropName"], string(crop)),
		Area:            formatArea(area, lang),
		Unit:            unit,
		Recommendations: LocalizeAmountsAll(stringList(obj["recommendations"]), lang),
		OrganicOptions:  LocalizeAmountsAll(stringList(obj["organicOptions"]), lang),
		PerUnitList:     LocalizeAmountsAll(stringList(obj["perUnitList"]), lang),
	}
}

func normalizePesticide(obj map[string]any, crop CropType, area float64, unit AreaUnit, lang Language) PesticidePlan {
	return PesticidePlan{
		CropName:        stringOr(obj["cropName"], string(crop)),
		Area:            formatArea(area, lang),
		Unit:            unit,
		Recommendations: stringListOr(obj["recommendations"], expertFallback),
		Calibration:     normalizeCalibration(obj["calibration"]),
		// Non-nil so older clients iterating the field keep working.
		SafetyPrecautions: []string{},
	}
}

func normalizeCalibration(v any) Calibration {
	cal := Calibration{DosePerTank: "N/A", TotalPesticide: "N/A"}
	m, ok := v.(map[string]any)
	if !ok {
		return cal
	}
	cal.DosePerTank = stringOr(m["dosePerTank"], "N/A")
	cal.TotalPesticide = stringOr(m["totalPesticide"], "N/A")
	return cal
}

// clampConfidence applies max(1, min(100, round(v ?? 70))). Models
// occasionally quote the number as a string; that still counts.
func clampConfidence(v any) int {
	f := 70.0
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		if parsed, err := strconv.ParseFloat(ToLatinDigits(t), 64); err == nil {
			f = parsed
		}
	}
	n := int(math.Round(f))
	if n < 1 {
		return 1
	}
	if n > 100 {
		return 100
	}
	return n
}

// formatArea renders a numeric area in the digit system of the requested
// language. Computation elsewhere always uses the Latin-digit value.
func formatArea(area float64, lang Language) string {
	s := strconv.FormatFloat(area, 'f', -1, 64)
	if lang == LanguageBengali {
		return ToBengaliDigits(s)
	}
	return s
}

// stringList coerces v into a list of strings: an array keeps its non-nil
// elements, a bare scalar is wrapped, anything else yields an empty list.
func stringList(v any) []string {
	switch t := v.(type) {
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if e == nil {
				continue
			}
			out = append(out, asString(e))
		}
		return out
	case nil:
		return []string{}
	default:
		return []string{asString(t)}
	}
}

// stringListOr is stringList with a one-element fallback for empty input.
func stringListOr(v any, fallback string) []string {
	out := stringList(v)
	if len(out) == 0 {
		return []string{fallback}
	}
	return out
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
