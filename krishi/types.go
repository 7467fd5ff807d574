package krishi

// Language selects both the language the model is instructed to answer in
// and the digit system applied to quantities in the returned plan.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageBengali Language = "bn"
)

// Provider identifies which completion backend to use.
type Provider string

const (
	// ProviderGroq uses Groq's OpenAI-compatible chat completion API.
	ProviderGroq Provider = "groq"
	// ProviderGoogle uses the Gemini Developer API.
	ProviderGoogle Provider = "google"
)

// taskKind picks the model class for one request: image analysis needs a
// vision-capable model, planning runs on the faster text-only model.
type taskKind string

const (
	taskVision taskKind = "vision"
	taskText   taskKind = "text"
)

// DiagnosisResult is the normalized outcome of a disease analysis.
// Confidence is always in [1, 100] and Treatment always has at least one
// entry; the normalizer owns both guarantees.
type DiagnosisResult struct {
	DiseaseName string   `json:"diseaseName"`
	Confidence  int      `json:"confidence"`
	Description string   `json:"description"`
	Symptoms    string   `json:"symptoms"`
	Treatment   []string `json:"treatment"`
}

// FertilizerPlan is a staged fertilizer schedule for one field. Area carries
// the caller's number rendered in the digit system of the requested language;
// Unit echoes the unit of the request without conversion.
type FertilizerPlan struct {
	CropName        string   `json:"cropName"`
	Area            string   `json:"area"`
	Unit            AreaUnit `json:"unit"`
	Recommendations []string `json:"recommendations"`
	OrganicOptions  []string `json:"organicOptions"`
	PerUnitList     []string `json:"perUnitList"`
}

// Calibration is the mixing dose for one standard 16-liter knapsack sprayer
// tank, the unit farmers actually measure by.
type Calibration struct {
	DosePerTank    string `json:"dosePerTank"`
	TotalPesticide string `json:"totalPesticide"`
}

// PesticidePlan is a pesticide application schedule. Each recommendation is a
// "product - timing - total amount" line for the whole stated area.
type PesticidePlan struct {
	CropName        string      `json:"cropName"`
	Area            string      `json:"area"`
	Unit            AreaUnit    `json:"unit"`
	Recommendations []string    `json:"recommendations"`
	Calibration     Calibration `json:"calibration"`

	// SafetyPrecautions is always empty. Older clients expect the field to
	// exist, so it is kept in the wire shape.
	SafetyPrecautions []string `json:"safetyPrecautions"`
}
