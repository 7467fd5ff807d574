package krishi

import (
	"strings"
	"testing"
)

func TestBuildDiagnosisPrompt(t *testing.T) {
	profile, err := LookupCrop(CropPotato)
	if err != nil {
		t.Fatalf("LookupCrop failed: %v", err)
	}
	prompt := buildDiagnosisPrompt(CropPotato, profile, LanguageEnglish)

	for _, want := range []string{
		"potato pathology",
		"- Early Blight",
		"- Healthy",
		`"Image Quality Issue"`,
		"Set confidence: 85-95",
		"Set confidence: 20-40",
		"Set confidence: 30-60",
		"Set confidence: 70-95",
		"JSON only, no markdown",
		"Provide all responses in English language.",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("diagnosis prompt missing %q", want)
		}
	}
}

func TestBuildDiagnosisPrompt_BengaliInstruction(t *testing.T) {
	profile, _ := LookupCrop(CropTomato)
	prompt := buildDiagnosisPrompt(CropTomato, profile, LanguageBengali)
	if !strings.Contains(prompt, "Provide all responses in Bengali") {
		t.Fatalf("expected Bengali language instruction")
	}
}

func TestBuildFertilizerPrompt(t *testing.T) {
	profile, _ := LookupCrop(CropRice)
	prompt := buildFertilizerPrompt(CropRice, profile, 2, UnitBigha, ToAcres(2, UnitBigha), LanguageEnglish)

	for _, want := range []string{
		"rice pathology",
		"2 bigha (approximately 0.66 acres)",
		"Provide TOTAL amounts for the ENTIRE 2 bigha area",
		`"unit": "bigha"`,
		"perUnitList",
		"organicOptions",
		"Day 15-20",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("fertilizer prompt missing %q", want)
		}
	}
}

func TestBuildPesticidePrompt(t *testing.T) {
	prompt := buildPesticidePrompt(CropChili, 3, UnitAcre, LanguageEnglish)

	for _, want := range []string{
		"growing chili on 3 acre",
		"ONE standard 16-Liter Knapsack Sprayer",
		"NO safety precautions",
		"dosePerTank",
		"Return valid JSON only.",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("pesticide prompt missing %q", want)
		}
	}
}

func TestBuildAdvisoryPrompt(t *testing.T) {
	prompt := buildAdvisoryPrompt("When should I plant rice?", LanguageBengali)
	if !strings.Contains(prompt, "User Question: When should I plant rice?") {
		t.Fatalf("advisory prompt missing user question")
	}
	if !strings.Contains(prompt, "You MUST reply in Bengali") {
		t.Fatalf("advisory prompt missing Bengali interface rule")
	}
	if !strings.Contains(prompt, "EXCLUSIVELY an agricultural assistant") {
		t.Fatalf("advisory prompt missing role restriction")
	}
}
