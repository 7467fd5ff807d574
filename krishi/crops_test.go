package krishi

import (
	"errors"
	"testing"
)

func TestLookupCrop_Known(t *testing.T) {
	profile, err := LookupCrop(CropPotato)
	if err != nil {
		t.Fatalf("LookupCrop(potato) failed: %v", err)
	}
	if profile.Specialization != "potato pathology" {
		t.Fatalf("specialization = %q", profile.Specialization)
	}
	if len(profile.Diseases) == 0 {
		t.Fatalf("expected non-empty disease list")
	}
	if profile.Diseases[0] != "Early Blight" {
		t.Fatalf("expected insertion order preserved, first = %q", profile.Diseases[0])
	}
}

func TestLookupCrop_Unknown(t *testing.T) {
	_, err := LookupCrop("dragonfruit")
	if err == nil {
		t.Fatalf("expected error for crop outside the catalog")
	}
	var ucErr *UnknownCropError
	if !errors.As(err, &ucErr) {
		t.Fatalf("expected UnknownCropError, got %T: %v", err, err)
	}
	if ucErr.Crop != "dragonfruit" {
		t.Fatalf("error crop = %q", ucErr.Crop)
	}
}

func TestCropCatalog_Shape(t *testing.T) {
	if len(cropCatalog) != 21 {
		t.Fatalf("catalog has %d crops, want 21", len(cropCatalog))
	}
	for crop, profile := range cropCatalog {
		if profile.Specialization == "" {
			t.Fatalf("%s: empty specialization", crop)
		}
		if n := len(profile.Diseases); n == 0 || profile.Diseases[n-1] != "Healthy" {
			t.Fatalf("%s: disease list must end with the Healthy sentinel", crop)
		}
	}
}

func TestCrops_SortedAndComplete(t *testing.T) {
	crops := Crops()
	if len(crops) != len(cropCatalog) {
		t.Fatalf("Crops() returned %d entries, want %d", len(crops), len(cropCatalog))
	}
	for i := 1; i < len(crops); i++ {
		if crops[i-1] >= crops[i] {
			t.Fatalf("Crops() not sorted at %d: %q >= %q", i, crops[i-1], crops[i])
		}
	}
}
