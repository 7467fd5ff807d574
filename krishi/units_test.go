package krishi

import "testing"

func TestToAcres_AcreIdentity(t *testing.T) {
	for _, area := range []float64{0, 1, 2.5, 100} {
		if got := ToAcres(area, UnitAcre); got != area {
			t.Fatalf("ToAcres(%v, acre) = %v, want identity", area, got)
		}
	}
}

func TestToAcres_Bigha(t *testing.T) {
	if got, want := ToAcres(2, UnitBigha), 2*0.33; got != want {
		t.Fatalf("ToAcres(2, bigha) = %v, want %v", got, want)
	}
}
