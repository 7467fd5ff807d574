package krishi

import "sort"

// CropType identifies one of the fixed set of supported crops.
type CropType string

const (
	CropPotato     CropType = "potato"
	CropTomato     CropType = "tomato"
	CropCorn       CropType = "corn"
	CropWheat      CropType = "wheat"
	CropRice       CropType = "rice"
	CropJute       CropType = "jute"
	CropSugarcane  CropType = "sugarcane"
	CropTea        CropType = "tea"
	CropMustard    CropType = "mustard"
	CropMango      CropType = "mango"
	CropBanana     CropType = "banana"
	CropBrinjal    CropType = "brinjal"
	CropChili      CropType = "chili"
	CropOnion      CropType = "onion"
	CropGarlic     CropType = "garlic"
	CropGinger     CropType = "ginger"
	CropTurmeric   CropType = "turmeric"
	CropLentil     CropType = "lentil"
	CropWatermelon CropType = "watermelon"
	CropPapaya     CropType = "papaya"
	CropPineapple  CropType = "pineapple"
)

// CropProfile is what the catalog knows about one crop: its disease taxonomy
// in presentation order (the "Healthy" sentinel always last) and the pathology
// specialization used to flavor prompts.
type CropProfile struct {
	Diseases       []string
	Specialization string
}

var cropCatalog = map[CropType]CropProfile{
	CropPotato: {
		Diseases:       []string{"Early Blight", "Late Blight", "Black Scurf", "Common Scab", "PLRV (Potato Leafroll Virus)", "PVY (Potato Virus Y)", "Mosaic Virus", "Blackleg", "Healthy"},
		Specialization: "potato pathology",
	},
	CropTomato: {
		Diseases:       []string{"Bacterial Spot", "Early Blight", "Late Blight", "Leaf Mold", "Septoria Leaf Spot", "Spider Mites", "Target Spot", "Yellow Leaf Curl Virus", "Mosaic Virus", "Healthy"},
		Specialization: "tomato diseases",
	},
	CropCorn: {
		Diseases:       []string{"Common Rust", "Gray Leaf Spot", "Northern Leaf Blight", "Southern Leaf Blight", "Maize Dwarf Mosaic Virus", "Sugarcane Mosaic Virus", "Corn Smut", "Healthy"},
		Specialization: "corn pathology",
	},
	CropWheat: {
		Diseases:       []string{"Leaf Rust", "Powdery Mildew", "Septoria", "Stripe Rust", "Stem Rust", "Wheat Streak Mosaic Virus", "Barley Yellow Dwarf Virus", "Fusarium Head Blight", "Healthy"},
		Specialization: "cereal crop diseases",
	},
	CropRice: {
		Diseases:       []string{"Bacterial Leaf Blight", "Brown Spot", "Leaf Smut", "Blast", "Tungro", "Rice Yellow Mottle Virus", "Grassy Stunt Virus", "Sheath Blight", "Healthy"},
		Specialization: "rice pathology",
	},
	CropJute: {
		Diseases:       []string{"Stem Rot", "Anthracnose", "Black Band", "Mosaic Virus", "Yellow Mosaic Virus", "Root Rot", "Collar Rot", "Healthy"},
		Specialization: "fiber crop diseases",
	},
	CropSugarcane: {
		Diseases:       []string{"Red Rot", "Smut", "Wilt", "Grassy Shoot", "Mosaic Virus", "Yellow Leaf Virus", "Rust", "Leaf Scald", "Healthy"},
		Specialization: "sugarcane pathology",
	},
	CropTea: {
		Diseases:       []string{"Blister Blight", "Red Rust", "Grey Blight", "Black Rot", "Brown Blight", "Die Back", "Root Rot", "Healthy"},
		Specialization: "tea plantation diseases",
	},
	CropMustard: {
		Diseases:       []string{"Alternaria Blight", "White Rust", "Downy Mildew", "Powdery Mildew", "Sclerotinia Rot", "Mosaic Virus", "Black Spot", "Healthy"},
		Specialization: "oilseed crop diseases",
	},
	CropMango: {
		Diseases:       []string{"Anthracnose", "Powdery Mildew", "Die Back", "Phoma Blight", "Mango Malformation", "Bacterial Canker", "Sooty Mold", "Healthy"},
		Specialization: "fruit tree pathology",
	},
	CropBanana: {
		Diseases:       []string{"Panama Wilt", "Sigatoka", "Bunchy Top Virus", "Anthracnose", "Banana Streak Virus", "Banana Mosaic Virus", "Moko Disease", "Healthy"},
		Specialization: "banana diseases",
	},
	CropBrinjal: {
		Diseases:       []string{"Phomopsis Blight", "Little Leaf", "Fruit Rot", "Wilt", "Bacterial Wilt", "Mosaic Virus", "Leaf Spot", "Healthy"},
		Specialization: "vegetable pathology",
	},
	CropChili: {
		Diseases:       []string{"Anthracnose", "Leaf Curl Virus", "Powdery Mildew", "Wilt", "Chili Veinal Mottle Virus", "Tobacco Mosaic Virus", "Bacterial Spot", "Healthy"},
		Specialization: "spice crop diseases",
	},
	CropOnion: {
		Diseases:       []string{"Purple Blotch", "Downy Mildew", "Smut", "Neck Rot", "Basal Rot", "Stemphylium Blight", "Pink Root", "Healthy"},
		Specialization: "bulb crop diseases",
	},
	CropGarlic: {
		Diseases:       []string{"Purple Blotch", "Downy Mildew", "White Rot", "Rust", "Fusarium Basal Rot", "Penicillium Decay", "Mosaic Virus", "Healthy"},
		Specialization: "bulb crop diseases",
	},
	CropGinger: {
		Diseases:       []string{"Soft Rot", "Leaf Spot", "Bacterial Wilt", "Yellows", "Rhizome Rot", "Phyllosticta Leaf Spot", "Mosaic Virus", "Healthy"},
		Specialization: "rhizome diseases",
	},
	CropTurmeric: {
		Diseases:       []string{"Leaf Spot", "Leaf Blotch", "Rhizome Rot", "Taphrina Leaf Spot", "Scale Rot", "Dry Rot", "Mosaic Virus", "Healthy"},
		Specialization: "rhizome diseases",
	},
	CropLentil: {
		Diseases:       []string{"Wilt", "Rust", "Blight", "Root Rot", "Ascochyta Blight", "Stemphylium Blight", "Mosaic Virus", "Healthy"},
		Specialization: "pulse crop diseases",
	},
	CropWatermelon: {
		Diseases:       []string{"Anthracnose", "Downy Mildew", "Powdery Mildew", "Fusarium Wilt", "Cucumber Mosaic Virus", "Watermelon Mosaic Virus", "Zucchini Yellow Mosaic Virus", "Gummy Stem Blight", "Healthy"},
		Specialization: "cucurbit diseases",
	},
	CropPapaya: {
		Diseases:       []string{"Leaf Curl", "Ring Spot Virus", "Anthracnose", "Powdery Mildew", "Papaya Mosaic Virus", "Phytophthora Blight", "Damping Off", "Healthy"},
		Specialization: "fruit pathology",
	},
	CropPineapple: {
		Diseases:       []string{"Heart Rot", "Mealybug Wilt", "Fruitlet Core Rot", "Black Rot", "Pink Disease", "Root Rot", "Leaf Spot", "Healthy"},
		Specialization: "tropical fruit diseases",
	},
}

// LookupCrop returns the profile for crop, or UnknownCropError when the
// identifier is outside the catalog. Pure; no I/O.
func LookupCrop(crop CropType) (CropProfile, error) {
	profile, ok := cropCatalog[crop]
	if !ok {
		return CropProfile{}, &UnknownCropError{Crop: crop}
	}
	return profile, nil
}

// Crops returns the supported crop identifiers in sorted order.
func Crops() []CropType {
	out := make([]CropType, 0, len(cropCatalog))
	for crop := range cropCatalog {
		out = append(out, crop)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
