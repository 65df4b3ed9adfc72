package models

// Treatment catalog. Unknown codes pass through verbatim so free-text
// entries keep working.
var treatmentNames = map[string]string{
	"general":    "ယေဘုယျ ကုထုံး",
	"sports":     "အားကစား ထိခိုက်မှု",
	"orthopedic": "အရိုးအဆစ်",
	"neuro":      "အာရုံကြော",
	"geriatric":  "သက်ကြီးရွယ်အို",
}

func TreatmentName(code string) string {
	if name, ok := treatmentNames[code]; ok {
		return name
	}
	return code
}
