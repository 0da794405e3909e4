package dice

// Colors maps the 3-letter color keys used in die codes to color names.
var Colors = map[string]string{
	"BLA": "black", "BLU": "blue", "BRA": "brass", "BRO": "brown",
	"GOL": "gold", "GRA": "gray", "GRE": "green", "OFF": "off white",
	"ORA": "orange", "OTH": "other", "PIN": "pink", "PUR": "purple",
	"RED": "red", "SIL": "silver", "TAN": "tan", "TRA": "transparent",
	"WHI": "white", "YEL": "yellow",
}

// Sizes maps the 1-letter size keys used in die codes to size names.
var Sizes = map[string]string{
	"S": "small", "M": "medium", "L": "large", "H": "huge", "G": "gigantic",
}

// FlagNames holds the flag attributes in bit order: FlagNames[i] is bit 2^i
// of the two-digit flags field.
var FlagNames = [5]string{"art_pip", "material", "odd_shape", "odd_pip", "odd_face"}

// colorKeys and sizeKeys are reverse maps generated from Colors and Sizes for
// encoding lookups.
var (
	colorKeys map[string]string
	sizeKeys  map[string]string
)

func init() {
	colorKeys = make(map[string]string, len(Colors))
	for key, name := range Colors {
		colorKeys[name] = key
	}
	sizeKeys = make(map[string]string, len(Sizes))
	for key, name := range Sizes {
		sizeKeys[name] = key
	}
}
