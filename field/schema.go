package field

// canonicalFields binds each standard header field name, in its canonical
// space-stripped lower-case form, to its value grammar.
var canonicalFields = map[string]Kind{
	"type":      KindElementType,
	"dimension": KindInt,
	"encoding":  KindString,
	"endian":    KindString,

	"space":          KindString,
	"spacedimension": KindInt,
	"content":        KindString,
	"sampleunits":    KindString,
	"datafile":       KindString,

	"min":    KindDouble,
	"max":    KindDouble,
	"oldmin": KindDouble,
	"oldmax": KindDouble,

	"sizes": KindIntList,

	"spacings":    KindDoubleList,
	"thicknesses": KindDoubleList,
	"axismins":    KindDoubleList,
	"axismaxs":    KindDoubleList,

	"kinds":      KindStringList,
	"labels":     KindStringList,
	"units":      KindStringList,
	"spaceunits": KindStringList,
	"centerings": KindStringList,
	"centers":    KindStringList,

	"spaceorigin": KindDoubleVector,

	"spacedirections":  KindDoubleMatrix,
	"measurementframe": KindDoubleMatrix,
}

// writeOrder is the canonical emission order for standard fields. Fields
// present in a record but absent from this list are appended afterwards
// in insertion order, using the key/value separator.
var writeOrder = []string{
	"type",
	"dimension",
	"spacedimension",
	"space",
	"sizes",
	"spacedirections",
	"kinds",
	"endian",
	"encoding",
	"min",
	"max",
	"oldmin",
	"oldmax",
	"content",
	"sampleunits",
	"spacings",
	"thicknesses",
	"axismins",
	"axismaxs",
	"centerings",
	"labels",
	"units",
	"spaceunits",
	"spaceorigin",
	"measurementframe",
	"datafile",
}

// displayNames maps canonical names back to the spaced spelling emitted
// in headers. Names recorded from an input file take precedence over
// these defaults.
var displayNames = map[string]string{
	"spacedimension":   "space dimension",
	"spacedirections":  "space directions",
	"spaceorigin":      "space origin",
	"spaceunits":       "space units",
	"sampleunits":      "sample units",
	"axismins":         "axis mins",
	"axismaxs":         "axis maxs",
	"measurementframe": "measurement frame",
	"oldmin":           "old min",
	"oldmax":           "old max",
	"datafile":         "data file",
}

// Lookup resolves the grammar for a canonical field name. The caller's
// custom map is consulted after the standard table, so it can add
// grammars for non-standard fields but not shadow standard ones. The
// second result reports whether the name has a registered grammar at all.
func Lookup(name string, custom map[string]Kind) (Kind, bool) {
	if kind, ok := canonicalFields[name]; ok {
		return kind, true
	}

	if kind, ok := custom[name]; ok {
		return kind, true
	}

	return KindString, false
}

// IsCanonical reports whether name is a standard field.
func IsCanonical(name string) bool {
	_, ok := canonicalFields[name]
	return ok
}

// WriteOrder returns the canonical emission order for standard fields.
func WriteOrder() []string {
	return writeOrder
}

// DisplayName returns the default on-disk spelling of a canonical name.
func DisplayName(name string) string {
	if display, ok := displayNames[name]; ok {
		return display
	}

	return name
}
