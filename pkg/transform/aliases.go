package transform

import "strings"

// Canonical registry names for the two built-in transformation families.
const (
	JordanWigner = "jordan-wigner"
	BravyiKitaev = "bravyi-kitaev"
)

var jordanWignerAliases = map[string]struct{}{
	"JW":            {},
	"J-W":           {},
	"JORDAN-WIGNER": {},
}

var bravyiKitaevAliases = map[string]struct{}{
	"BK":            {},
	"B-K":           {},
	"BRAVYI-KITAEV": {},
}

// IsJordanWigner reports whether name is one of the accepted Jordan-Wigner
// spellings, case-insensitively.
func IsJordanWigner(name string) bool {
	_, ok := jordanWignerAliases[strings.ToUpper(name)]
	return ok
}

// IsBravyiKitaev reports whether name is one of the accepted Bravyi-Kitaev
// spellings, case-insensitively.
func IsBravyiKitaev(name string) bool {
	_, ok := bravyiKitaevAliases[strings.ToUpper(name)]
	return ok
}

// Canonical folds the built-in alias families onto their registry names.
// Every other name is returned verbatim: custom transforms are matched
// exactly, only the two built-in families get fuzzy spelling.
func Canonical(name string) string {
	switch {
	case IsJordanWigner(name):
		return JordanWigner
	case IsBravyiKitaev(name):
		return BravyiKitaev
	default:
		return name
	}
}

// Builtin reports whether name belongs to either built-in alias family.
func Builtin(name string) bool {
	return IsJordanWigner(name) || IsBravyiKitaev(name)
}
