package jsondiff

// Symbol is a marker used as a key (or value) inside a diff fragment.
//
// Symbols never compare equal to strings, which keeps the markers apart from
// the keys of the documents being diffed. The set of symbols is closed.
type Symbol struct {
	label string
}

var (
	Add     = Symbol{"add"}
	Discard = Symbol{"discard"}
	Insert  = Symbol{"insert"}
	Delete  = Symbol{"delete"}
	Update  = Symbol{"update"}
	Replace = Symbol{"replace"}
	Left    = Symbol{"left"}
	Right   = Symbol{"right"}
	Missing = Symbol{"missing"}
)

var allSymbols = []Symbol{Add, Discard, Insert, Delete, Update, Replace, Left, Right, Missing}

// Label returns the name of the symbol.
func (s Symbol) Label() string {
	return s.label
}

// String returns the symbol spelled with the default escape prefix.
func (s Symbol) String() string {
	return DefaultEscape + s.label
}
