package serena

// SymbolKind is the LSP symbol kind name serena reports.
type SymbolKind string

const (
	KindFile          SymbolKind = "File"
	KindModule        SymbolKind = "Module"
	KindNamespace     SymbolKind = "Namespace"
	KindPackage       SymbolKind = "Package"
	KindClass         SymbolKind = "Class"
	KindMethod        SymbolKind = "Method"
	KindProperty      SymbolKind = "Property"
	KindField         SymbolKind = "Field"
	KindConstructor   SymbolKind = "Constructor"
	KindEnum          SymbolKind = "Enum"
	KindInterface     SymbolKind = "Interface"
	KindFunction      SymbolKind = "Function"
	KindVariable      SymbolKind = "Variable"
	KindConstant      SymbolKind = "Constant"
	KindString        SymbolKind = "String"
	KindNumber        SymbolKind = "Number"
	KindBoolean       SymbolKind = "Boolean"
	KindArray         SymbolKind = "Array"
	KindObject        SymbolKind = "Object"
	KindKey           SymbolKind = "Key"
	KindNull          SymbolKind = "Null"
	KindEnumMember    SymbolKind = "EnumMember"
	KindStruct        SymbolKind = "Struct"
	KindEvent         SymbolKind = "Event"
	KindOperator      SymbolKind = "Operator"
	KindTypeParameter SymbolKind = "TypeParameter"
)

// SymbolLocation is the line span of a symbol body.
type SymbolLocation struct {
	StartLine int `json:"start_line"`
	EndLine   int `json:"end_line"`
}

// Symbol is one entry of a find_symbol or get_symbols_overview answer.
type Symbol struct {
	NamePath     string         `json:"name_path"`
	Kind         SymbolKind     `json:"kind"`
	BodyLocation SymbolLocation `json:"body_location"`
	RelativePath string         `json:"relative_path"`
}

// Ptr returns a pointer to v, for optional input fields.
func Ptr[T any](v T) *T { return &v }
