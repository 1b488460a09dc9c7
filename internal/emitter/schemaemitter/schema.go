package schemaemitter

// Schema is the subset of JSON Schema the generator produces. Only the
// keywords the lowering emits are modeled; everything else is omitted.
type Schema struct {
	Ref         string             `json:"$ref,omitempty"`
	Title       string             `json:"title,omitempty"`
	Description string             `json:"description,omitempty"`
	Type        string             `json:"type,omitempty"`
	Format      string             `json:"format,omitempty"`
	Enum        []any              `json:"enum,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	AnyOf       []*Schema          `json:"anyOf,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// Document is the combined per-batch output: every declaration keyed by
// name under a single "schemas" object.
type Document struct {
	Schemas map[string]*Schema `json:"schemas"`
}
