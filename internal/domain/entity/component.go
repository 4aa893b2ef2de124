package entity

// Component is a catalog template for an energy-system component. The catalog
// is read-only at runtime and seeded with the built-in templates at startup.
type Component struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`       // Unique catalog name, e.g. "transformer".
	OemofType string   `json:"oemof_type"` // The oemof class this template maps onto.
	Fields    []string `json:"fields"`     // Parameter names a project supplies for this component.
}
