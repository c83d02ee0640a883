package cdm

// Building is one campus building footprint from the static building table.
// Footprint is an ordered polygon of at least 3 coordinates, not necessarily
// convex. Read-only after loading.
type Building struct {
	ID       string `json:"id" yaml:"id" groups:"basic"`
	Name     string `json:"name" yaml:"name" groups:"basic"`
	FullName string `json:"full_name" yaml:"full_name" groups:"basic"`

	Campus Campus `json:"campus" yaml:"campus" groups:"basic"`

	Footprint []Coordinate `json:"footprint" yaml:"footprint" groups:"detailed"`

	Info  string `json:"info,omitempty" yaml:"info,omitempty" groups:"detailed"`
	Image string `json:"image,omitempty" yaml:"image,omitempty" groups:"detailed"`
}
