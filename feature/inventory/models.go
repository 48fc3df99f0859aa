package inventory

// MutationRequest is the body of the add and remove operations. A nil
// Quantity means the default of one; an explicit zero or negative value
// is rejected rather than coerced.
type MutationRequest struct {
	Item     string `json:"item"`
	Quantity *int   `json:"quantity"`
}

// Qty resolves the requested quantity, applying the omitted-field default.
func (r MutationRequest) Qty() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}
