package models

// ============================================================================
// ORDER CONSTANTS
// ============================================================================

// MissingOrder is used for records that carry no order value.
// It is large enough that such records sort after every numbered sibling.
const MissingOrder = 999

// OrderOrDefault returns the stored order, or MissingOrder when absent
func OrderOrDefault(order *int) int {
	if order == nil {
		return MissingOrder
	}
	return *order
}

// IntPtr returns a pointer to v. Handy for building patches and records.
func IntPtr(v int) *int {
	return &v
}

// StringPtr returns a pointer to v
func StringPtr(v string) *string {
	return &v
}

// BoolPtr returns a pointer to v
func BoolPtr(v bool) *bool {
	return &v
}

// ============================================================================
// DEFAULT BOARD
// ============================================================================

// DefaultColumns are seeded, in this order, when the board is empty
var DefaultColumns = []NewColumn{
	{Name: "doing", Collapsed: false, Order: 0},
	{Name: "done today", Collapsed: false, Order: 1},
}
