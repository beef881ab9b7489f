package reservation

// Capacity tiers are fixed bands: parties of 1-2 get tables up to
// capacity 2, parties of 3-4 up to capacity 4, larger parties any
// table big enough. Smallest sufficient table wins, preserving large
// tables for large parties.

// TierBounds returns the capacity range for a party size.
// maxCapacity 0 means no upper bound.
func TierBounds(people int) (minCapacity, maxCapacity int) {
	switch {
	case people <= 2:
		return people, 2
	case people <= 4:
		return people, 4
	default:
		return people, 0
	}
}
