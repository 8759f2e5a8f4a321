package linear

const (
	DefaultCapacity  = 16
	MetricsSubsystem = "table"
)

// normalCapacity returns the capacity a table is actually created with
func normalCapacity(capacity int) int {
	if capacity < 1 {
		return DefaultCapacity
	}
	return capacity
}

// needsGrow reports whether a table holding count entries in capacity
// slots is at least half full and must double before the next insert
func needsGrow(count, capacity int) bool {
	return count >= capacity/2
}
