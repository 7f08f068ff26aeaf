package appbase

// Named priority tiers. Priorities are plain ints — higher values are
// scheduled sooner and any value is accepted — so these constants are a
// convention shared between subsystems, not an enforced enum.
const (
	PriorityHigh   = 100
	PriorityMedium = 50
	PriorityLow    = 10
)
