package sampling

// Test-only exports for white-box assertions on raw tallies.
var (
	GibbsCountsForTest = gibbsCounts
	ConsistentForTest  = consistent
)
