package treemap

// Test hooks (kept separate so instrumentation doesn't clutter logic).
var (
	// insertWalkHook is invoked for each ancestor the insert rebalance
	// walk visits, with the subtree root left after skew and split and
	// whether either of them rotated.
	insertWalkHook func(n any, changed bool)

	// eraseWalkHook is invoked for each ancestor the erase repair walk
	// visits and reports whether its level dropped.
	eraseWalkHook func(n any, levelChanged bool)
)
