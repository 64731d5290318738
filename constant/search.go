package constant

const (
	SearchDefaultPage      = 1
	SearchDefaultSortBy    = "RELEVANCE"
	SearchDefaultCondition = "ALL"

	// upstream only ever receives page 1 unless filter forwarding is enabled
	SearchUpstreamPage = "1"
)
