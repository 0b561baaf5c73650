package paf

// TabWidth is the number of columns a tab occupies in rendered diagnostics.
const TabWidth = 4

// ParseOpt bundles parsing options.
type ParseOpt struct {
	// Line is the 1-based line number of the input within a larger
	// document. When set, diagnostics are the numbered kinds.
	Line int
}

func lastOpt(opts []ParseOpt) ParseOpt {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return opt
}
