package icon

// Report tallies one generation run.
type Report struct {
	Succeeded int
	Total     int
	Failed    []string // filenames, in attempt order
}

// AllOK reports whether every icon in the run was written.
func (r Report) AllOK() bool {
	return r.Succeeded == r.Total
}
