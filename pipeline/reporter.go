package pipeline

// Reporter receives per-file progress from Run.
type Reporter interface {
	Started(path string, index int)
	Skipped(name string)
	Finished(res *Result)
	Failed(path string, err error)
}

type nopReporter struct{}

func (nopReporter) Started(string, int)  {}
func (nopReporter) Skipped(string)       {}
func (nopReporter) Finished(*Result)     {}
func (nopReporter) Failed(string, error) {}
