package scaffold

// Status is the outcome of one target path.
type Status string

const (
	StatusCreated Status = "created"
	StatusUpdated Status = "updated"
	StatusExists  Status = "exists"
	StatusFailed  Status = "failed"
)

// Outcome records what happened to one package directory or file.
type Outcome struct {
	Path    string
	Package string
	Role    string
	Dir     bool
	Status  Status
	Err     error
}

// Result collects the outcomes of one generation, in order.
type Result struct {
	Kind     Kind
	Outcomes []Outcome
}

func (r *Result) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Files returns the file outcomes with the given status.
func (r *Result) Files(s Status) []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if !o.Dir && o.Status == s {
			out = append(out, o)
		}
	}
	return out
}

// Written reports how many files were created or updated.
func (r *Result) Written() int {
	return len(r.Files(StatusCreated)) + len(r.Files(StatusUpdated))
}

// Failed reports whether any step failed.
func (r *Result) Failed() bool {
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			return true
		}
	}
	return false
}

// Err returns the first recorded failure, or nil.
func (r *Result) Err() error {
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			return o.Err
		}
	}
	return nil
}
