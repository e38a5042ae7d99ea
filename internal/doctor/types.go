package doctor

// Severity says whether a failed check fails the run.
type Severity string

const (
	// Required checks gate the hook itself.
	Required Severity = "required"
	// Advisory checks report hook results and only warn.
	Advisory Severity = "advisory"
)

// Check is one diagnostic result.
type Check struct {
	Name     string
	OK       bool
	Detail   string // path, version or reason
	Severity Severity
	Fixed    bool // set when --fix repaired the problem
}

// Report is the ordered list of checks from one run.
type Report struct {
	Checks []Check
}

// Failed counts failed required checks.
func (r Report) Failed() int {
	n := 0
	for _, c := range r.Checks {
		if !c.OK && c.Severity == Required {
			n++
		}
	}
	return n
}

// Warnings counts failed advisory checks.
func (r Report) Warnings() int {
	n := 0
	for _, c := range r.Checks {
		if !c.OK && c.Severity == Advisory {
			n++
		}
	}
	return n
}
