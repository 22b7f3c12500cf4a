package okr

// Counts holds the number of plan entities rendered.
type Counts struct {
	Objectives   int
	KeyResults   int
	Initiatives  int
	SupportTasks int
}

// Count returns the entity counts of the plan.
func Count() Counts {
	c := Counts{
		Objectives:   len(objectives),
		Initiatives:  len(initiatives),
		SupportTasks: len(supportTasks),
	}
	for _, o := range objectives {
		c.KeyResults += len(o.KeyResults)
	}
	return c
}
