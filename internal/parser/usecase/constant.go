package usecase

// Warning messages surfaced on the parse result. Ambiguity and invalid
// values never abort a parse.
const (
	warnMultipleDates      = "Multiple dates found, using first."
	warnMultipleProjects   = "Multiple projects found, using first."
	warnMultiplePriorities = "Multiple priorities found, using first."

	warnProjectNotFoundFmt = "Project not found: %s."
	warnInvalidPriorityFmt = "Invalid priority: p%d (must be 0-4)."
)

// Priority bounds accepted by the task model.
const (
	priorityMin = 0
	priorityMax = 4
)

const dueDateLayout = "2006-01-02"
