package pairing

import "errors"

// Unbound marks a Pair not yet assigned to a resource.
const Unbound = -1

// Sentinel errors returned by the pairing layer.
var (
	// ErrBadClock indicates a start time that is not in "HH:mm" form.
	ErrBadClock = errors.New("pairing: malformed clock value")

	// ErrTooFewTasks indicates fewer than two tasks, so no pair can form.
	ErrTooFewTasks = errors.New("pairing: at least two tasks are required")

	// ErrNoResources indicates a non-positive resource count for binding.
	ErrNoResources = errors.New("pairing: resource count must be positive")

	// ErrEmptyScenario indicates a scenario file without any tasks.
	ErrEmptyScenario = errors.New("pairing: scenario holds no tasks")
)

// Task is one schedulable unit with a daily time window.
//
// Start is a wall-clock "HH:mm" string; Duration is in minutes. Both are
// normalized modulo 24h/60m when parsed, so "24:30" reads as "00:30".
type Task struct {
	ID       int    `yaml:"id"`
	Start    string `yaml:"start"`
	Duration int    `yaml:"duration"`
}

// Pair is a formed pairing of one task from each group, plus the lease cost
// (in 15-minute units) the pairing was chosen at. Resource stays Unbound
// until BindRoundRobin runs.
type Pair struct {
	First    Task
	Second   Task
	Cost     float64
	Resource int
}

// Scenario is a YAML-loadable pairing experiment: a task list and the
// number of shared resources to bind pairs onto.
type Scenario struct {
	Name      string `yaml:"name"`
	Resources int    `yaml:"resources"`
	Tasks     []Task `yaml:"tasks"`
}
