package pairing

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pairkit/hungarian"
)

// PairTasks splits tasks into two equal groups (first half vs second half,
// in input order), builds the lease cost matrix and solves it for a
// minimum-cost one-to-one pairing.
//
// An odd task count cannot pair fully: the last task is dropped with a
// warning, mirroring how the original broker handled it. Fewer than two
// tasks is ErrTooFewTasks.
//
// The returned pairs are ordered by the first group's index; every task of
// both (possibly trimmed) groups appears in exactly one pair. Resource is
// left Unbound — see BindRoundRobin.
func PairTasks(tasks []Task) ([]Pair, error) {
	if len(tasks) < 2 {
		return nil, ErrTooFewTasks
	}
	if len(tasks)%2 != 0 {
		logrus.Warnf("pairing: odd task count %d, dropping task %d", len(tasks), tasks[len(tasks)-1].ID)
		tasks = tasks[:len(tasks)-1]
	}

	mid := len(tasks) / 2
	group1, group2 := tasks[:mid], tasks[mid:]

	cost, err := CostMatrix(group1, group2)
	if err != nil {
		return nil, err
	}

	assignment, err := hungarian.Solve(cost, nil)
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair, 0, len(group1))
	for i, j := range assignment {
		if j == hungarian.Unassigned {
			// Equal group sizes make a full matching reachable; an unpaired
			// row would mean the cost model produced something pathological.
			logrus.Warnf("pairing: task %d stayed unpaired", group1[i].ID)
			continue
		}
		pairs = append(pairs, Pair{
			First:    group1[i],
			Second:   group2[j],
			Cost:     cost[i][j],
			Resource: Unbound,
		})
		logrus.Debugf("pairing: task %d ↔ task %d at %.0f units", group1[i].ID, group2[j].ID, cost[i][j])
	}

	return pairs, nil
}

// BindRoundRobin assigns each formed pair a resource index in round-robin
// order, the way the original broker spread cloudlet pairs over VMs.
// Mutates the slice in place.
func BindRoundRobin(pairs []Pair, resources int) error {
	if resources <= 0 {
		return ErrNoResources
	}
	for k := range pairs {
		pairs[k].Resource = k % resources
	}

	return nil
}

// TotalCost sums the lease cost over formed pairs.
func TotalCost(pairs []Pair) float64 {
	total := 0.0
	for _, p := range pairs {
		total += p.Cost
	}

	return total
}
