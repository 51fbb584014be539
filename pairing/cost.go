package pairing

// CostMatrix builds the pairing cost matrix between two task groups:
// entry (i, j) is the smaller of the two lease times between group1[i] and
// group2[j], expressed in 15-minute units.
//
// Lease time LT runs from the end of the first task to the start of the
// second; the converse lease CLT runs from the end of the second to the
// start of the first. Taking the minimum makes the cost symmetric in the
// roles the two tasks would play on a shared resource.
//
// Costs are non-negative by construction (wrapped minutes are always in
// [0, 48h)), which is exactly what hungarian.Solve requires.
//
// Complexity: O(n₁·n₂) time after an O(n₁+n₂) clock-parsing pass.
func CostMatrix(group1, group2 []Task) ([][]float64, error) {
	starts1, ends1, err := windows(group1)
	if err != nil {
		return nil, err
	}
	starts2, ends2, err := windows(group2)
	if err != nil {
		return nil, err
	}

	cost := make([][]float64, len(group1))
	for i := range group1 {
		cost[i] = make([]float64, len(group2))
		for j := range group2 {
			lt := MinutesToUnits(LeaseMinutes(ends1[i], starts2[j]))
			clt := MinutesToUnits(LeaseMinutes(ends2[j], starts1[i]))
			if clt < lt {
				lt = clt
			}
			cost[i][j] = float64(lt)
		}
	}

	return cost, nil
}

// windows resolves the start/end minute-of-day for every task in a group.
func windows(tasks []Task) (starts, ends []int, err error) {
	starts = make([]int, len(tasks))
	ends = make([]int, len(tasks))
	for i, t := range tasks {
		starts[i], ends[i], err = window(t)
		if err != nil {
			return nil, nil, err
		}
	}

	return starts, ends, nil
}
