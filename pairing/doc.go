// Package pairing implements the paired-task scheduling (PTS) cost model on
// top of the assignment engine: tasks carry a daily start time and a
// duration, and the cost of pairing two tasks is the smaller of their two
// "lease times" — how long a shared resource must be held from the end of
// one task to the start of the other, wrapped across midnight.
//
// 🚀 How pairing works:
//
//	1. Split the task list into two equal groups (first half vs second half).
//	2. For each cross-group pair compute the lease time LT = end(a)−start(b)
//	   and the converse lease CLT = end(b)−start(a), both wrapped by +24h
//	   when negative and re-adjusted when shorter than the one-hour
//	   transfer window.
//	3. Scale minutes into 15-minute units (1 hour = 4 units) and take
//	   min(LT, CLT) as the pairing cost.
//	4. Solve the resulting matrix with hungarian.Solve and emit one Pair
//	   per matched row.
//	5. Bind formed pairs to shared resources round-robin.
//
// The package is a *caller* of the engine: any other cost derivation can
// feed hungarian.Solve just as well. Progress is reported through logrus;
// the math itself is deterministic and side-effect free.
//
// ⚙️ Usage:
//
//	tasks, _ := pairing.LoadScenario("scenario.yaml")
//	pairs, err := pairing.PairTasks(tasks.Tasks)
//	if err != nil { ... }
//	_ = pairing.BindRoundRobin(pairs, tasks.Resources)
package pairing
