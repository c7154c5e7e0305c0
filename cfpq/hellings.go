package cfpq

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/graph"
)

// Hellings implements the worklist algorithm: seed R and a
// FIFO worklist Q from the weak-CNF grammar's terminal/epsilon productions,
// then repeatedly pop a triple and extend R by combining it with every
// existing triple through a binary production, on both sides.
//
// The worklist is a FIFO queue (gods/queues/linkedlistqueue) rather than
// an unordered set, so that test runs are reproducible without affecting
// the result set itself.
func Hellings(cfg *grammar.CFG, g *graph.Graph) map[Triple]bool {
	w := grammar.ToWeakCNF(cfg)
	result := seed(g, w)

	q := linkedlistqueue.New()
	for t := range result {
		q.Enqueue(t)
	}

	for !q.Empty() {
		v, _ := q.Dequeue()
		cur := v.(Triple)

		var fresh []Triple
		for other := range result {
			if other.V == cur.U {
				for head, pairs := range w.BinProds {
					if pairs[[2]grammar.Nonterminal{other.NT, cur.NT}] {
						t := Triple{U: other.U, NT: head, V: cur.V}
						if !result[t] {
							fresh = append(fresh, t)
						}
					}
				}
			}
			if other.U == cur.V {
				for head, pairs := range w.BinProds {
					if pairs[[2]grammar.Nonterminal{cur.NT, other.NT}] {
						t := Triple{U: cur.U, NT: head, V: other.V}
						if !result[t] {
							fresh = append(fresh, t)
						}
					}
				}
			}
		}
		for _, t := range fresh {
			if result[t] {
				continue
			}
			result[t] = true
			q.Enqueue(t)
		}
	}
	return result
}
