package graph

import "strconv"

// TwoCycles builds the canonical "two cycles sharing a hub vertex" graph,
// the standard worked example for RPQ/CFPQ scenarios.
//
// Vertex "0" is the shared hub. Vertices "1".."firstLen" form a cycle
// through the hub with edges labelled firstLabel (firstLen+1 edges:
// 0->1->2->...->firstLen->0). Vertices "firstLen+1".."firstLen+secondLen"
// likewise form a second cycle labelled secondLabel.
func TwoCycles(firstLen, secondLen int, firstLabel, secondLabel Label) *Graph {
	g := New()
	g.AddVertex(Vertex("0"))

	prev := 0
	for i := 1; i <= firstLen; i++ {
		g.AddEdge(vid(prev), firstLabel, vid(i))
		prev = i
	}
	g.AddEdge(vid(prev), firstLabel, vid(0))

	prev = 0
	for i := 1; i <= secondLen; i++ {
		node := firstLen + i
		g.AddEdge(vid(prev), secondLabel, vid(node))
		prev = node
	}
	g.AddEdge(vid(prev), secondLabel, vid(0))

	return g
}

func vid(i int) Vertex {
	return Vertex(strconv.Itoa(i))
}
