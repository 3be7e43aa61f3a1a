package comention

import (
	"errors"
	"fmt"

	"github.com/dominikbraun/graph"
)

// Stats summarizes the co-mention network restricted to the strongest
// edges.
type Stats struct {
	Nodes      int            `json:"nodes"`
	Edges      int            `json:"edges"`
	Components int            `json:"components"`
	Density    float64        `json:"density"`
	Degree     map[string]int `json:"degree"`
	Strength   map[string]int `json:"strength"`
}

// NetworkStats builds a weighted undirected graph over the topEdges
// strongest pairs and derives its size, density, per-country degree and
// weighted strength, and connected component count.
func NetworkStats(counts PairCount, topEdges int) (*Stats, error) {
	top := counts.TopN(topEdges)

	g := graph.New(graph.StringHash, graph.Weighted())
	for _, pw := range top {
		if err := addVertex(g, pw.Pair.A); err != nil {
			return nil, err
		}
		if err := addVertex(g, pw.Pair.B); err != nil {
			return nil, err
		}
		if err := g.AddEdge(pw.Pair.A, pw.Pair.B, graph.EdgeWeight(pw.Count)); err != nil {
			return nil, fmt.Errorf("adding edge %s: %w", pw.Pair, err)
		}
	}

	adj, err := g.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("building adjacency map: %w", err)
	}

	stats := &Stats{
		Nodes:    len(adj),
		Edges:    len(top),
		Degree:   make(map[string]int, len(adj)),
		Strength: make(map[string]int, len(adj)),
	}

	for node, neighbors := range adj {
		stats.Degree[node] = len(neighbors)
		for _, e := range neighbors {
			stats.Strength[node] += e.Properties.Weight
		}
	}

	stats.Components = countComponents(adj)
	if stats.Nodes > 1 {
		stats.Density = 2 * float64(stats.Edges) / float64(stats.Nodes*(stats.Nodes-1))
	}
	return stats, nil
}

func addVertex(g graph.Graph[string, string], code string) error {
	err := g.AddVertex(code)
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return fmt.Errorf("adding vertex %s: %w", code, err)
	}
	return nil
}

// countComponents counts connected components with a breadth-first
// sweep over the undirected adjacency map.
func countComponents(adj map[string]map[string]graph.Edge[string]) int {
	visited := make(map[string]bool, len(adj))
	components := 0

	for start := range adj {
		if visited[start] {
			continue
		}
		components++

		queue := []string{start}
		visited[start] = true
		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			for neighbor := range adj[node] {
				if !visited[neighbor] {
					visited[neighbor] = true
					queue = append(queue, neighbor)
				}
			}
		}
	}
	return components
}
