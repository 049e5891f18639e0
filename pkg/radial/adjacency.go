package radial

import (
	"math"
	"sort"
)

// Adjacency builds the entity graph drawn by routed connectors. The result
// maps an entity id to the sorted ids it is connected to and is always
// bidirectional. Entities without connectors are absent.
func Adjacency(routed []RoutedConnection) map[string][]string {
	conn := make(map[string]map[string]bool)
	link := func(a, b string) {
		if conn[a] == nil {
			conn[a] = make(map[string]bool)
		}
		conn[a][b] = true
	}
	for _, r := range routed {
		if r.FromID == r.ToID {
			continue
		}
		link(r.FromID, r.ToID)
		link(r.ToID, r.FromID)
	}

	result := make(map[string][]string, len(conn))
	for id, neighbors := range conn {
		ids := make([]string, 0, len(neighbors))
		for nid := range neighbors {
			ids = append(ids, nid)
		}
		sort.Strings(ids)
		result[id] = ids
	}
	return result
}

// Overlaps returns the pairs of placed entities whose markers of the given
// radius intersect, ordered by input position. Markers are bucketed into a
// grid of cells one marker diameter wide so only neighboring cells are
// compared.
func Overlaps(placed []PlacedEntity, markerRadius float64) [][2]string {
	if markerRadius <= 0 || len(placed) < 2 {
		return nil
	}
	minDist := 2 * markerRadius
	cellSize := minDist

	cellKey := func(x, y float64) [2]int {
		return [2]int{int(math.Floor(x / cellSize)), int(math.Floor(y / cellSize))}
	}

	buckets := make(map[[2]int][]int)
	for i, p := range placed {
		key := cellKey(p.X, p.Y)
		buckets[key] = append(buckets[key], i)
	}

	type pair struct{ i, j int }
	var found []pair
	for i, p := range placed {
		key := cellKey(p.X, p.Y)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for _, j := range buckets[[2]int{key[0] + dx, key[1] + dy}] {
					if j <= i {
						continue
					}
					if math.Hypot(p.X-placed[j].X, p.Y-placed[j].Y) < minDist {
						found = append(found, pair{i, j})
					}
				}
			}
		}
	}

	sort.Slice(found, func(a, b int) bool {
		if found[a].i != found[b].i {
			return found[a].i < found[b].i
		}
		return found[a].j < found[b].j
	})
	out := make([][2]string, len(found))
	for k, f := range found {
		out[k] = [2]string{placed[f.i].Entity.ID, placed[f.j].Entity.ID}
	}
	return out
}
