package srb

import (
	"github.com/sarchlab/fuelsim/host"
	"github.com/sarchlab/fuelsim/resource"
)

// A link is one pool of a segment chain.
type link struct {
	part host.PartID
	pool *resource.Pool
}

// chain collects the pools of type t that share propellant with the managing
// part. The managing part always belongs to the chain, with or without a pool.
// Parts above it join while they have no consumer of their own and already
// hold a pool of t.
func (r *Redistributor) chain(t resource.TypeID) []link {
	own, _ := r.host.Pool(r.part, t)
	links := []link{{part: r.part, pool: own}}

	visited := map[host.PartID]bool{r.part: true}
	current := r.part

	for r.cfg.MaxSegments == 0 || len(links) <= r.cfg.MaxSegments {
		above, ok := r.host.PartAbove(current)
		if !ok || visited[above] {
			break
		}

		if r.host.HasCompetingConsumer(above) {
			break
		}

		pool, ok := r.host.Pool(above, t)
		if !ok {
			break
		}

		visited[above] = true
		links = append(links, link{part: above, pool: pool})
		current = above
	}

	return links
}
