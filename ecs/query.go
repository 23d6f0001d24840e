package ecs

// intersect returns entity ids present in every set.
func intersect(sets []storage) []entityID {
	if len(sets) == 0 {
		return nil
	}
	// iterate smallest set
	smallest := sets[0]
	for _, s := range sets[1:] {
		if len(s.ids()) < len(smallest.ids()) {
			smallest = s
		}
	}
	out := make([]entityID, 0, len(smallest.ids()))
	for _, id := range smallest.ids() {
		inAll := true
		for _, s := range sets {
			if !s.has(id) {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, id)
		}
	}
	return out
}
