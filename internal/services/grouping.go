package services

import "eventboard/internal/domain"

// groupValue returns the grouped field's value for e. The switch is
// exhaustive over the groupable keys; unknown keys report false.
func groupValue(e domain.Event, key domain.GroupKey) (string, bool) {
	switch key {
	case domain.GroupByStatus:
		return string(e.Status), true
	case domain.GroupByPlace:
		return e.Place, true
	default:
		return "", false
	}
}

// GroupEvents partitions events by key. Each group carries its member
// events and the sum of their participant counts. Groups are emitted in
// insertion order of each key's first occurrence, not sorted. An empty or
// unknown key yields no groups.
func GroupEvents(events []domain.Event, key domain.GroupKey) []domain.EventGroup {
	if key == domain.GroupByNone {
		return []domain.EventGroup{}
	}
	index := make(map[string]int)
	groups := make([]domain.EventGroup, 0)
	for _, e := range events {
		val, ok := groupValue(e, key)
		if !ok {
			return []domain.EventGroup{}
		}
		i, seen := index[val]
		if !seen {
			i = len(groups)
			index[val] = i
			groups = append(groups, domain.EventGroup{Key: val})
		}
		groups[i].Events = append(groups[i].Events, e)
		groups[i].Sum += len(e.Participants)
	}
	return groups
}
