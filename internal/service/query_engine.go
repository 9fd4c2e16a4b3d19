package service

import (
	"sort"
	"strings"

	"github.com/spec-kit/constituent-office/internal/domain"
)

// QueryCriteria are the three independent, AND-combined filters applied on
// top of the actor's visible set. Zero values leave a dimension unfiltered.
type QueryCriteria struct {
	Search   string
	Status   domain.Status
	Category domain.Category
}

// VisibleSet computes the subset of the collection the actor may see,
// before any further filtering: citizens see their own complaints, staff
// see their category scope, full-scope staff and the supervisor see
// everything. Pure: identical inputs yield identical output.
func VisibleSet(actor *domain.Actor, collection []domain.Complaint) []domain.Complaint {
	visible := make([]domain.Complaint, 0, len(collection))
	for i := range collection {
		if actor.CanSee(&collection[i]) {
			visible = append(visible, collection[i])
		}
	}
	return visible
}

// FilterComplaints applies the criteria to the actor's visible set and
// orders the result newest first. The sort is stable, so equal timestamps
// keep insertion order and repeated calls are deterministic.
func FilterComplaints(actor *domain.Actor, collection []domain.Complaint, criteria QueryCriteria) []domain.Complaint {
	visible := VisibleSet(actor, collection)

	filtered := make([]domain.Complaint, 0, len(visible))
	for _, c := range visible {
		if !matchesSearch(&c, criteria.Search) {
			continue
		}
		if criteria.Status != "" && c.Status != criteria.Status {
			continue
		}
		if criteria.Category != "" && c.Category != criteria.Category {
			continue
		}
		filtered = append(filtered, c)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	return filtered
}

// matchesSearch is a case-sensitive substring match against the title or
// the submitter's display name.
func matchesSearch(c *domain.Complaint, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(c.Title, term) || strings.Contains(c.SubmitterName, term)
}
