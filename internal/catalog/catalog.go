package catalog

import (
	"strings"

	"github.com/apteva/apteva/pkg/models"
)

// Catalog is an immutable set of assessments, loaded once at startup.
type Catalog []models.Assessment

// ByID returns the assessment with the given id, or nil when unknown.
func (c Catalog) ByID(id string) *models.Assessment {
	for i := range c {
		if c[i].ID == id {
			return &c[i]
		}
	}
	return nil
}

// IDs returns the assessment ids in catalogue order.
func (c Catalog) IDs() []string {
	ids := make([]string, len(c))
	for i, a := range c {
		ids[i] = a.ID
	}
	return ids
}

// Document returns the weighted text used to index an assessment. Name,
// suitable roles and goals are repeated to give them more weight than the
// free-text fields.
func Document(a models.Assessment) string {
	parts := []string{
		strings.Repeat(a.Name+" ", 3),
		strings.Repeat(a.Description+" ", 2),
		a.Category,
		strings.Repeat(strings.Join(a.SuitableFor.Roles, " ")+" ", 2),
		strings.Repeat(strings.Join(a.SuitableFor.Goals, " ")+" ", 2),
		strings.Join(a.KeyFeatures, " "),
		strings.Join(a.Benefits, " "),
	}
	return strings.ToLower(strings.Join(parts, " "))
}
