package spritestore

import (
	"context"

	"github.com/louisbranch/crewportrait/internal/portrait/catalog"
)

// Missing is a catalogued sprite absent from the store.
type Missing struct {
	Gender    catalog.Gender
	Selection catalog.Selection
	Key       string
}

// Report summarizes an audit.
type Report struct {
	// Checked counts distinct sprite keys looked up.
	Checked int
	Missing []Missing
}

// OK reports whether every catalogued sprite was found.
func (r Report) OK() bool {
	return len(r.Missing) == 0
}

// Audit resolves every valid selection for both genders and checks that
// its sprite exists. Keys shared between genders are checked once.
func Audit(ctx context.Context, c *catalog.Catalog, store Store) (Report, error) {
	var report Report
	seen := make(map[string]bool)
	for _, gender := range []catalog.Gender{catalog.GenderMale, catalog.GenderFemale} {
		for _, sel := range c.Selections(gender) {
			asset, ok := c.Resolve(sel.Layer, sel.Index, sel.Variant, gender)
			if !ok {
				continue
			}
			key := asset.Key()
			if seen[key] {
				continue
			}
			seen[key] = true

			found, err := store.Exists(ctx, key)
			if err != nil {
				return report, err
			}
			report.Checked++
			if !found {
				report.Missing = append(report.Missing, Missing{Gender: gender, Selection: sel, Key: key})
			}
		}
	}
	return report, nil
}
