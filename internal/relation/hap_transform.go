package relation

import (
	"fmt"

	"github.com/haesol/sajukit/internal/ganji"
	"github.com/haesol/sajukit/internal/model"
)

// EvaluateHapTransformations decides, for every detected stem combination,
// whether it actually transforms into its result element. A combination
// transforms when the month branch's principal hidden stem carries the
// result element (full transformation) or generates it (partial).
func EvaluateHapTransformations(ps model.PillarSet, table *ganji.HiddenStemTable) []model.HapTransformation {
	var out []model.HapTransformation
	monthElement := table.Principal(ps.Month.Branch).Element()

	for _, rel := range DetectStemRelations(ps) {
		if rel.Type != model.StemHap || rel.ResultElement == nil {
			continue
		}
		result := *rel.ResultElement
		ht := model.HapTransformation{Relation: rel, Element: result}
		switch {
		case monthElement == result:
			ht.Transformed = true
			ht.Degree = 1.0
			ht.Reason = fmt.Sprintf("month principal element %s carries the combination", monthElement)
		case monthElement.Generates() == result:
			ht.Transformed = true
			ht.Degree = 0.6
			ht.Reason = fmt.Sprintf("month principal element %s generates %s", monthElement, result)
		default:
			ht.Transformed = false
			ht.Degree = 0
			ht.Reason = fmt.Sprintf("no seasonal support for %s in a %s month", result, monthElement)
		}
		out = append(out, ht)
	}
	return out
}
