package automaton

import (
	"sort"

	"github.com/pkg/errors"
)

//predefined life-like rules, see http://www.mirekw.com/ca/rullex_life.html
var ruleTables = map[string]Rule{
	"2x2":            mustRule([]int{1, 2, 5}, []int{3, 6}),
	"34 Life":        mustRule([]int{3, 4}, []int{3, 4}),
	"Amoeba":         mustRule([]int{1, 3, 5, 8}, []int{3, 5, 7}),
	"Assimilation":   mustRule([]int{4, 5, 6, 7}, []int{3, 4, 5}),
	"Coagulations":   mustRule([]int{2, 3, 5, 6, 7, 8}, []int{3, 7, 8}),
	"Conway's Life":  mustRule([]int{2, 3}, []int{3}),
	"Coral":          mustRule([]int{4, 5, 6, 7, 8}, []int{3}),
	"Day and Night":  mustRule([]int{3, 4, 6, 7, 8}, []int{3, 6, 7, 8}),
	"Diamoeba":       mustRule([]int{5, 6, 7, 8}, []int{3, 5, 6, 7, 8}),
	"Flakes":         mustRule([]int{0, 1, 2, 3, 4, 5, 6, 7, 8}, []int{3}),
	"Gnarl":          mustRule([]int{1}, []int{1}),
	"High Life":      mustRule([]int{2, 3}, []int{3, 6}),
	"Long Life":      mustRule([]int{5}, []int{3, 4, 5}),
	"Maze":           mustRule([]int{1, 2, 3, 4, 5}, []int{3}),
	"Maze Mice":      mustRule([]int{1, 2, 3, 4, 5}, []int{3, 7}),
	"Mazectric":      mustRule([]int{1, 2, 3, 4}, []int{3}),
	"Move":           mustRule([]int{2, 4, 5}, []int{3, 6, 8}),
	"Pseudo Life":    mustRule([]int{2, 3, 8}, []int{3, 5, 7}),
	"Replicator":     mustRule([]int{1, 3, 5, 7}, []int{1, 3, 5, 7}),
	"Seeds":          mustRule([]int{}, []int{2}),
	"Serviettes":     mustRule([]int{}, []int{2, 3, 4}),
	"Stains":         mustRule([]int{2, 3, 5, 6, 7, 8}, []int{3, 6, 7, 8}),
	"Walled Cities":  mustRule([]int{2, 3, 4, 5}, []int{4, 5, 6, 7, 8}),
}

//LookupRule returns the predefined rule registered under name
func LookupRule(name string) (Rule, error) {
	r, ok := ruleTables[name]
	if !ok {
		return Rule{}, errors.Wrapf(ErrInvalidArgument, "unknown rule %q", name)
	}
	return r, nil
}

//RuleNames lists the predefined rule names in sorted order
func RuleNames() []string {
	names := make([]string, 0, len(ruleTables))
	for name := range ruleTables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

//mustRule builds a table entry; the literals above are all well-formed
func mustRule(survive []int, birth []int) Rule {
	r, err := NewRule(survive, birth)
	if err != nil {
		panic(err)
	}
	return r
}
