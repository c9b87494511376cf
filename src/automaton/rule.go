package automaton

import (
	"bytes"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//ErrInvalidRule is returned when survive/birth sets are malformed
var ErrInvalidRule = errors.New("invalid rule")

const (
	ruleSurviveKey = "S"
	ruleBirthKey   = "B"

	maxNeighbours = 8
)

//Rule is an immutable life-like rule: the neighbour counts at which an
//alive cell survives and a dead cell is born
type Rule struct {
	survive [maxNeighbours + 1]bool
	birth   [maxNeighbours + 1]bool
}

//NewRule creates a validated Rule from survive and birth neighbour counts
//empty sets are legal (a rule with no survival, or no birth)
func NewRule(survive []int, birth []int) (Rule, error) {
	var r Rule
	if err := fillRuleSet(&r.survive, survive); err != nil {
		return Rule{}, errors.Wrapf(err, "%s set", ruleSurviveKey)
	}
	if err := fillRuleSet(&r.birth, birth); err != nil {
		return Rule{}, errors.Wrapf(err, "%s set", ruleBirthKey)
	}
	return r, nil
}

//RuleFromSpec creates a Rule from a loose {"S": ..., "B": ...} mapping
//both keys must be present, possibly with empty values
func RuleFromSpec(spec map[string][]int) (Rule, error) {
	survive, ok := spec[ruleSurviveKey]
	if !ok {
		return Rule{}, errors.Wrapf(ErrInvalidRule, "missing %q key", ruleSurviveKey)
	}
	birth, ok := spec[ruleBirthKey]
	if !ok {
		return Rule{}, errors.Wrapf(ErrInvalidRule, "missing %q key", ruleBirthKey)
	}
	return NewRule(survive, birth)
}

func fillRuleSet(set *[maxNeighbours + 1]bool, counts []int) error {
	for _, n := range counts {
		if n < 0 || n > maxNeighbours {
			return errors.Wrapf(ErrInvalidRule, "neighbour count %d outside [0,%d]", n, maxNeighbours)
		}
		set[n] = true
	}
	return nil
}

//NextState evaluates the state a cell will have in the next generation
//given its current state and live-neighbour count
func (r Rule) NextState(alive bool, neighbours int) bool {
	if alive {
		return r.survive[neighbours]
	}
	return r.birth[neighbours]
}

//String renders the rule in S/B notation, e.g. "S23/B3" for Conway's Life
func (r Rule) String() string {
	var b bytes.Buffer
	b.WriteString(ruleSurviveKey)
	for n := 0; n <= maxNeighbours; n++ {
		if r.survive[n] {
			b.WriteString(strconv.Itoa(n))
		}
	}
	b.WriteByte('/')
	b.WriteString(ruleBirthKey)
	for n := 0; n <= maxNeighbours; n++ {
		if r.birth[n] {
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}

//ruleFile is the on-disk YAML shape of a rule
//pointers distinguish an absent key from an empty list
type ruleFile struct {
	Survive *[]int `yaml:"S"`
	Birth   *[]int `yaml:"B"`
}

//LoadRuleFile reads a YAML rule file with required S and B keys
func LoadRuleFile(path string) (Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rule{}, errors.Wrapf(err, "failed to read rule file %s", path)
	}
	var rf ruleFile
	if err = yaml.Unmarshal(data, &rf); err != nil {
		return Rule{}, errors.Wrapf(err, "failed to parse rule file %s", path)
	}
	if rf.Survive == nil {
		return Rule{}, errors.Wrapf(ErrInvalidRule, "%s: missing %q key", path, ruleSurviveKey)
	}
	if rf.Birth == nil {
		return Rule{}, errors.Wrapf(ErrInvalidRule, "%s: missing %q key", path, ruleBirthKey)
	}
	return NewRule(*rf.Survive, *rf.Birth)
}
