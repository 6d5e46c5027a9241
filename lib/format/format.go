/*package format handles mirror's miniature formatting languages for output
steps and dump file names, e.g:

   OutputSteps = 0..1000 - 500 + 2000
   Output = "dumps/piston_{%06d,step}.dump"

Sequence formats are a generic way to specify non-contiguous sequences of
natural numbers. They consist of a series of n tokens separated by "+" or "-".
Each token can be either a number or two numbers separted by "..". E.g.:

  100
  0..100
  0..10 + 100
  0..100 - 63 - 10..20

These strings build up sequences of numbers by adding/removing individual
numbers and contiguous sequences. For example, 0 through 10 would be 0..10,
1, 2, 3, 15, 16, 17 could be written as  1..17 - 4..13.

File formats are a combination of fixed text and variables. Variables are
written as {verb,rule}, where "verb" is a printf() verb for an integer (e.g.
%d or %05d) and "rule" names the value being printed. The only rule is
"step", the step a dump is written at.

All spaces around "-", "+", and "," symbols are ignored.
*/
package format

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	// Any expanded formats which would have more than BigNumber elements are
	// assumed to be bugs.
	BigNumber = 1 << 24
)

// ExpandSequenceFormat expands a sequence format string into a sorted sequence
// of integers.
func ExpandSequenceFormat(format string) ([]int, error) {
	// Parse and error-check the format string.
	tok, err := tokeniseSequenceFormat(format)
	if err != nil {
		return nil, err
	}
	adds, subs, err := addsSubsSequenceFormat(tok)
	if err != nil {
		return nil, err
	}

	// Add numbers to the sequence.
	m := map[int]int{}
	for i := range adds {
		ns := parseSequenceFormatToken(adds[i])
		for _, n := range ns {
			if _, ok := m[n]; ok {
				return nil, fmt.Errorf("The number %d is added more than once.", n)
			}
			m[n] = n
		}
		if len(m) > BigNumber {
			return nil, fmt.Errorf("This sequence would have more than %d "+
				"elements, which is almost certianly a bug.", BigNumber)
		}
	}

	// Remove numbers from the sequence.
	for i := range subs {
		ns := parseSequenceFormatToken(subs[i])
		for _, n := range ns {
			if _, ok := m[n]; !ok {
				return nil, fmt.Errorf("The number %d is removed more times than it was inserted.", n)
			}
			delete(m, n)
		}
	}

	// Convert to a sorted array of integers.
	out := []int{}
	for n := range m {
		out = append(out, n)
	}
	sort.Ints(out)

	return out, nil
}

// tokeniseSequenceFormat splits a sequence format string into numbers,
// ranges, and operators.
func tokeniseSequenceFormat(format string) ([]string, error) {
	// Make sure all operators are separated by spaces.
	formatClean := strings.ReplaceAll(format, "+", " + ")
	formatClean = strings.ReplaceAll(formatClean, "-", " - ")

	tok := strings.Fields(formatClean)
	if len(tok) == 0 {
		return nil, fmt.Errorf("The format string is empty.")
	}
	return tok, nil
}

func addsSubsSequenceFormat(tok []string) (adds, subs []string, err error) {
	if len(tok) == 0 {
		return nil, nil, fmt.Errorf("Format string is empty")
	}

	// Handle the case where the starting "+" is dropped.
	adds, subs = []string{}, []string{}
	var start int
	if tok[0] == "+" || tok[0] == "-" {
		start = 0
	} else {
		if err := isSequenceFormatToken(tok[0]); err != nil {
			return nil, nil, fmt.Errorf(
				"Element number %d, '%s', cannot be parsed because %s",
				1, tok[0], err.Error(),
			)
		}

		adds = append(adds, tok[0])
		start = 1
	}

	for i := start; i < len(tok); i += 2 {
		if tok[i] != "-" && tok[i] != "+" {
			return nil, nil, fmt.Errorf(
				"Element number %d, '%s', should be a '-' or '+', but isn't.",
				i+1, tok[i])
		}

		if i+1 >= len(tok) {
			return nil, nil, fmt.Errorf(
				"The format string ends in a trailing '%s'", tok[i],
			)
		}

		if err := isSequenceFormatToken(tok[i+1]); err != nil {
			return nil, nil, fmt.Errorf(
				"Element number %d, '%s', cannot be parsed because %s",
				i+2, tok[i+1], err.Error(),
			)
		}

		if tok[i] == "+" {
			adds = append(adds, tok[i+1])
		} else {
			subs = append(subs, tok[i+1])
		}
	}

	return adds, subs, nil
}

// isSequenceFormatToken returns a nil error is tok is a valid token for
// a sequence format and an error describing the problem otherwise. The error
// message assumes it is printed after a trailing "because".
func isSequenceFormatToken(tok string) error {
	if len(tok) == 0 {
		return fmt.Errorf("the format string is empty.")
	}

	bounds := strings.Split(tok, "..")

	switch len(bounds) {
	case 1:
		_, err := strconv.Atoi(bounds[0])
		if err != nil {
			return fmt.Errorf("'%s' is not an integer.", bounds[0])
		}
		return nil
	case 2:
		start, err1 := strconv.Atoi(bounds[0])
		if err1 != nil {
			return fmt.Errorf("'%s' is not an integer.", bounds[0])
		}
		end, err2 := strconv.Atoi(bounds[1])
		if err2 != nil {
			return fmt.Errorf("'%s' is not an integer.", bounds[1])
		}
		if end < start {
			return fmt.Errorf("lower bound %d is larger than upper bound %d.",
				start, end)
		}
		if end-start >= BigNumber {
			return fmt.Errorf("the range %d..%d has more than %d elements.",
				start, end, BigNumber)
		}

		return nil
	}
	return fmt.Errorf("it has more than one '..'.")
}

// parseSequenceFormatToken parses a single token in a sequence format string
// and returns the corresponding array of numbers. It assumes the token has
// already passed isSequenceFormatToken.
func parseSequenceFormatToken(tok string) []int {
	bounds := strings.Split(tok, "..")

	if len(bounds) == 1 {
		n, _ := strconv.Atoi(tok)
		return []int{n}
	}

	start, _ := strconv.Atoi(bounds[0])
	end, _ := strconv.Atoi(bounds[1])
	out := make([]int, 0, end-start+1)
	for n := start; n <= end; n++ {
		out = append(out, n)
	}
	return out
}

// StepSet is a set of steps expanded from a sequence format.
type StepSet map[int64]bool

// ExpandStepFormat expands a sequence format into the set of steps at which
// an action should happen.
func ExpandStepFormat(format string) (StepSet, error) {
	steps, err := ExpandSequenceFormat(format)
	if err != nil {
		return nil, fmt.Errorf("The step format string, '%s' is not valid. %s",
			format, err.Error())
	}
	set := StepSet{}
	for _, s := range steps {
		set[int64(s)] = true
	}
	return set, nil
}

// Contains returns true if step is in the set.
func (s StepSet) Contains(step int64) bool { return s[step] }

// startsEndsFormatString returns the indices of the beginning and end of each
// format variable.
func startsEndsFormatString(format string) (starts, ends []int, err error) {
	starts, ends = []int{}, []int{}
	nestedLevel := 0

	ending := "Make sure variables in file formats are enclosed in " +
		"matching { ... } pairs."

	for i := range format {
		if format[i] == '{' {
			nestedLevel++
			starts = append(starts, i)
		} else if format[i] == '}' {
			nestedLevel--
			ends = append(ends, i+1)
		}

		if nestedLevel > 1 {
			end := len(starts) - 1
			return nil, nil, fmt.Errorf("The file format '%s' has nested "+
				"'{' characters at indices %d and %d. %s", format,
				starts[end-1], starts[end], ending)
		} else if nestedLevel < 0 {
			end := len(ends) - 1
			return nil, nil, fmt.Errorf("The file format '%s' has a '}' "+
				"that doesn't come after a '{' character at index %d. %s",
				format, ends[end]-1, ending)
		}
	}

	if len(ends) != len(starts) {
		end := len(starts) - 1
		return nil, nil, fmt.Errorf("The file format '%s' has a '{' without "+
			"a matching '}' at index %d. %s", format, starts[end], ending)
	}

	return starts, ends, nil
}

// FileFormat is a parsed file format string.
type FileFormat struct {
	separators []string
	verbs      []string
}

// ParseFileFormat parses a file format string.
func ParseFileFormat(format string) (*FileFormat, error) {
	starts, ends, err := startsEndsFormatString(format)
	if err != nil {
		return nil, err
	}

	f := &FileFormat{}
	sepStart := 0
	for i := range starts {
		f.separators = append(f.separators, format[sepStart:starts[i]])
		sepStart = ends[i]

		v := format[starts[i]+1 : ends[i]-1]
		tok := strings.Split(v, ",")
		if len(tok) != 2 {
			return nil, fmt.Errorf("The file format '%s' has an invalid "+
				"variable, '{%s}'. Variables should contain a formatting "+
				"verb (e.g. '%%d', '%%05d'), a comma, and a rule (e.g. "+
				"'step').", format, v)
		}

		verb, rule := strings.TrimSpace(tok[0]), strings.TrimSpace(tok[1])
		if rule != "step" {
			return nil, fmt.Errorf("The file format '%s' uses the rule '%s', "+
				"but the only supported rule is 'step'.", format, rule)
		}
		if !isIntVerb(verb) {
			return nil, fmt.Errorf("The file format '%s' uses the verb '%s', "+
				"which is not an integer printf() verb like '%%d' or "+
				"'%%05d'.", format, verb)
		}
		f.verbs = append(f.verbs, verb)
	}
	f.separators = append(f.separators, format[sepStart:])

	return f, nil
}

// isIntVerb returns true if verb is a single printf() verb for integers.
func isIntVerb(verb string) bool {
	if len(verb) < 2 || verb[0] != '%' || verb[len(verb)-1] != 'd' {
		return false
	}
	for _, c := range verb[1 : len(verb)-1] {
		if (c < '0' || c > '9') && c != '-' && c != '+' && c != ' ' {
			return false
		}
	}
	return true
}

// Expand returns the file name for the given step.
func (f *FileFormat) Expand(step int64) string {
	sb := &strings.Builder{}
	for i := range f.verbs {
		sb.WriteString(f.separators[i])
		fmt.Fprintf(sb, f.verbs[i], step)
	}
	sb.WriteString(f.separators[len(f.separators)-1])
	return sb.String()
}

// ExpandFileFormat expands a file format string for a single step.
func ExpandFileFormat(format string, step int64) (string, error) {
	f, err := ParseFileFormat(format)
	if err != nil {
		return "", err
	}
	return f.Expand(step), nil
}
