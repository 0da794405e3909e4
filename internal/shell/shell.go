// Package shell implements the interactive collection shell: a line-oriented
// command loop over the in-memory collection with named subsets, filtering,
// reporting, and save-on-demand persistence.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zocchihedron/dicetrack/internal/utils"
	"github.com/zocchihedron/dicetrack/pkg/datfile"
	"github.com/zocchihedron/dicetrack/pkg/dice"
)

const prompt = "DICE:: "

// Session is one interactive run over the collection. The full collection,
// the current working subset, and any named subsets live here; only save
// touches the data file.
type Session struct {
	in  *bufio.Scanner
	out io.Writer

	dataPath   string
	dice       []*dice.Die
	current    []*dice.Die
	subsets    map[string][]*dice.Die
	predicates map[string]dice.Predicate

	changes bool
	newRows []*dice.Die
}

var aliases = map[string]string{
	"q":   "quit",
	"sub": "subset",
}

// New prepares a session reading commands from in and printing to out. The
// collection is loaded from dataPath on Run.
func New(in io.Reader, out io.Writer, dataPath string) *Session {
	return &Session{
		in:         bufio.NewScanner(in),
		out:        out,
		dataPath:   dataPath,
		subsets:    make(map[string][]*dice.Die),
		predicates: dice.BuiltinPredicates(),
	}
}

// RegisterPredicate adds a named filter predicate for this session.
func (s *Session) RegisterPredicate(name string, pred dice.Predicate) {
	s.predicates[name] = pred
}

// Run loads the stored collection and processes commands until quit or EOF.
func (s *Session) Run() error {
	if err := s.loadData(); err != nil {
		return err
	}
	s.current = append([]*dice.Die(nil), s.dice...)

	fmt.Fprintln(s.out, "Welcome to your dice collection.")
	fmt.Fprintf(s.out, "You have %d dice.\n\n", dice.TotalCount(s.dice))

	for {
		fmt.Fprint(s.out, prompt)
		if !s.in.Scan() {
			return s.in.Err()
		}
		name, args, _ := strings.Cut(strings.TrimSpace(s.in.Text()), " ")
		name = strings.ToLower(name)
		if name == "" {
			continue
		}
		if target, ok := aliases[name]; ok {
			name = target
		}
		done, err := s.dispatch(name, strings.TrimSpace(args))
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (s *Session) dispatch(name, args string) (bool, error) {
	switch name {
	case "add":
		s.doAdd()
	case "add7":
		s.doAdd7()
	case "subset":
		s.doSubset(args)
	case "load":
		s.doLoad(args)
	case "store":
		s.doStore(args)
	case "count":
		s.doCount(args)
	case "table":
		s.doTable()
	case "save":
		return false, s.doSave()
	case "quit":
		return true, s.doQuit()
	case "help":
		s.doHelp()
	default:
		fmt.Fprintf(s.out, "I do not recognize the command %q. Type help for a list of commands.\n", name)
	}
	return false, nil
}

func (s *Session) loadData() error {
	collection, err := datfile.Load(s.dataPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(s.out, "No stored collection found at %s, starting empty.\n", s.dataPath)
			return nil
		}
		return err
	}
	s.dice = collection
	return nil
}

// enter merges count dice of the given code into the collection, tracking
// whether an existing row changed or a new row was created.
func (s *Session) enter(code string, count int) error {
	for _, d := range s.dice {
		if d.Code == code {
			d.Add(count)
			s.changes = true
			return nil
		}
	}
	d, err := dice.New(code, count)
	if err != nil {
		return err
	}
	s.dice = append(s.dice, d)
	s.newRows = append(s.newRows, d)
	return nil
}

func (s *Session) doAdd() {
	color, ok := s.inputMenu("What color are the dice? ", colorNames())
	if !ok {
		return
	}
	size, ok := s.inputMenu("What size are the dice? ", sizeNames())
	if !ok {
		return
	}
	sides, ok := s.inputInt("How many sides do the dice have? ", 1, 999, 0)
	if !ok {
		return
	}
	faces, ok := s.inputInt(fmt.Sprintf("How many unique faces do the dice have (return for %d)? ", sides), 1, 999, sides)
	if !ok {
		return
	}
	flags, ok := s.inputFlags(sides)
	if !ok {
		return
	}
	count, ok := s.inputInt("How many of these dice are you adding to the collection? ", 1, 0, 0)
	if !ok {
		return
	}

	code, err := dice.Encode(color, size, sides, faces, flags)
	if err != nil {
		fmt.Fprintf(s.out, "Could not encode those dice: %v.\n", err)
		return
	}
	if err := s.enter(code, count); err != nil {
		fmt.Fprintf(s.out, "Could not add those dice: %v.\n", err)
		return
	}
	fmt.Fprintf(s.out, "\nYou now have %d dice.\n", dice.TotalCount(s.dice))
}

func (s *Session) doAdd7() {
	color, ok := s.inputMenu("What color are the dice? ", colorNames())
	if !ok {
		return
	}
	for _, sides := range []int{4, 6, 8, 10, 100, 12, 20} {
		var code string
		var err error
		if sides == 100 {
			// The percentile die is a d10 numbered 00-90.
			code, err = dice.Encode(color, "medium", 10, 10, 16)
		} else {
			code, err = dice.Encode(color, "medium", sides, sides, 0)
		}
		if err != nil {
			fmt.Fprintf(s.out, "Could not encode the d%d: %v.\n", sides, err)
			return
		}
		if err := s.enter(code, 1); err != nil {
			fmt.Fprintf(s.out, "Could not add the d%d: %v.\n", sides, err)
			return
		}
	}
	fmt.Fprintf(s.out, "\nYou now have %d dice.\n", dice.TotalCount(s.dice))
}

func (s *Session) doSubset(criteria string) {
	subset, warnings := dice.Filter(s.current, criteria, s.predicates)
	for _, w := range warnings {
		fmt.Fprintf(s.out, "%s.\n", w)
	}
	s.current = subset
	s.printCount()
}

func (s *Session) doLoad(name string) {
	if strings.ToLower(name) == "all" {
		s.current = append([]*dice.Die(nil), s.dice...)
	} else if subset, ok := s.subsets[name]; ok {
		s.current = subset
	} else {
		fmt.Fprintf(s.out, "There is no stored subset named %q.\n", name)
		return
	}
	s.printCount()
}

func (s *Session) doStore(name string) {
	if name == "" {
		fmt.Fprintln(s.out, "Please provide a name for the subset.")
		return
	}
	s.subsets[name] = s.current
}

func (s *Session) doCount(feature string) {
	if len(s.current) == 0 {
		fmt.Fprintln(s.out, "There are no dice in the current subset.")
		return
	}
	groups, err := dice.CountByFeature(s.current, feature)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid die feature: %q.\n", feature)
		return
	}
	width := 0
	for _, g := range groups {
		if len(g.Value) > width {
			width = len(g.Value)
		}
	}
	for _, g := range groups {
		fmt.Fprintf(s.out, "%*s %d\n", width, g.Value, g.Count)
	}
}

func (s *Session) doTable() {
	for _, d := range s.current {
		fmt.Fprintln(s.out, d.TableRow())
	}
}

func (s *Session) doSave() error {
	switch {
	case s.changes:
		if err := s.writeLocked(func() error { return datfile.Write(s.dataPath, s.dice) }); err != nil {
			return err
		}
		s.changes = false
		s.newRows = nil
		fmt.Fprintf(s.out, "%d row%s were written to the stored data.\n", len(s.dice), plural(len(s.dice)))
	case len(s.newRows) > 0:
		if err := s.writeLocked(func() error { return datfile.Append(s.dataPath, s.newRows) }); err != nil {
			return err
		}
		rows := len(s.newRows)
		s.newRows = nil
		fmt.Fprintf(s.out, "%d row%s were added to the stored data.\n", rows, plural(rows))
	default:
		fmt.Fprintln(s.out, "No changes have been made to the collection.")
	}
	return nil
}

func (s *Session) writeLocked(write func() error) error {
	if err := os.MkdirAll(filepath.Dir(s.dataPath), 0o755); err != nil {
		return err
	}
	lock, err := utils.NewDataLock(s.dataPath)
	if err != nil {
		return err
	}
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()
	return write()
}

func (s *Session) doQuit() error {
	if s.changes || len(s.newRows) > 0 {
		if s.inputYesNo("Changes to the collection have been made. Do you wish to save them? ") {
			return s.doSave()
		}
	}
	return nil
}

func (s *Session) doHelp() {
	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out, "  add              Add dice to the collection.")
	fmt.Fprintln(s.out, "  add7             Add a standard seven die set.")
	fmt.Fprintln(s.out, "  subset <words>   Narrow the current subset. (sub)")
	fmt.Fprintln(s.out, "  load <name|all>  Load a stored subset, or everything.")
	fmt.Fprintln(s.out, "  store <name>     Store the current subset under a name.")
	fmt.Fprintln(s.out, "  count <feature>  Count the current subset by a feature.")
	fmt.Fprintln(s.out, "  table            Print the current subset as a table.")
	fmt.Fprintln(s.out, "  save             Save the collection.")
	fmt.Fprintln(s.out, "  quit             Leave the collection. (q)")
}

func (s *Session) printCount() {
	total := dice.TotalCount(s.current)
	toBe, dWord := "are", "dice"
	if total == 1 {
		toBe, dWord = "is", "die"
	}
	fmt.Fprintf(s.out, "There %s %d %s in the current subset.\n", toBe, total, dWord)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func colorNames() []string {
	names := make([]string, 0, len(dice.Colors))
	for _, name := range dice.Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sizeNames() []string {
	// Menu order from smallest to largest reads better than alphabetical.
	return []string{"small", "medium", "large", "huge", "gigantic"}
}
