package shell

import (
	"fmt"
	"strconv"
	"strings"
)

// readLine prints a prompt and returns the next input line. ok is false on
// EOF, which callers treat as cancelling the command.
func (s *Session) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// inputMenu prints numbered options and keeps asking until one is picked.
func (s *Session) inputMenu(prompt string, options []string) (string, bool) {
	for i, option := range options {
		fmt.Fprintf(s.out, "%2d: %s\n", i+1, option)
	}
	for {
		text, ok := s.readLine(prompt)
		if !ok {
			return "", false
		}
		if choice, err := strconv.Atoi(text); err == nil && choice >= 1 && choice <= len(options) {
			return options[choice-1], true
		}
		fmt.Fprintf(s.out, "Please enter a number from 1 to %d.\n", len(options))
	}
}

// inputInt keeps asking until it gets an integer of at least low (and at most
// high when high is positive). An empty line returns fallback when fallback
// is positive.
func (s *Session) inputInt(prompt string, low, high, fallback int) (int, bool) {
	for {
		text, ok := s.readLine(prompt)
		if !ok {
			return 0, false
		}
		if text == "" && fallback > 0 {
			return fallback, true
		}
		n, err := strconv.Atoi(text)
		if err != nil || n < low || (high > 0 && n > high) {
			if high > 0 {
				fmt.Fprintf(s.out, "Please enter an integer from %d to %d.\n", low, high)
			} else {
				fmt.Fprintf(s.out, "Please enter an integer of at least %d.\n", low)
			}
			continue
		}
		return n, true
	}
}

// inputYesNo keeps asking until it gets a yes or no answer.
func (s *Session) inputYesNo(prompt string) bool {
	for {
		text, ok := s.readLine(prompt)
		if !ok {
			return false
		}
		switch strings.ToLower(text) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		fmt.Fprintln(s.out, "Please answer yes or no.")
	}
}

// flagMenu maps menu letters to flag bits. Letters follow the menu text: A
// sets odd_face, B odd_pip, C odd_shape, D material, E art_pip.
var flagMenu = []struct {
	letter byte
	text   string
	bit    int
}{
	{'A', "Faces that are not 1 to %d.", 16},
	{'B', "Faces that are 1-%d but not pips or arabic numerals.", 8},
	{'C', "A non-standard shape.", 4},
	{'D', "A material besides plastic or resin.", 2},
	{'E', "Different symbols for the 1 or the %d.", 1},
}

// inputFlags shows the flag menu and packs the chosen letters into a mask.
func (s *Session) inputFlags(sides int) (int, bool) {
	for _, item := range flagMenu {
		line := item.text
		if strings.Contains(line, "%d") {
			line = fmt.Sprintf(line, sides)
		}
		fmt.Fprintf(s.out, "%c: %s\n", item.letter, line)
	}
	for {
		text, ok := s.readLine("Enter any of the above items that fit the dice: ")
		if !ok {
			return 0, false
		}
		flags := 0
		valid := true
		for _, letter := range strings.ToUpper(text) {
			matched := false
			for _, item := range flagMenu {
				if byte(letter) == item.letter {
					flags |= item.bit
					matched = true
					break
				}
			}
			if !matched && letter != ' ' && letter != ',' {
				valid = false
				break
			}
		}
		if valid {
			return flags, true
		}
		fmt.Fprintln(s.out, "Please only enter the letters A through E.")
	}
}
