// Package parser converts console command strings into Intent structs.
// Intentionally dumb: no grammar, just pattern matching.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nathoo/dicepool/types"
)

var verbAliases = map[string]string{
	// Roll
	"r":       "roll",
	"execute": "roll",
	"exec":    "roll",
	"throw":   "roll",

	// Pool edits
	"+":     "add",
	"plus":  "add",
	"-":     "remove",
	"rm":    "remove",
	"del":   "remove",
	"minus": "remove",
	"empty": "clear",
	"purge": "clear",
	"pool":  "dice",

	// Modifiers
	"sk":         "skill",
	"m":          "mod",
	"modifier":   "mod",
	"situation":  "mod",
	"target":     "dc",
	"t":          "dc",
	"difficulty": "dc",

	// Advantage
	"a":            "adv",
	"advantage":    "adv",
	"hi":           "adv",
	"disadvantage": "dis",
	"lo":           "dis",
	"n":            "normal",
	"straight":     "normal",

	// Output
	"s":         "stats",
	"stat":      "stats",
	"status":    "stats",
	"sim":       "stats",
	"c":         "chart",
	"dist":      "chart",
	"hist":      "chart",
	"histogram": "chart",
	"graph":     "chart",
	"h":         "log",
	"history":   "log",
	"logs":      "log",

	// Presets
	"p":       "preset",
	"load":    "preset",
	"loadout": "preset",
	"ls":      "presets",
	"list":    "presets",
}

// Words dropped from argument lists: "skill to 5", "dc = 15".
var fillers = map[string]bool{
	"to": true, "=": true, "of": true, "the": true, "a": true,
}

// Parse converts a raw command string into an Intent. The verb is
// lowercased; arguments keep their case so preset names survive.
func Parse(input string) types.Intent {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Intent{}
	}

	words := strings.Fields(input)
	words[0] = strings.ToLower(words[0])

	// Sign shortcuts: "+2d6", "-d4".
	if len(words[0]) > 1 && (words[0][0] == '+' || words[0][0] == '-') {
		if _, _, err := ParseDice(words[0][1:]); err == nil {
			words = append([]string{words[0][:1], words[0][1:]}, words[1:]...)
		}
	}

	// Bare dice token: "2d6" adds two d6.
	if _, _, err := ParseDice(words[0]); err == nil {
		words = append([]string{"add"}, words...)
	}

	// Handle multi-word verb phrases before general parsing.
	words = expandMultiWordVerbs(words)

	// Apply verb aliases.
	if alias, ok := verbAliases[words[0]]; ok {
		words[0] = alias
	}

	return types.Intent{
		Verb: words[0],
		Args: stripFillers(words[1:]),
	}
}

// expandMultiWordVerbs handles "set dc 12", "show log" etc.
func expandMultiWordVerbs(words []string) []string {
	if len(words) < 2 {
		return words
	}

	second := strings.ToLower(words[1])
	switch words[0] {
	case "set":
		switch second {
		case "dc", "target", "skill", "mod", "modifier", "mode":
			return append([]string{second}, words[2:]...)
		}
	case "show", "view", "print":
		switch second {
		case "log", "history", "chart", "stats", "presets", "dice", "pool":
			return append([]string{second}, words[2:]...)
		}
	case "roll":
		if second == "it" || second == "again" {
			return []string{"roll"}
		}
	case "toggle":
		return append([]string{second}, words[2:]...)
	}

	return words
}

// stripFillers removes filler words from the argument list.
func stripFillers(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !fillers[strings.ToLower(w)] {
			result = append(result, w)
		}
	}
	return result
}

// ParseDice parses dice notation such as "d20", "2d6" or "3D100".
// The side count must be a supported die type.
func ParseDice(token string) (int, types.DieType, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	i := strings.IndexByte(token, 'd')
	if i < 0 {
		return 0, 0, fmt.Errorf("not dice notation: %q", token)
	}

	count := 1
	if i > 0 {
		n, err := strconv.Atoi(token[:i])
		if err != nil || n < 0 {
			return 0, 0, fmt.Errorf("bad dice count in %q", token)
		}
		count = n
	}

	sides, err := strconv.Atoi(token[i+1:])
	if err != nil {
		return 0, 0, fmt.Errorf("bad side count in %q", token)
	}
	for _, d := range types.DieTypes {
		if int(d) == sides {
			return count, d, nil
		}
	}
	return 0, 0, fmt.Errorf("unsupported die d%d", sides)
}

// ParseInt parses a signed integer argument, accepting a leading '+'.
func ParseInt(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(arg), "+"))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", arg)
	}
	return n, nil
}
