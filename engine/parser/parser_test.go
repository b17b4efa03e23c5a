package parser

import (
	"reflect"
	"testing"

	"github.com/nathoo/dicepool/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Intent
	}{
		// Empty / whitespace
		{
			name:  "empty string",
			input: "",
			want:  types.Intent{},
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  types.Intent{},
		},

		// Basic verbs
		{
			name:  "roll",
			input: "roll",
			want:  types.Intent{Verb: "roll", Args: []string{}},
		},
		{
			name:  "uppercase verb",
			input: "STATS",
			want:  types.Intent{Verb: "stats", Args: []string{}},
		},

		// Verb aliases
		{
			name:  "r → roll",
			input: "r",
			want:  types.Intent{Verb: "roll", Args: []string{}},
		},
		{
			name:  "target → dc",
			input: "target 12",
			want:  types.Intent{Verb: "dc", Args: []string{"12"}},
		},
		{
			name:  "advantage → adv",
			input: "advantage",
			want:  types.Intent{Verb: "adv", Args: []string{}},
		},
		{
			name:  "disadvantage → dis",
			input: "disadvantage",
			want:  types.Intent{Verb: "dis", Args: []string{}},
		},
		{
			name:  "hist → chart",
			input: "hist",
			want:  types.Intent{Verb: "chart", Args: []string{}},
		},

		// Dice shortcuts
		{
			name:  "bare dice adds",
			input: "2d6",
			want:  types.Intent{Verb: "add", Args: []string{"2d6"}},
		},
		{
			name:  "bare die adds",
			input: "D20",
			want:  types.Intent{Verb: "add", Args: []string{"d20"}},
		},
		{
			name:  "plus prefix adds",
			input: "+3d4",
			want:  types.Intent{Verb: "add", Args: []string{"3d4"}},
		},
		{
			name:  "minus prefix removes",
			input: "-d8",
			want:  types.Intent{Verb: "remove", Args: []string{"d8"}},
		},
		{
			name:  "negative number is not dice",
			input: "-5",
			want:  types.Intent{Verb: "-5", Args: []string{}},
		},

		// Multi-word verbs
		{
			name:  "set dc",
			input: "set dc 18",
			want:  types.Intent{Verb: "dc", Args: []string{"18"}},
		},
		{
			name:  "set skill to",
			input: "set skill to 4",
			want:  types.Intent{Verb: "skill", Args: []string{"4"}},
		},
		{
			name:  "set dice quantity",
			input: "set d8 3",
			want:  types.Intent{Verb: "set", Args: []string{"d8", "3"}},
		},
		{
			name:  "show log",
			input: "show log",
			want:  types.Intent{Verb: "log", Args: []string{}},
		},
		{
			name:  "show pool",
			input: "show pool",
			want:  types.Intent{Verb: "dice", Args: []string{}},
		},
		{
			name:  "roll again",
			input: "roll again",
			want:  types.Intent{Verb: "roll", Args: []string{}},
		},
		{
			name:  "toggle adv",
			input: "toggle adv",
			want:  types.Intent{Verb: "adv", Args: []string{}},
		},

		// Fillers and argument case
		{
			name:  "dc equals",
			input: "dc = 15",
			want:  types.Intent{Verb: "dc", Args: []string{"15"}},
		},
		{
			name:  "preset name keeps case",
			input: "preset save Stealth_Check",
			want:  types.Intent{Verb: "preset", Args: []string{"save", "Stealth_Check"}},
		},
		{
			name:  "load → preset",
			input: "load HEAVY_DMG",
			want:  types.Intent{Verb: "preset", Args: []string{"HEAVY_DMG"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDice(t *testing.T) {
	tests := []struct {
		token     string
		wantCount int
		wantSides types.DieType
		wantErr   bool
	}{
		{"d20", 1, types.D20, false},
		{"2d6", 2, types.D6, false},
		{"3D100", 3, types.D100, false},
		{"0d4", 0, types.D4, false},
		{" 1d12 ", 1, types.D12, false},
		{"d7", 0, 0, true},
		{"d", 0, 0, true},
		{"xd6", 0, 0, true},
		{"-1d6", 0, 0, true},
		{"dc", 0, 0, true},
		{"20", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, tt := range tests {
		count, sides, err := ParseDice(tt.token)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDice(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			continue
		}
		if count != tt.wantCount || sides != tt.wantSides {
			t.Errorf("ParseDice(%q) = %d, %d; want %d, %d", tt.token, count, sides, tt.wantCount, tt.wantSides)
		}
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"5", 5, false},
		{"+3", 3, false},
		{"-2", -2, false},
		{"x", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseInt(tt.arg)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseInt(%q) = %d, %v; want %d, wantErr %v", tt.arg, got, err, tt.want, tt.wantErr)
		}
	}
}
