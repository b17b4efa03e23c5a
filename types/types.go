// Package types defines the shared data structures for the dicepool engine.
// This package contains only type definitions: no logic, no methods.
package types

// DieType is the number of faces on a die.
type DieType int

// Supported die types.
const (
	D4   DieType = 4
	D6   DieType = 6
	D8   DieType = 8
	D10  DieType = 10
	D12  DieType = 12
	D20  DieType = 20
	D100 DieType = 100
)

// DieTypes lists every supported die type in ascending order.
var DieTypes = []DieType{D4, D6, D8, D10, D12, D20, D100}

// DiceConfig maps a die type to how many of that die are in the pool.
// A missing key means zero dice of that type.
type DiceConfig map[DieType]int

// CalculationMode is reserved for comparative checks. Only standard is resolved.
type CalculationMode string

const (
	ModeStandard CalculationMode = "standard"
	ModeVersus   CalculationMode = "versus"
)

// ProbabilityState is the full input to a simulation or a roll.
type ProbabilityState struct {
	Dice         DiceConfig      `json:"dice"`
	Skill        int             `json:"skill"`    // base skill added to the sum
	Modifier     int             `json:"modifier"` // situational +/-
	Target       int             `json:"target"`   // DC
	Advantage    bool            `json:"advantage"`
	Disadvantage bool            `json:"disadvantage"`
	Mode         CalculationMode `json:"mode"`
}

// DistributionData is one bar of the outcome histogram.
type DistributionData struct {
	Outcome     int     `json:"outcome"`
	Probability float64 `json:"probability"`
}

// SimulationResult is the summary of an exact distribution against a target.
type SimulationResult struct {
	Chance       int                `json:"chance"` // 0-100
	Mean         float64            `json:"mean"`
	Min          int                `json:"min"`
	Max          int                `json:"max"`
	StdDev       float64            `json:"stdDev"`
	Distribution []DistributionData `json:"distribution"`
}

// RollType records which two-draw rule applied to a roll.
type RollType string

const (
	RollNormal       RollType = "NORMAL"
	RollAdvantage    RollType = "ADV"
	RollDisadvantage RollType = "DIS"
)

// RollDetail is one concrete draw of the whole pool.
type RollDetail struct {
	Total     int    `json:"total"`
	DiceTotal int    `json:"diceTotal"`
	Breakdown string `json:"breakdown"` // e.g. "1D20(15)+2D6(3,5)"
	Skill     int    `json:"skill"`
	Mod       int    `json:"mod"`
}

// RollOutcome is the result of one sampled check.
type RollOutcome struct {
	IsSuccess  bool         `json:"isSuccess"`
	FinalTotal int          `json:"finalTotal"`
	RollType   RollType     `json:"rollType"`
	Rolls      []RollDetail `json:"rolls"`
}

// LogEntry is a timestamped roll outcome kept in the roll log.
type LogEntry struct {
	ID         string       `json:"id"`
	Timestamp  string       `json:"timestamp"`
	IsSuccess  bool         `json:"isSuccess"`
	FinalTotal int          `json:"finalTotal"`
	Target     int          `json:"target"`
	RollType   RollType     `json:"rollType"`
	Rolls      []RollDetail `json:"rolls"` // [0] first roll, [1] second roll for ADV/DIS
}

// Preset is a named, reusable configuration.
type Preset struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	State ProbabilityState `json:"state"`
}

// Intent is the parsed representation of a console command.
type Intent struct {
	Verb string
	Args []string
}

// Event is emitted by a console step for callers that mirror state elsewhere.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single console step.
type Result struct {
	Output []string
	Events []Event
}
