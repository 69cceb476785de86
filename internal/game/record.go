package game

import (
	"quizard/internal/percent"
	"quizard/internal/quiz"
)

// RecordCalculator converts accumulated Point data into display numbers
// for one mode. The aggregate variant supports only RecordPercent.
type RecordCalculator interface {
	// Record is the mode's best result for display.
	Record(p quiz.Point) (int, error)

	// Remaining is the distance from the record to the total count.
	Remaining(p quiz.Point) (int, error)

	// RecordPercent is the record as a percentage of the total count.
	RecordPercent(p quiz.Point) int

	// RecordPercentFromValues computes the percent for a value/count pair
	// that has not been persisted into a Point yet (end-of-game display).
	RecordPercentFromValues(value, count int) (int, error)
}

// CalculatorFor returns the calculator for a record-bearing mode, or nil
// for modes without records.
func CalculatorFor(mode quiz.Mode) RecordCalculator {
	switch mode {
	case quiz.ModeArcade:
		return modeCalculator{best: func(p quiz.Point) int { return p.ArcadeBest }}
	case quiz.ModeMarathon:
		return modeCalculator{best: func(p quiz.Point) int { return p.MarathonBest }}
	case quiz.ModeSprint:
		return modeCalculator{best: func(p quiz.Point) int { return p.SprintBest }}
	}
	return nil
}

// AggregateCalculator returns the cross-mode calculator used for overall
// category progress.
func AggregateCalculator() RecordCalculator {
	return aggregateCalculator{}
}

// modeCalculator reads a single Point field as the current best.
type modeCalculator struct {
	best func(p quiz.Point) int
}

func (c modeCalculator) Record(p quiz.Point) (int, error) {
	return c.best(p), nil
}

func (c modeCalculator) Remaining(p quiz.Point) (int, error) {
	rem := p.Count - c.best(p)
	if rem < 0 {
		rem = 0
	}
	return rem, nil
}

func (c modeCalculator) RecordPercent(p quiz.Point) int {
	return percent.Calculate(c.best(p), p.Count)
}

func (c modeCalculator) RecordPercentFromValues(value, count int) (int, error) {
	return percent.Calculate(value, count), nil
}

// aggregateCalculator averages the three per-mode percents. Integer
// division matches the per-mode percent rounding.
type aggregateCalculator struct{}

func (aggregateCalculator) Record(quiz.Point) (int, error) {
	return 0, ErrUnsupported
}

func (aggregateCalculator) Remaining(quiz.Point) (int, error) {
	return 0, ErrUnsupported
}

func (aggregateCalculator) RecordPercent(p quiz.Point) int {
	arcade := CalculatorFor(quiz.ModeArcade).RecordPercent(p)
	marathon := CalculatorFor(quiz.ModeMarathon).RecordPercent(p)
	sprint := CalculatorFor(quiz.ModeSprint).RecordPercent(p)
	return (arcade + marathon + sprint) / 3
}

func (aggregateCalculator) RecordPercentFromValues(int, int) (int, error) {
	return 0, ErrUnsupported
}
