package game

import (
	"errors"
	"testing"

	"quizard/internal/quiz"
)

func testPoint() quiz.Point {
	return quiz.Point{
		ArcadeBest:   10,
		MarathonBest: 15,
		SprintBest:   6,
		Attempts:     12,
		Count:        20,
	}
}

func TestModeCalculators_ReadTheirOwnField(t *testing.T) {
	p := testPoint()
	tests := []struct {
		mode          quiz.Mode
		wantRecord    int
		wantRemaining int
		wantPercent   int
	}{
		{quiz.ModeArcade, 10, 10, 50},
		{quiz.ModeMarathon, 15, 5, 75},
		{quiz.ModeSprint, 6, 14, 30},
	}
	for _, tt := range tests {
		calc := CalculatorFor(tt.mode)
		record, err := calc.Record(p)
		if err != nil {
			t.Fatalf("%s: Record: %v", tt.mode, err)
		}
		if record != tt.wantRecord {
			t.Errorf("%s: Record = %d, want %d", tt.mode, record, tt.wantRecord)
		}
		remaining, err := calc.Remaining(p)
		if err != nil {
			t.Fatalf("%s: Remaining: %v", tt.mode, err)
		}
		if remaining != tt.wantRemaining {
			t.Errorf("%s: Remaining = %d, want %d", tt.mode, remaining, tt.wantRemaining)
		}
		if pct := calc.RecordPercent(p); pct != tt.wantPercent {
			t.Errorf("%s: RecordPercent = %d, want %d", tt.mode, pct, tt.wantPercent)
		}
	}
}

func TestModeCalculator_ZeroCount(t *testing.T) {
	calc := CalculatorFor(quiz.ModeArcade)
	if pct := calc.RecordPercent(quiz.Point{ArcadeBest: 5}); pct != 0 {
		t.Errorf("RecordPercent with zero count = %d, want 0", pct)
	}
}

func TestModeCalculator_FromValues(t *testing.T) {
	calc := CalculatorFor(quiz.ModeSprint)
	pct, err := calc.RecordPercentFromValues(7, 20)
	if err != nil {
		t.Fatalf("RecordPercentFromValues: %v", err)
	}
	if pct != 35 {
		t.Errorf("RecordPercentFromValues(7, 20) = %d, want 35", pct)
	}
}

func TestAggregate_MeanOfModePercents(t *testing.T) {
	p := testPoint()
	agg := AggregateCalculator()

	sum := 0
	for _, mode := range []quiz.Mode{quiz.ModeArcade, quiz.ModeMarathon, quiz.ModeSprint} {
		sum += CalculatorFor(mode).RecordPercent(p)
	}
	want := sum / 3

	if got := agg.RecordPercent(p); got != want {
		t.Errorf("aggregate RecordPercent = %d, want %d", got, want)
	}
}

func TestAggregate_UnsupportedOperations(t *testing.T) {
	agg := AggregateCalculator()
	p := testPoint()

	if _, err := agg.Record(p); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Record error = %v, want ErrUnsupported", err)
	}
	if _, err := agg.Remaining(p); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Remaining error = %v, want ErrUnsupported", err)
	}
	if _, err := agg.RecordPercentFromValues(1, 2); !errors.Is(err, ErrUnsupported) {
		t.Errorf("RecordPercentFromValues error = %v, want ErrUnsupported", err)
	}
}

func TestCalculatorFor_NonRecordModes(t *testing.T) {
	if CalculatorFor(quiz.ModeError) != nil {
		t.Error("error review has no record calculator")
	}
	if CalculatorFor(quiz.ModeAITasks) != nil {
		t.Error("ai tasks has no record calculator")
	}
}
