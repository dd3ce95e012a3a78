package sampling

import (
	"fmt"
	"testing"

	"stratasample/domain/core"
	"stratasample/domain/population"
)

func testStratum(label string, count int) Stratum {
	records := make([]population.Record, count)
	for i := range records {
		records[i] = population.Record{
			ID:      core.RecordID(fmt.Sprintf("%s-%03d", label, i)),
			Stratum: core.StratumLabel(label),
			Cost:    float64(i * 10),
		}
	}
	return Stratum{Label: core.StratumLabel(label), Records: records, Count: count}
}

func decisionFor(s Stratum, n int) SizeDecision {
	return SizeDecision{Stratum: s.Label, PopulationSize: s.Count, AppliedN: n, Method: MethodFormula}
}

func TestDrawIsReproducible(t *testing.T) {
	s := testStratum("pharma", 100)
	d := decisionFor(s, 25)

	first, err := Draw(s, d, 12345)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	second, err := Draw(s, d, 12345)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}

	if len(first.SelectedIDs) != len(second.SelectedIDs) {
		t.Fatalf("sizes differ: %d vs %d", len(first.SelectedIDs), len(second.SelectedIDs))
	}
	for i := range first.SelectedIDs {
		if first.SelectedIDs[i] != second.SelectedIDs[i] {
			t.Fatalf("selection differs at %d: %s vs %s", i, first.SelectedIDs[i], second.SelectedIDs[i])
		}
	}
}

func TestDrawDifferentSeedsDiffer(t *testing.T) {
	s := testStratum("pharma", 100)
	d := decisionFor(s, 25)

	a, _ := Draw(s, d, 1)
	b, _ := Draw(s, d, 2)

	same := true
	for i := range a.SelectedIDs {
		if a.SelectedIDs[i] != b.SelectedIDs[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("expected different seeds to give different selections (overwhelmingly likely)")
	}
}

func TestDrawIndependentOfLoadOrder(t *testing.T) {
	s := testStratum("packaging", 50)

	reversed := testStratum("packaging", 50)
	for i, j := 0, len(reversed.Records)-1; i < j; i, j = i+1, j-1 {
		reversed.Records[i], reversed.Records[j] = reversed.Records[j], reversed.Records[i]
	}

	d := decisionFor(s, 10)
	a, err := Draw(s, d, 99)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	b, err := Draw(reversed, d, 99)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}

	for i := range a.SelectedIDs {
		if a.SelectedIDs[i] != b.SelectedIDs[i] {
			t.Fatalf("selection depends on record order: %s vs %s at %d", a.SelectedIDs[i], b.SelectedIDs[i], i)
		}
	}
}

func TestDrawWithoutReplacement(t *testing.T) {
	s := testStratum("pharma", 200)
	d := decisionFor(s, 200)

	result, err := Draw(s, d, 7)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}

	if len(result.SelectedIDs) != 200 {
		t.Fatalf("expected 200 selections, got %d", len(result.SelectedIDs))
	}
	seen := make(map[core.RecordID]bool)
	valid := make(map[core.RecordID]bool)
	for _, r := range s.Records {
		valid[r.ID] = true
	}
	for _, id := range result.SelectedIDs {
		if seen[id] {
			t.Errorf("record %s selected twice", id)
		}
		seen[id] = true
		if !valid[id] {
			t.Errorf("record %s is not in the source stratum", id)
		}
	}
}

func TestDrawSubsetStaysWithinStratum(t *testing.T) {
	s := testStratum("food", 40)
	d := decisionFor(s, 12)

	result, err := Draw(s, d, 42)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if len(result.SelectedIDs) != 12 {
		t.Fatalf("expected 12 selections, got %d", len(result.SelectedIDs))
	}

	valid := make(map[core.RecordID]bool)
	for _, r := range s.Records {
		valid[r.ID] = true
	}
	for _, id := range result.SelectedIDs {
		if !valid[id] {
			t.Errorf("selected id %s not in stratum", id)
		}
	}
}

func TestDrawZeroRequested(t *testing.T) {
	s := testStratum("food", 5)
	result, err := Draw(s, decisionFor(s, 0), 42)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if len(result.SelectedIDs) != 0 {
		t.Errorf("expected empty selection, got %d ids", len(result.SelectedIDs))
	}
}

func TestDrawInsufficientPopulation(t *testing.T) {
	s := testStratum("food", 5)
	_, err := Draw(s, decisionFor(s, 6), 42)
	if !core.IsInsufficientPopulationError(err) {
		t.Fatalf("expected ErrInsufficientPopulation, got %v", err)
	}
}

func TestDrawRecordsSeed(t *testing.T) {
	s := testStratum("food", 5)
	result, err := Draw(s, decisionFor(s, 3), 777)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if result.Seed != 777 {
		t.Errorf("expected recorded seed 777, got %d", result.Seed)
	}
	if result.Stratum != "food" {
		t.Errorf("expected stratum food, got %s", result.Stratum)
	}
	if result.Timestamp.IsZero() {
		t.Error("expected a timestamp on the result")
	}
}
