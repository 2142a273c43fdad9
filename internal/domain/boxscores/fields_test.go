package boxscores

import "testing"

func TestFieldKeysAreUniqueAndResolvable(t *testing.T) {
	seen := map[string]bool{}
	for f := Field(0); f < fieldCount; f++ {
		key := f.Key()
		if key == "" {
			t.Fatalf("field %d has no key", f)
		}
		if seen[key] {
			t.Fatalf("duplicate key %s", key)
		}
		seen[key] = true

		got, ok := FieldByKey(" " + key + " ")
		if !ok || got != f {
			t.Fatalf("FieldByKey(%q) = %v, %v", key, got, ok)
		}
	}
}

func TestFieldByKeyIgnoresCase(t *testing.T) {
	f, ok := FieldByKey("FIELDGOALSPERCENTAGE")
	if !ok || f != FieldGoalsPercentage {
		t.Fatalf("expected case-insensitive lookup, got %v %v", f, ok)
	}
	if _, ok := FieldByKey("minutes"); ok {
		t.Fatalf("expected unknown column to be rejected")
	}
}

func TestPercentageFields(t *testing.T) {
	count := 0
	for f := Field(0); f < fieldCount; f++ {
		if f.IsPercentage() {
			count++
		}
	}
	if count != 3 {
		t.Fatalf("expected 3 percentage fields, got %d", count)
	}
}

func TestFieldListsShape(t *testing.T) {
	if len(TeamFields) != 20 {
		t.Fatalf("expected 20 team fields, got %d", len(TeamFields))
	}
	if len(PlayerFields) != 19 || PlayerFields[0] != Points {
		t.Fatalf("expected 19 player fields starting with points, got %v", PlayerFields)
	}
}

func TestFieldSetSelectKeepsOrder(t *testing.T) {
	set := NewFieldSet(Steals, Assists, TeamScore)
	got := set.Select(TeamFields)
	want := []Field{Assists, Steals, TeamScore}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if set.Has(Blocks) || set.With(fieldCount).Has(fieldCount) {
		t.Fatalf("unexpected membership")
	}
}

func TestLineSetGet(t *testing.T) {
	l := LineOf(map[Field]float64{Assists: 12, PlusMinusPoints: 0})

	if v, ok := l.Get(Assists); !ok || v != 12 {
		t.Fatalf("expected assists 12, got %v %v", v, ok)
	}
	if v, ok := l.Get(PlusMinusPoints); !ok || v != 0 {
		t.Fatalf("expected recorded zero, got %v %v", v, ok)
	}
	if _, ok := l.Get(Blocks); ok {
		t.Fatalf("expected blocks to be missing")
	}
}

func TestPlayerKeyAndSamePlayer(t *testing.T) {
	key := PlayerKey(" LeBron ", "James  ")
	if key != "LeBron James" {
		t.Fatalf("unexpected key %q", key)
	}
	if !SamePlayer(key, "  lebron JAMES ") {
		t.Fatalf("expected case-insensitive match")
	}
	if SamePlayer(key, "LeBron Jame") {
		t.Fatalf("expected mismatch")
	}
}
