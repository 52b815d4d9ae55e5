package planets

import (
	"testing"

	"github.com/agentstation/utc"
)

func TestValueAbsentAndPresent(t *testing.T) {
	var absent Value
	if absent.IsPresent() {
		t.Error("zero Value should be absent")
	}
	if _, ok := absent.Float(); ok {
		t.Error("absent Value should not report a float")
	}
	if _, ok := absent.Str(); ok {
		t.Error("absent Value should not report a string")
	}

	num := Number(1.87)
	if !num.IsPresent() {
		t.Error("Number value should be present")
	}
	if f, ok := num.Float(); !ok || f != 1.87 {
		t.Errorf("Number(1.87).Float() = (%v, %v), want (1.87, true)", f, ok)
	}

	txt := Text("G2V")
	if s, ok := txt.Str(); !ok || s != "G2V" {
		t.Errorf("Text(G2V).Str() = (%q, %v), want (G2V, true)", s, ok)
	}
	if _, ok := txt.Float(); ok {
		t.Error("text Value should not report a float")
	}
}

func TestProviderRecordSetGet(t *testing.T) {
	rec := NewProviderRecord(SourceNASA, utc.Now())
	if !rec.Empty() {
		t.Error("new record should be empty")
	}

	rec.Set(FieldMass, Number(5.2))
	rec.Set(FieldSpectralType, Text("K1V"))
	rec.Set(FieldRadius, Value{}) // absent values are dropped

	if rec.Len() != 2 {
		t.Errorf("rec.Len() = %d, want 2", rec.Len())
	}
	if v, ok := rec.Get(FieldMass); !ok || !v.IsPresent() {
		t.Error("FieldMass should be present after Set")
	}
	if _, ok := rec.Get(FieldRadius); ok {
		t.Error("Set with an absent value should not create an entry")
	}
	if rec.Empty() {
		t.Error("record with fields should not be empty")
	}
}

func TestFieldsStableOrder(t *testing.T) {
	first := Fields()
	second := Fields()

	if len(first) == 0 {
		t.Fatal("Fields() returned no fields")
	}
	if len(first) != len(second) {
		t.Fatalf("Fields() length varies between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Fields()[%d] differs between calls: %q vs %q", i, first[i], second[i])
		}
	}

	if first[0] != FieldName {
		t.Errorf("Fields()[0] = %q, want %q", first[0], FieldName)
	}

	seen := make(map[Field]bool, len(first))
	for _, f := range first {
		if seen[f] {
			t.Errorf("duplicate field %q in Fields()", f)
		}
		seen[f] = true
	}
}

func TestFieldIsText(t *testing.T) {
	text := []Field{FieldName, FieldStarName, FieldSpectralType, FieldDiscoveryMethod, FieldDiscoveryFacility}
	for _, f := range text {
		if !f.IsText() {
			t.Errorf("%q should be a text field", f)
		}
	}

	numeric := []Field{FieldMass, FieldPeriod, FieldStarTemperature, FieldDiscoveryYear}
	for _, f := range numeric {
		if f.IsText() {
			t.Errorf("%q should be numeric", f)
		}
	}
}
