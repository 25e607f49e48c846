package diag

import (
	"testing"

	"wrought/internal/source"
)

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynUnexpectedToken, "SYN2001"},
		{IOLoadFileError, "IO4001"},
		{ProjManifestInvalid, "PRJ5001"},
		{FutNotYetSupported, "FUT7001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("%d.ID() = %q, want %q", tt.code, got, tt.want)
		}
	}
	if got := SynNestingTooDeep.String(); got != "[SYN2003]: Nesting too deep" {
		t.Errorf("String() = %q", got)
	}
	if got := Code(2999).Title(); got != "Unknown error" {
		t.Errorf("unknown Title() = %q", got)
	}
}

func TestBagLimitAndSort(t *testing.T) {
	bag := NewBag(2)
	r := BagReporter{Bag: bag}

	ReportError(r, SynUnexpectedToken, source.Span{File: 0, Start: 9, End: 10}, "late").Emit()
	ReportWarning(r, LexBadNumber, source.Span{File: 0, Start: 1, End: 2}, "early").Emit()
	ReportError(r, LexUnknownChar, source.Span{File: 0, Start: 0, End: 1}, "dropped").Emit()

	if bag.Len() != 2 || bag.Dropped() != 1 {
		t.Fatalf("Len=%d Dropped=%d, want 2 and 1", bag.Len(), bag.Dropped())
	}
	bag.Sort()
	if bag.Items()[0].Message != "early" {
		t.Errorf("expected earliest span first, got %q", bag.Items()[0].Message)
	}
	if !bag.HasErrors() {
		t.Error("expected HasErrors")
	}
}

func TestBagUnlimited(t *testing.T) {
	bag := NewBag(0)
	for i := 0; i < 100; i++ {
		if !bag.Add(NewError(LexUnknownChar, source.Span{}, "x")) {
			t.Fatalf("unlimited bag rejected item %d", i)
		}
	}
	other := NewBag(0)
	other.Add(New(SevInfo, ObsTimings, source.Span{}, "t"))
	bag.Merge(other)
	if bag.Len() != 101 {
		t.Errorf("Len() = %d, want 101", bag.Len())
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(10)
	b := ReportError(BagReporter{Bag: bag}, LexBadNumber, source.Span{Start: 3, End: 4}, "bad").
		WithNote(source.Span{Start: 0, End: 1}, "here")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", bag.Len())
	}
	if got := bag.Items()[0]; len(got.Notes) != 1 || got.Notes[0].Msg != "here" {
		t.Errorf("notes = %+v", got.Notes)
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{Start: 1, End: 2}
	r.Report(LexUnknownChar, SevError, sp, "unknown character", nil)
	r.Report(LexUnknownChar, SevError, sp, "unknown character", nil)
	r.Report(LexUnknownChar, SevError, source.Span{Start: 2, End: 3}, "unknown character", nil)
	if bag.Len() != 2 {
		t.Errorf("Len() = %d, want 2", bag.Len())
	}
}
