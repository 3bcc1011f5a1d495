package entities

import (
	"testing"

	"gorm.io/datatypes"
)

func TestNormalizeRemarks(t *testing.T) {
	item := &MoMActionItem{}
	item.NormalizeRemarks()
	if item.Remarks == nil {
		t.Fatal("expected empty remark log, got nil")
	}
	if len(item.Remarks) != 0 {
		t.Fatalf("expected empty remark log, got %d entries", len(item.Remarks))
	}

	item.Remarks = datatypes.JSONSlice[RemarkEntry]{{Text: "a"}}
	item.NormalizeRemarks()
	if len(item.Remarks) != 1 {
		t.Fatalf("normalize must not drop entries, got %d", len(item.Remarks))
	}
}

func TestAppendRemarkCopiesSlice(t *testing.T) {
	item := &MoMActionItem{
		Remarks: datatypes.JSONSlice[RemarkEntry]{
			{Text: "first", By: "alice", RemarkDate: "2026-01-01"},
		},
	}
	before := item.Remarks

	item.AppendRemark(RemarkEntry{Text: "second", By: "bob", RemarkDate: "2026-01-02"})

	if len(item.Remarks) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(item.Remarks))
	}
	if item.Remarks[1].Text != "second" {
		t.Errorf("expected appended entry last, got %q", item.Remarks[1].Text)
	}
	if len(before) != 1 {
		t.Errorf("append must not mutate the previous slice, got %d entries", len(before))
	}
}

func TestAppendRemarksPreservesOrder(t *testing.T) {
	item := &MoMActionItem{}
	item.AppendRemarks([]RemarkEntry{
		{Text: "one", RemarkDate: "2026-01-01"},
		{Text: "two", RemarkDate: "2026-01-02"},
	})
	item.AppendRemarks([]RemarkEntry{{Text: "three", RemarkDate: "2026-01-03"}})

	want := []string{"one", "two", "three"}
	for i, entry := range item.Remarks {
		if entry.Text != want[i] {
			t.Errorf("entry %d: got %q, want %q", i, entry.Text, want[i])
		}
	}
}

func TestLatestRemark(t *testing.T) {
	t.Run("empty log", func(t *testing.T) {
		item := &MoMActionItem{}
		if _, ok := item.LatestRemark(); ok {
			t.Fatal("expected ok=false for empty log")
		}
	})

	t.Run("picks most recent date", func(t *testing.T) {
		item := &MoMActionItem{Remarks: datatypes.JSONSlice[RemarkEntry]{
			{Text: "old", RemarkDate: "2026-01-01"},
			{Text: "newest", RemarkDate: "2026-03-01"},
			{Text: "middle", RemarkDate: "2026-02-01"},
		}}
		latest, ok := item.LatestRemark()
		if !ok || latest.Text != "newest" {
			t.Fatalf("got %q ok=%v, want newest", latest.Text, ok)
		}
	})

	t.Run("first stored wins a date tie", func(t *testing.T) {
		item := &MoMActionItem{Remarks: datatypes.JSONSlice[RemarkEntry]{
			{Text: "first", RemarkDate: "2026-03-01"},
			{Text: "second", RemarkDate: "2026-03-01"},
		}}
		latest, _ := item.LatestRemark()
		if latest.Text != "first" {
			t.Fatalf("got %q, want first", latest.Text)
		}
	})

	t.Run("unparseable date falls back to last entry", func(t *testing.T) {
		item := &MoMActionItem{Remarks: datatypes.JSONSlice[RemarkEntry]{
			{Text: "bad", RemarkDate: "not-a-date"},
			{Text: "last", RemarkDate: "2026-01-01"},
		}}
		latest, ok := item.LatestRemark()
		if !ok || latest.Text != "last" {
			t.Fatalf("got %q ok=%v, want last", latest.Text, ok)
		}
	})
}

func TestRemarksByUser(t *testing.T) {
	item := &MoMActionItem{Remarks: datatypes.JSONSlice[RemarkEntry]{
		{Text: "a1", By: "alice", RemarkDate: "2026-01-01"},
		{Text: "anon", By: "", RemarkDate: "2026-01-02"},
		{Text: "a2", By: "alice", RemarkDate: "2026-01-03"},
	}}

	grouped := item.RemarksByUser()
	if len(grouped["alice"]) != 2 {
		t.Errorf("alice: got %d entries, want 2", len(grouped["alice"]))
	}
	if len(grouped["Unknown"]) != 1 {
		t.Errorf("Unknown: got %d entries, want 1", len(grouped["Unknown"]))
	}
	if grouped["alice"][0].Text != "a1" || grouped["alice"][1].Text != "a2" {
		t.Error("group must preserve storage order")
	}

	total := 0
	for _, entries := range grouped {
		total += len(entries)
	}
	if total != len(item.Remarks) {
		t.Errorf("bucket sizes sum to %d, want %d", total, len(item.Remarks))
	}

	empty := &MoMActionItem{}
	if empty.RemarksByUser() != nil {
		t.Error("expected nil map for empty log")
	}
}
