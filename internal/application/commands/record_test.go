package commands

import (
	"context"
	"errors"
	"testing"

	"versus/internal/application"
)

func TestRecordCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		winner  string
		loser   string
		wantErr error
	}{
		{"valid pair", "a.txt", "b.txt", nil},
		{"missing winner", "", "b.txt", nil},
		{"missing loser", "a.txt", "", nil},
		{"self comparison", "a.txt", "a.txt", application.ErrSelfComparison},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRecordCommand(nil, tt.winner, tt.loser).Validate()
			switch {
			case tt.name == "valid pair":
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
				}
			default:
				if err == nil {
					t.Error("Validate() should reject empty paths")
				}
			}
		})
	}
}

func TestRecordCommand_AppendsToLog(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := NewRecordCommand(store, "a.txt", "b.txt").Execute(ctx); err != nil {
		t.Fatal(err)
	}
	if err := NewRecordCommand(store, "b.txt", "a.txt").Execute(ctx); err != nil {
		t.Fatal(err)
	}

	log, err := store.ListComparisons(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(log) != 2 {
		t.Fatalf("expected 2 comparisons, got %d", len(log))
	}
	for _, c := range log {
		if c.Magnitude != 1 {
			t.Errorf("magnitude = %d, want 1", c.Magnitude)
		}
	}
	if log[0].Winner != "a.txt" || log[1].Winner != "b.txt" {
		t.Errorf("winners = %s, %s", log[0].Winner, log[1].Winner)
	}
}

func TestRecordCommand_SelfComparisonNeverWrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := NewRecordCommand(store, "a.txt", "a.txt").Execute(ctx)
	if !errors.Is(err, application.ErrSelfComparison) {
		t.Fatalf("got %v, want ErrSelfComparison", err)
	}

	log, err := store.ListComparisons(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(log) != 0 {
		t.Errorf("rejected comparison leaked into the log: %d rows", len(log))
	}
}
