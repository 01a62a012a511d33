package memory

import (
	"context"
	"errors"
	"testing"

	"frontoffice/internal/domain"
	"frontoffice/internal/storage"
)

func TestDraftPickStore_CRUD(t *testing.T) {
	ctx := context.Background()
	store := NewDraftPickStore()

	dp := &domain.DraftPickRecord{PickID: 1, TeamID: 7, OriginalTeamID: 7, Season: 2027, Round: 1}
	if err := store.Insert(ctx, dp); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := store.Insert(ctx, dp); !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("duplicate Insert err = %v, want ErrDuplicateKey", err)
	}

	dp.TeamID = 9 // traded; origin stays
	if err := store.Update(ctx, dp); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := store.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.TeamID != 9 || got.OriginalTeamID != 7 {
		t.Errorf("got %+v", got)
	}

	if _, err := store.GetByID(ctx, 99); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("missing GetByID err = %v, want ErrNotFound", err)
	}
}

func TestDraftPickStore_GetByTeamOrdering(t *testing.T) {
	ctx := context.Background()
	store := NewDraftPickStore()

	picks := []*domain.DraftPickRecord{
		{PickID: 1, TeamID: 7, OriginalTeamID: 7, Season: 2028, Round: 1},
		{PickID: 2, TeamID: 7, OriginalTeamID: 7, Season: 2027, Round: 2},
		{PickID: 3, TeamID: 7, OriginalTeamID: 7, Season: 2027, Round: 1},
		{PickID: 4, TeamID: 8, OriginalTeamID: 8, Season: 2027, Round: 1},
	}
	for _, dp := range picks {
		if err := store.Insert(ctx, dp); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	owned, err := store.GetByTeam(ctx, 7)
	if err != nil {
		t.Fatalf("GetByTeam: %v", err)
	}
	wantIDs := []int64{3, 2, 1} // season then round
	if len(owned) != len(wantIDs) {
		t.Fatalf("len = %d, want %d", len(owned), len(wantIDs))
	}
	for i, dp := range owned {
		if dp.PickID != wantIDs[i] {
			t.Errorf("position %d holds pick %d, want %d", i, dp.PickID, wantIDs[i])
		}
	}
}
