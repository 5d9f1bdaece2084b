package hashing

import (
	"testing"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/testutil"
)

func TestZobristHashConsistency(t *testing.T) {
	board1 := checkers.NewInitialBoard()
	board2 := checkers.NewInitialBoard()

	hash1 := GenerateZobristHash(board1, checkers.Red)
	hash2 := GenerateZobristHash(board2, checkers.Red)

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	board1 := checkers.NewInitialBoard()

	// Advance one red man
	board2 := checkers.NewInitialBoard()
	testutil.AssertNoError(t, board2.Clear(checkers.Pos(2, 3)))
	testutil.AssertNoError(t, board2.Set(checkers.Pos(3, 4), checkers.NewMan(checkers.Red)))

	if GenerateZobristHash(board1, checkers.Red) == GenerateZobristHash(board2, checkers.Red) {
		t.Error("Different positions produced the same hash")
	}
}

func TestZobristHashDistinguishesRank(t *testing.T) {
	man := testutil.BoardWith(t, testutil.At(3, 4, checkers.NewMan(checkers.Red)))
	king := testutil.BoardWith(t, testutil.At(3, 4, checkers.NewKing(checkers.Red)))
	black := testutil.BoardWith(t, testutil.At(3, 4, checkers.NewMan(checkers.Black)))

	hashes := map[uint64]string{}
	for name, b := range map[string]*checkers.Board{"man": man, "king": king, "black": black} {
		h := GenerateZobristHash(b, checkers.Red)
		if other, ok := hashes[h]; ok {
			t.Errorf("%s and %s hash to %x", name, other, h)
		}
		hashes[h] = name
	}
}

func TestSideToMoveAffectsHash(t *testing.T) {
	board := checkers.NewInitialBoard()
	if GenerateZobristHash(board, checkers.Red) == GenerateZobristHash(board, checkers.Black) {
		t.Error("Same position with different side to move should have different hashes")
	}
	if GenerateZobristHash(checkers.NewBoard(), checkers.Red) != 0 {
		t.Error("Empty board with Red to move should hash to zero")
	}
}

func TestWeakHashConsistency(t *testing.T) {
	hash1 := WeakHash(checkers.NewInitialBoard())
	hash2 := WeakHash(checkers.NewInitialBoard())

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different weak hashes: %x != %x", hash1, hash2)
	}
	if WeakHash(checkers.NewBoard()) != 0 {
		t.Error("Empty board should have a zero weak hash")
	}
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	board := checkers.NewInitialBoard()

	if detector.CheckAndAdd(board, checkers.Red, 0) {
		t.Error("First game was marked as duplicate")
	}
	if !detector.CheckAndAdd(board, checkers.Red, 0) {
		t.Error("Duplicate game was not detected")
	}
	if detector.DuplicateCount() != 1 {
		t.Errorf("Expected 1 duplicate, got %d", detector.DuplicateCount())
	}
	if detector.CheckAndAdd(nil, checkers.Red, 0) {
		t.Error("nil board was marked as duplicate")
	}
}

func TestDuplicateDetectorDifferentGames(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)

	board1 := checkers.NewInitialBoard()
	board2 := checkers.NewInitialBoard()
	testutil.AssertNoError(t, board2.Clear(checkers.Pos(2, 1)))

	if detector.CheckAndAdd(board1, checkers.Red, 0) {
		t.Error("Game 1 was incorrectly marked as duplicate")
	}
	if detector.CheckAndAdd(board2, checkers.Red, 0) {
		t.Error("Game 2 was incorrectly marked as duplicate")
	}
	if detector.CheckAndAdd(board1, checkers.Black, 0) {
		t.Error("Game 3 differs only in side to move but was marked as duplicate")
	}
	if detector.DuplicateCount() != 0 {
		t.Errorf("Expected 0 duplicates, got %d", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 3 {
		t.Errorf("Expected 3 unique games, got %d", detector.UniqueCount())
	}
}

func TestDuplicateDetectorExactMatch(t *testing.T) {
	board := checkers.NewInitialBoard()

	loose := NewDuplicateDetector(false, 0)
	loose.CheckAndAdd(board, checkers.Red, 10)
	if !loose.CheckAndAdd(board, checkers.Red, 12) {
		t.Error("loose matching should ignore ply counts")
	}

	exact := NewDuplicateDetector(true, 0)
	exact.CheckAndAdd(board, checkers.Red, 10)
	if exact.CheckAndAdd(board, checkers.Red, 12) {
		t.Error("exact matching should compare ply counts")
	}
	if !exact.CheckAndAdd(board, checkers.Red, 10) {
		t.Error("exact matching missed a true duplicate")
	}
}

func TestDuplicateDetectorCapacity(t *testing.T) {
	detector := NewDuplicateDetector(false, 1)
	board1 := checkers.NewInitialBoard()
	board2 := checkers.NewBoard()

	detector.CheckAndAdd(board1, checkers.Red, 0)
	if !detector.IsFull() {
		t.Fatal("detector with capacity 1 should be full after one game")
	}
	if detector.CheckAndAdd(board2, checkers.Red, 0) {
		t.Error("new game marked as duplicate")
	}
	if detector.CheckAndAdd(board2, checkers.Red, 0) {
		t.Error("game seen while full should not have been stored")
	}
	if !detector.CheckAndAdd(board1, checkers.Red, 0) {
		t.Error("stored game no longer detected once full")
	}
	if detector.UniqueCount() != 1 {
		t.Errorf("Expected 1 unique game, got %d", detector.UniqueCount())
	}
}

func TestDuplicateDetectorReset(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	board := checkers.NewInitialBoard()

	detector.CheckAndAdd(board, checkers.Red, 0)
	detector.CheckAndAdd(board, checkers.Red, 0)

	if detector.DuplicateCount() != 1 {
		t.Errorf("Expected 1 duplicate before reset, got %d", detector.DuplicateCount())
	}

	detector.Reset()

	if detector.DuplicateCount() != 0 {
		t.Errorf("Expected 0 duplicates after reset, got %d", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 0 {
		t.Errorf("Expected 0 unique games after reset, got %d", detector.UniqueCount())
	}
}

func TestSign(t *testing.T) {
	board := checkers.NewInitialBoard()
	sig := Sign(board, checkers.Black, 7)
	want := GameSignature{
		Hash:     GenerateZobristHash(board, checkers.Black),
		Plies:    7,
		WeakHash: WeakHash(board),
	}
	testutil.AssertEqual(t, sig, want)
}
