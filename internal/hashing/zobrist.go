package hashing

import "github.com/lgbarn/checkers-go/internal/checkers"

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x9E3779B97F4A7C15

var (
	// zobristPieces is indexed by row, column and pieceIndex.
	zobristPieces [checkers.BoardSize][checkers.BoardSize][4]uint64
	zobristBlack  uint64
)

func init() {
	state := uint64(zobristSeed)
	for r := 0; r < checkers.BoardSize; r++ {
		for c := 0; c < checkers.BoardSize; c++ {
			for k := range zobristPieces[r][c] {
				zobristPieces[r][c][k] = splitmix64(&state)
			}
		}
	}
	zobristBlack = splitmix64(&state)
}

// splitmix64 advances state and returns the next pseudo-random value.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func pieceIndex(p checkers.Piece) int {
	return int(p.Side)*2 + int(p.Rank)
}

// GenerateZobristHash returns the Zobrist hash of a position: the pieces on
// board plus the side to move.
func GenerateZobristHash(board *checkers.Board, toMove checkers.Side) uint64 {
	var hash uint64
	for r := 0; r < checkers.BoardSize; r++ {
		for c := 0; c < checkers.BoardSize; c++ {
			cell := board.Cells[r][c]
			if cell.Occupied {
				hash ^= zobristPieces[r][c][pieceIndex(cell.Piece)]
			}
		}
	}
	if toMove == checkers.Black {
		hash ^= zobristBlack
	}
	return hash
}

// WeakHash is a cheap order-sensitive checksum of the occupied squares,
// used as a second opinion when Zobrist hashes collide.
func WeakHash(board *checkers.Board) uint32 {
	var h uint32
	for r := 0; r < checkers.BoardSize; r++ {
		for c := 0; c < checkers.BoardSize; c++ {
			cell := board.Cells[r][c]
			if !cell.Occupied {
				continue
			}
			h = h*31 + uint32(r*checkers.BoardSize+c+1)*uint32(pieceIndex(cell.Piece)+1)
		}
	}
	return h
}
