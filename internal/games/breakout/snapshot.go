package breakout

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// BallState is the serializable part of one live ball.
type BallState struct {
	X, Y             float64
	Angle, Magnitude float64
}

// Snapshot contains the complete engine state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick           uint64
	State          string
	Mode           int // 0=Campaign, 1=Endless
	EndlessCycle   int
	LevelIndex     int
	Score          int
	BallsRemaining int
	InPlay         bool
	BlocksLeft     int
	PaddleX        float64
	Balls          []BallState
	Grid           string // Dump output, markers included
}

// Snapshot returns the board part of the state. Game-level fields are zero.
func (b *Board) Snapshot() Snapshot {
	balls := make([]BallState, 0, len(b.slots))
	for _, s := range b.slots {
		if !s.used {
			continue
		}
		balls = append(balls, BallState{
			X:         s.ball.Position.X,
			Y:         s.ball.Position.Y,
			Angle:     s.ball.Velocity.Angle,
			Magnitude: s.ball.Velocity.Magnitude,
		})
	}
	return Snapshot{
		LevelIndex:     b.levelIndex,
		Score:          b.score,
		BallsRemaining: b.ballsRemaining,
		InPlay:         b.inPlay,
		BlocksLeft:     b.blocksLeft,
		PaddleX:        b.paddle.Position.X,
		Balls:          balls,
		Grid:           b.Dump(),
	}
}

// Hash returns an xxhash digest of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	buf := make([]byte, 0, 128+len(snap.Balls)*32)
	buf = binary.LittleEndian.AppendUint64(buf, snap.Tick)
	for _, v := range []int{snap.Mode, snap.EndlessCycle, snap.LevelIndex, snap.Score, snap.BallsRemaining, snap.BlocksLeft, len(snap.Balls)} {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(v))) //#nosec G115 -- hash computation
	}
	if snap.InPlay {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(snap.PaddleX))
	for _, ball := range snap.Balls {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(ball.X))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(ball.Y))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(ball.Angle))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(ball.Magnitude))
	}

	d := xxhash.New()
	_, _ = d.Write(buf)
	_, _ = d.WriteString(snap.State)
	_, _ = d.WriteString(snap.Grid)
	return d.Sum64()
}
