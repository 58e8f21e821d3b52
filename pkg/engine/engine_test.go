package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

func requireActive(t *testing.T, e *Engine) {
	t.Helper()
	require.Equal(t, 4, e.board.Count(mino.CellActive), "board:\n%s", e.board.Render())
	for _, c := range e.piece.Cells() {
		cell, err := e.board.Get(c.X, c.Y)
		require.NoError(t, err)
		require.True(t, cell.IsActive(), "cell %s of %s is %s", c, e.piece, cell)
	}
}

func TestNew(t *testing.T) {
	c := DefaultConfig()
	c.Seed = 1
	e, err := New(c)
	require.NoError(t, err)

	requireActive(t, e)
	assert.Equal(t, mino.Point{X: 3, Y: 0}, e.piece.Point)
	assert.Equal(t, mino.Rotation0, e.piece.Rotation)
	assert.Equal(t, StateFalling, e.State())
	assert.Len(t, e.Snapshot().Queue, mino.QueueLength)

	c.LockThreshold = c.LockDelay
	_, err = New(c)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	c.LockThreshold = 0
	_, err = New(c)
	assert.ErrorIs(t, err, ErrInvalidConfig, "a grounded piece could never lock")

	c = DefaultConfig()
	c.Randomizer = "sorted"
	_, err = New(c)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPrefill(t *testing.T) {
	c := DefaultConfig()
	c.Prefill = []Prefill{{X: 0, Y: 23, Piece: mino.PieceZ}, {X: 9, Y: 23, Piece: mino.PieceS}}
	e, err := New(c)
	require.NoError(t, err)

	assert.Equal(t, 2, e.board.Count(mino.CellLocked))
	cell, _ := e.board.Get(9, 23)
	assert.Equal(t, mino.Locked(mino.PieceS), cell)

	c.Prefill = []Prefill{{X: 10, Y: 0}}
	_, err = New(c)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDropToFloor(t *testing.T) {
	e := NewTestEngine(mino.PieceI)

	for i := 0; i < 23; i++ {
		require.True(t, e.TryMove(mino.Down), "move %d", i)
	}
	assert.False(t, e.TryMove(mino.Down))

	assert.Equal(t, 23, e.piece.Y)
	for _, c := range e.piece.Cells() {
		assert.Equal(t, 23, c.Y)
	}
	requireActive(t, e)
}

func TestMoveCollisionKeepsBoard(t *testing.T) {
	e := NewTestEngine(mino.PieceO)
	for e.TryMove(mino.Down) {
	}

	before := e.board.Rows()
	anchor := e.piece.Point
	for i := 0; i < 3; i++ {
		assert.False(t, e.TryMove(mino.Down))
	}
	assert.Equal(t, before, e.board.Rows())
	assert.Equal(t, anchor, e.piece.Point)
}

func TestMoveWalls(t *testing.T) {
	e := NewTestEngine(mino.PieceT)

	for i := 0; i < 3; i++ {
		require.True(t, e.TryMove(mino.Left))
	}
	assert.False(t, e.TryMove(mino.Left))
	assert.Equal(t, 0, e.piece.X)

	for i := 0; i < 7; i++ {
		require.True(t, e.TryMove(mino.Right))
	}
	assert.False(t, e.TryMove(mino.Right))
	assert.Equal(t, 7, e.piece.X)
	requireActive(t, e)

	require.NoError(t, e.board.Set(6, 1, mino.Locked(mino.PieceO), false))
	assert.False(t, e.TryMove(mino.Left), "locked cell beside the piece")
}

func TestRotationCycle(t *testing.T) {
	for _, pt := range mino.AllPieceTypes {
		for _, s := range []mino.Sense{mino.Clockwise, mino.CounterClockwise} {
			e := NewTestEngine(pt)
			for i := 0; i < 4; i++ {
				e.TryMove(mino.Down)
			}
			start := e.piece.Cells()

			for i := 0; i < mino.RotationStates; i++ {
				require.True(t, e.TryRotate(s), "%s %s rotation %d", pt, s, i)
				requireActive(t, e)
			}
			assert.Equal(t, mino.Rotation0, e.piece.Rotation)
			assert.Equal(t, start, e.piece.Cells(), "%s %s", pt, s)
		}
	}
}

func TestRotateAgainstWall(t *testing.T) {
	e := NewTestEngine(mino.PieceI)

	require.True(t, e.TryRotate(mino.Clockwise))
	for i := 0; i < 4; i++ {
		require.True(t, e.TryMove(mino.Right))
	}
	assert.False(t, e.TryMove(mino.Right))
	assert.Equal(t, mino.Point{X: 7, Y: 0}, e.piece.Point)

	require.True(t, e.TryRotate(mino.Clockwise))
	assert.Equal(t, mino.Rotation2, e.piece.Rotation)
	assert.Equal(t, mino.Point{X: 6, Y: 0}, e.piece.Point)
	requireActive(t, e)
}

func TestRotationAbandoned(t *testing.T) {
	e := NewTestEngine(mino.PieceI)
	require.NoError(t, e.board.Set(5, 1, mino.Locked(mino.PieceO), false))

	assert.False(t, e.TryRotate(mino.Clockwise))
	assert.Equal(t, mino.Point{X: 3, Y: 0}, e.piece.Point)
	assert.Equal(t, mino.Rotation0, e.piece.Rotation)
	requireActive(t, e)
}

func TestHardDropClearsLines(t *testing.T) {
	e := NewTestEngine(mino.PieceI, mino.PieceO)
	e.AddTestBlocks()

	require.True(t, e.TryRotate(mino.Clockwise))
	for i := 0; i < 4; i++ {
		require.True(t, e.TryMove(mino.Right))
	}

	r := e.Advance(event.NewIntent(event.ActionHardDrop), 1)
	assert.Equal(t, 1, r.Locked)
	assert.Equal(t, 2, r.Lines)
	assert.Equal(t, []int{22, 23}, r.Cleared)
	assert.False(t, r.TopOut)

	assert.Equal(t, 2, e.Stats().Lines)
	assert.Equal(t, 1, e.Stats().Pieces)
	assert.Equal(t, 2, e.board.Count(mino.CellLocked))
	for y := 22; y <= 23; y++ {
		cell, _ := e.board.Get(9, y)
		assert.Equal(t, mino.Locked(mino.PieceI), cell)
	}

	assert.Equal(t, mino.PieceO, e.piece.Type)
	requireActive(t, e)
}

func TestSwapHold(t *testing.T) {
	e := NewTestEngine(mino.AllPieceTypes...)
	require.Equal(t, mino.PieceI, e.piece.Type)

	require.True(t, e.SwapHold())
	assert.Equal(t, mino.PieceO, e.piece.Type)
	s := e.Snapshot()
	assert.True(t, s.HasHold)
	assert.Equal(t, mino.PieceI, s.Hold)
	assert.Equal(t, []mino.PieceType{mino.PieceT, mino.PieceL, mino.PieceJ, mino.PieceS, mino.PieceZ}, s.Queue)
	requireActive(t, e)

	assert.False(t, e.SwapHold())
	after := e.Snapshot()
	assert.Equal(t, s.Queue, after.Queue)
	assert.Equal(t, s.Hold, after.Hold)
	assert.Equal(t, mino.PieceO, e.piece.Type)

	e.HardDrop()
	require.Equal(t, mino.PieceT, e.piece.Type)
	require.True(t, e.TryRotate(mino.Clockwise))
	require.True(t, e.TryMove(mino.Down))

	require.True(t, e.SwapHold())
	assert.Equal(t, mino.PieceI, e.piece.Type)
	assert.Equal(t, mino.Point{X: 3, Y: 0}, e.piece.Point)
	assert.Equal(t, mino.Rotation0, e.piece.Rotation)
	assert.Equal(t, mino.PieceT, e.Snapshot().Hold)
	assert.Equal(t, []mino.PieceType{mino.PieceL, mino.PieceJ, mino.PieceS, mino.PieceZ, mino.PieceI}, e.Snapshot().Queue)
	requireActive(t, e)
}

func TestLockDelay(t *testing.T) {
	e := NewTestEngine(mino.PieceO, mino.PieceT)
	for e.TryMove(mino.Down) {
	}
	require.Equal(t, 22, e.piece.Y)

	for i := 0; i < 11; i++ {
		r := e.Advance(0, 1)
		require.Zero(t, r.Locked, "locked early at tick %d", i)
		require.Equal(t, StateGrounded, e.State())
	}

	r := e.Advance(0, 1)
	assert.Equal(t, 1, r.Locked)
	assert.Equal(t, mino.PieceT, e.piece.Type)
	assert.Equal(t, StateFalling, e.State())
	assert.Equal(t, 4, e.board.Count(mino.CellLocked))
}

func TestLockThresholdOne(t *testing.T) {
	c := DefaultConfig()
	c.Seed = 1
	c.LockThreshold = 1
	e, err := New(c)
	require.NoError(t, err)

	for e.TryMove(mino.Down) {
	}

	for i := 0; i < 100 && e.Stats().Pieces == 0; i++ {
		e.Advance(0, 1)
	}
	assert.Equal(t, 1, e.Stats().Pieces)
	assert.Equal(t, StateFalling, e.State())
}

func TestGravityNeverLocks(t *testing.T) {
	e := NewTestEngine(mino.PieceO)

	r := e.Gravity()
	assert.True(t, r.Moved)
	assert.Equal(t, 1, e.piece.Y)

	for i := 0; i < 40; i++ {
		r = e.Gravity()
		assert.Zero(t, r.Locked)
	}
	assert.Equal(t, 22, e.piece.Y)
	assert.False(t, r.Moved)
	assert.Equal(t, 0, e.board.Count(mino.CellLocked))
}

func TestLockResetCap(t *testing.T) {
	e := NewTestEngine(mino.PieceO)
	for e.TryMove(mino.Down) {
	}
	e.Advance(0, 1)
	require.Equal(t, StateGrounded, e.State())

	dirs := []mino.Direction{mino.Left, mino.Right}
	for i := 0; i < DefaultMaxLockResets; i++ {
		e.timers.LockDelay = 7
		require.True(t, e.playerMove(dirs[i%2]))
		assert.Equal(t, DefaultLockDelay, e.timers.LockDelay, "reset %d", i)
	}

	e.timers.LockDelay = 7
	require.True(t, e.playerMove(mino.Left))
	assert.Equal(t, 7, e.timers.LockDelay)
}

func TestSlideOffLedge(t *testing.T) {
	e := NewTestEngine(mino.PieceO)
	require.NoError(t, e.board.Set(4, 23, mino.Locked(mino.PieceI), false))
	require.NoError(t, e.board.Set(5, 23, mino.Locked(mino.PieceI), false))
	for e.TryMove(mino.Down) {
	}
	require.Equal(t, 21, e.piece.Y)

	e.Advance(0, 1)
	require.Equal(t, StateGrounded, e.State())

	require.True(t, e.playerMove(mino.Right))
	require.True(t, e.playerMove(mino.Right))
	e.Advance(0, 1)
	assert.Equal(t, StateFalling, e.State())
	assert.NotZero(t, e.Timers().LockDelay)

	assert.True(t, e.TryMove(mino.Down))
}

func TestLockInBufferTopsOut(t *testing.T) {
	e := NewTestEngine(mino.PieceO)
	for y := 4; y < e.board.TotalHeight(); y++ {
		require.NoError(t, e.board.Set(4, y, mino.Locked(mino.PieceI), false))
		require.NoError(t, e.board.Set(5, y, mino.Locked(mino.PieceI), false))
	}

	require.True(t, e.SwapHold())
	require.True(t, e.Snapshot().HasHold)

	r := e.Advance(event.NewIntent(event.ActionHardDrop), 1)
	assert.True(t, r.TopOut)
	assert.Equal(t, 1, e.Stats().TopOuts)
	assert.Equal(t, 0, e.board.Count(mino.CellLocked))
	assert.False(t, e.Snapshot().HasHold)
	requireActive(t, e)
}

func TestSpawnBlockedTopsOut(t *testing.T) {
	e := NewTestEngine(mino.PieceI, mino.PieceO)
	for e.TryMove(mino.Down) {
	}
	require.NoError(t, e.board.Set(5, 1, mino.Locked(mino.PieceZ), false))

	e.lock()
	r := e.flush()
	assert.True(t, r.TopOut)
	assert.Equal(t, 1, r.Locked)
	assert.Equal(t, 1, e.Stats().TopOuts)
	assert.Equal(t, mino.PieceO, e.piece.Type)
	assert.Equal(t, 0, e.board.Count(mino.CellLocked))
	requireActive(t, e)
}

func TestAdvanceGating(t *testing.T) {
	e := NewTestEngine(mino.PieceI)

	e.Advance(event.NewIntent(event.ActionMoveLeft), 10)
	assert.Equal(t, 1, e.piece.X)

	e = NewTestEngine(mino.PieceI)
	e.Advance(event.NewIntent(event.ActionMoveLeft), 1000)
	assert.Equal(t, 1, e.piece.X, "catch up ticks are capped")
	assert.Equal(t, uint64(MaxCatchUpTicks), e.Snapshot().Ticks)

	cw := event.NewIntent(event.ActionRotateCW)
	e = NewTestEngine(mino.PieceT)
	e.Advance(cw, DefaultRotateRepeat)
	assert.Equal(t, mino.RotationR, e.piece.Rotation)
	assert.Equal(t, DefaultRotateRepeat-(MaxCatchUpTicks-1), e.Timers().RotateRepeat,
		"one call runs at most MaxCatchUpTicks of the repeat window")

	for i := 1; i < DefaultRotateRepeat-(MaxCatchUpTicks-1); i++ {
		e.Advance(cw, 1)
		assert.Equal(t, mino.RotationR, e.piece.Rotation, "tick %d", i)
	}
	e.Advance(cw, 1)
	assert.Equal(t, mino.Rotation2, e.piece.Rotation)
	assert.Equal(t, DefaultRotateRepeat, e.Timers().RotateRepeat)

	assert.Equal(t, Result{}, e.Advance(0, 0))
}

func TestSnapshot(t *testing.T) {
	e := NewTestEngine(mino.PieceI)

	s := e.Snapshot()
	require.NotNil(t, s.Active)
	assert.Equal(t, mino.PieceI, s.Active.Type)
	assert.Equal(t, [4]mino.Point{{X: 3, Y: 23}, {X: 4, Y: 23}, {X: 5, Y: 23}, {X: 6, Y: 23}}, s.Active.Ghost)
	assert.Equal(t, 24, len(s.Cells))

	s.Cells[0][3] = mino.Locked(mino.PieceZ)
	cell, _ := e.board.Get(3, 0)
	assert.True(t, cell.IsActive(), "snapshot shares board memory")
}

func TestActiveCellsUnderRandomPlay(t *testing.T) {
	c := DefaultConfig()
	c.Seed = 42
	c.Randomizer = RandomizerBag
	e, err := New(c)
	require.NoError(t, err)
	e.SetLogger(nil)

	intents := []event.Intent{
		event.NewIntent(event.ActionMoveLeft),
		event.NewIntent(event.ActionRotateCW, event.ActionMoveRight),
		event.NewIntent(event.ActionSoftDrop),
		event.NewIntent(event.ActionRotateCCW),
		event.NewIntent(event.ActionHold),
		event.NewIntent(event.ActionMoveRight),
		event.NewIntent(event.ActionHardDrop),
		0,
	}

	for i := 0; i < 5000; i++ {
		e.Advance(intents[(i/7)%len(intents)], 1+i%3)
		if i%5 == 0 {
			e.Gravity()
		}
		requireActive(t, e)
	}
	assert.NotZero(t, e.Stats().Pieces)
}

func BenchmarkAdvance(b *testing.B) {
	e := NewTestEngine()
	intent := event.NewIntent(event.ActionRotateCW, event.ActionMoveLeft)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Advance(intent, 1)
		if i%20 == 0 {
			e.Gravity()
		}
	}
}
