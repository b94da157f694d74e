package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HenryFBP/wayward-close-da-door/internal/domain"
	"github.com/HenryFBP/wayward-close-da-door/internal/host"
)

type moveCall struct {
	from   domain.Point
	x, y   int
	facing domain.Direction
}

// recordingHook запоминает вызовы и может запретить шаг или поставить действие в очередь
type recordingHook struct {
	joins  int
	moves  []moveCall
	result host.MoveResult
	onMove func(p host.Player)
}

func (h *recordingHook) OnPlayerJoin(host.Player) { h.joins++ }

func (h *recordingHook) OnMove(p host.Player, x, y int, _ host.Tile, facing domain.Direction) host.MoveResult {
	h.moves = append(h.moves, moveCall{from: p.Point(), x: x, y: y, facing: facing})
	if h.onMove != nil {
		h.onMove(p)
	}
	return h.result
}

// Коридор 1x5 (x=0..4), стена в (4,0)
func newCorridor(t *testing.T) (*Game, *Player, *recordingHook) {
	t.Helper()
	w, err := NewLevel(5, 1).Build()
	require.NoError(t, err)
	w.Map[0][0][4].Terrain = domain.TerrainWall

	g := NewGame(w)
	hook := &recordingHook{}
	g.AddHook(hook)

	p := NewPlayer("tester", domain.Point{X: 1}, domain.DirectionEast)
	require.NoError(t, g.Join(p))
	return g, p, hook
}

func TestGame_MoveCallsHookBeforeMoving(t *testing.T) {
	g, p, hook := newCorridor(t)
	assert.Equal(t, 1, hook.joins)

	outcome, err := g.Move(p, domain.DirectionEast)
	require.NoError(t, err)

	assert.Equal(t, MoveDone, outcome)
	assert.Equal(t, domain.Point{X: 2}, p.Pos)
	require.Len(t, hook.moves, 1)
	assert.Equal(t, moveCall{from: domain.Point{X: 1}, x: 2, y: 0, facing: domain.DirectionEast}, hook.moves[0])
	assert.Equal(t, domain.TimeCostMove, p.NextActionTick)
}

func TestGame_MoveNorthDecreasesY(t *testing.T) {
	w := NewWorld(1, 3, 1)
	g := NewGame(w)
	p := NewPlayer("tester", domain.Point{Y: 1}, domain.DirectionSouth)
	require.NoError(t, g.Join(p))

	_, err := g.Move(p, domain.DirectionNorth)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Pos.Y)
	assert.Equal(t, domain.DirectionNorth, p.Facing)
}

func TestGame_BumpIntoWall(t *testing.T) {
	g, p, hook := newCorridor(t)
	p.Pos = domain.Point{X: 3}

	outcome, err := g.Move(p, domain.DirectionEast)
	require.NoError(t, err)
	assert.Equal(t, MoveBumped, outcome)
	assert.Equal(t, domain.Point{X: 3}, p.Pos)
	assert.Empty(t, hook.moves, "hooks fire only for real steps")

	// Край карты
	p.Pos = domain.Point{X: 0}
	outcome, _ = g.Move(p, domain.DirectionWest)
	assert.Equal(t, MoveBumped, outcome)
	assert.Equal(t, domain.DirectionWest, p.Facing)
}

func TestGame_HookVeto(t *testing.T) {
	g, p, hook := newCorridor(t)
	hook.result = host.MoveBlock

	outcome, err := g.Move(p, domain.DirectionEast)
	require.NoError(t, err)
	assert.Equal(t, MoveVetoed, outcome)
	assert.Equal(t, domain.Point{X: 1}, p.Pos)
}

func TestGame_ActionsQueuedDuringMove(t *testing.T) {
	g, p, hook := newCorridor(t)
	hook.onMove = func(hp host.Player) {
		require.NoError(t, g.Execute(hp, domain.ActionIdle, nil))
		// Пока идет шаг, действие не выполняется
		assert.Empty(t, g.Executed)
	}

	_, err := g.Move(p, domain.DirectionEast)
	require.NoError(t, err)

	assert.Equal(t, []domain.ActionType{domain.ActionIdle}, g.Executed)
	assert.Equal(t, domain.TimeCostMove+domain.TimeCostIdle, p.NextActionTick)
}

func TestGame_OpenAndCloseDoorActions(t *testing.T) {
	w, err := NewLevel(3, 1).WithDoor(2, 0, 0, false, false).Build()
	require.NoError(t, err)
	g := NewGame(w)
	p := NewPlayer("tester", domain.Point{X: 1}, domain.DirectionEast)
	require.NoError(t, g.Join(p))

	door := domain.Point{X: 2}
	arg := &host.ActionArgument{Direction: domain.DirectionEast, Point: door}

	assert.ErrorIs(t, g.Execute(p, domain.ActionCloseDoor, arg), ErrNothingToClose)
	require.NoError(t, g.Execute(p, domain.ActionOpenDoor, arg))
	assert.ErrorIs(t, g.Execute(p, domain.ActionOpenDoor, arg), ErrNothingToOpen)
	require.NoError(t, g.Execute(p, domain.ActionCloseDoor, arg))

	d, _ := w.DoodadAt(door)
	assert.Equal(t, []domain.DoodadType{domain.DoodadWoodenDoorOpen, domain.DoodadWoodenDoor}, d.History)
	assert.Len(t, w.Updates, 2)
	assert.Equal(t, 2, g.Renders)

	far := &host.ActionArgument{Point: domain.Point{X: 0}}
	p.Pos = domain.Point{X: 2}
	assert.ErrorIs(t, g.Execute(p, domain.ActionCloseDoor, &host.ActionArgument{Point: domain.Point{X: 0, Z: 1}}), ErrNotAdjacent)
	assert.ErrorIs(t, g.Execute(p, domain.ActionOpenDoor, far), ErrNotAdjacent)
}

func TestGame_ExecuteValidation(t *testing.T) {
	g, p, _ := newCorridor(t)

	assert.ErrorIs(t, g.Execute(p, domain.ActionMove, nil), ErrMissingArg)
	assert.ErrorIs(t, g.Execute(p, domain.ActionUnknown, nil), ErrUnknownAction)

	stranger := NewPlayer("stranger", domain.Point{}, domain.DirectionNorth)
	assert.ErrorIs(t, g.Execute(stranger, domain.ActionIdle, nil), ErrUnknownPlayer)

	_, err := g.Move(stranger, domain.DirectionNorth)
	assert.ErrorIs(t, err, ErrUnknownPlayer)

	// Разворот на месте работает, перемещение через очередь - нет
	require.NoError(t, g.Execute(p, domain.ActionMove, &host.ActionArgument{Direction: domain.DirectionWest, Point: p.Pos}))
	assert.Equal(t, domain.DirectionWest, p.Facing)
	assert.Error(t, g.Execute(p, domain.ActionMove, &host.ActionArgument{Direction: domain.DirectionWest, Point: domain.Point{X: 0}}))
}

func TestGame_JoinIntoWall(t *testing.T) {
	w := NewWorld(2, 1, 1)
	w.Map[0][0][0].Terrain = domain.TerrainWall
	g := NewGame(w)

	err := g.Join(NewPlayer("tester", domain.Point{}, domain.DirectionNorth))
	assert.ErrorIs(t, err, ErrBlocked)

	err = g.Join(NewPlayer("tester", domain.Point{X: 9}, domain.DirectionNorth))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
