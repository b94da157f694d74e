package sim

import (
	"fmt"

	"github.com/HenryFBP/wayward-close-da-door/internal/domain"
	"github.com/HenryFBP/wayward-close-da-door/internal/host"
)

func (g *Game) perform(p *Player, action domain.ActionType, arg *host.ActionArgument) error {
	var err error
	switch action {
	case domain.ActionIdle:
		err = g.idle(p)
	case domain.ActionMove:
		err = g.turn(p, arg)
	case domain.ActionCloseDoor:
		err = g.toggleDoorAt(p, arg.Point, true)
	case domain.ActionOpenDoor:
		err = g.toggleDoorAt(p, arg.Point, false)
	default:
		err = ErrUnknownAction
	}
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}

	g.Executed = append(g.Executed, action)
	return nil
}

// idle - пропуск хода
func (g *Game) idle(p *Player) error {
	p.SpendTime(domain.TimeCostIdle)
	return nil
}

// turn - разворот на месте. Перемещение через очередь не поддерживаем.
func (g *Game) turn(p *Player, arg *host.ActionArgument) error {
	if arg.Point != p.Pos {
		return fmt.Errorf("move to %s from %s: %w", arg.Point, p.Pos, ErrUnknownAction)
	}
	if arg.Direction == domain.DirectionNone {
		return domain.ErrNoDirection
	}
	p.Facing = arg.Direction
	p.SpendTime(domain.TimeCostTurn)
	return nil
}

func (g *Game) toggleDoorAt(p *Player, at domain.Point, closing bool) error {
	if !adjacent(p.Pos, at) {
		return fmt.Errorf("door at %s, player at %s: %w", at, p.Pos, ErrNotAdjacent)
	}

	d, err := g.World.DoodadAt(at)
	if err != nil {
		return err
	}

	if closing != d.Type().IsOpenDoor() || !d.Type().IsDoor() {
		if closing {
			return fmt.Errorf("%s at %s: %w", d.Type(), at, ErrNothingToClose)
		}
		return fmt.Errorf("%s at %s: %w", d.Type(), at, ErrNothingToOpen)
	}

	pair, _ := domain.DoorPair(d.Type())
	d.ChangeType(pair)

	t, _ := g.World.TileAt(at.X, at.Y, at.Z)
	g.World.UpdateTile(at.X, at.Y, at.Z, t)
	g.RequestRender()

	if closing {
		p.SpendTime(domain.TimeCostCloseDoor)
	} else {
		p.SpendTime(domain.TimeCostOpenDoor)
	}
	return nil
}

// adjacent - соседняя клетка по стороне на том же слое
func adjacent(a, b domain.Point) bool {
	if a.Z != b.Z {
		return false
	}
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}
