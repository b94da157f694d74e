package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/HenryFBP/wayward-close-da-door/internal/domain"
	"github.com/HenryFBP/wayward-close-da-door/internal/host"
	"github.com/HenryFBP/wayward-close-da-door/internal/systems"
	"github.com/HenryFBP/wayward-close-da-door/pkg/logger"
)

// closeDirect меняет тип двери на клетке игрока напрямую.
// Хук вызывается до перемещения, поэтому игрок еще стоит в проеме.
// Дверь закрыта, как только сменился тип: ошибка Idle-хода только логируется.
func (c *DoorCloser) closeDirect(p host.Player, doorAt domain.Point) error {
	t, err := c.deps.World.GetTileFromPoint(p.Point())
	if err != nil {
		return fmt.Errorf("resolve player tile %s: %w", p.Point(), err)
	}
	if t == nil {
		return fmt.Errorf("player at %s: %w", p.Point(), ErrNoTile)
	}

	d := t.Doodad()
	if d == nil {
		return fmt.Errorf("player at %s: %w", p.Point(), ErrNoDoodad)
	}

	if !systems.ToggleDoorState(d) {
		return fmt.Errorf("player at %s: %w", p.Point(), ErrNotADoor)
	}

	at := d.Point()
	c.deps.World.UpdateTile(at.X, at.Y, at.Z, t)
	c.deps.Renderer.RequestRender()

	// Обычное закрытие двери занимает ход
	if err := c.deps.Actions.Execute(p, domain.ActionIdle, nil); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"door": d.Type(),
			"pos":  doorAt.String(),
		}).WithError(err).Warn("Door closed but idle turn was not spent")
	}
	return nil
}

// closeQueued закрывает дверь действиями игрока через очередь хоста: разворот на месте
// (в клетке назначения), затем CloseDoor по двери. После разворота дверь прямо
// перед игроком, поэтому CloseDoor направлен туда же, куда разворот.
// Очередь выполняется после шага, мир и кадр она обновляет сама.
func (c *DoorCloser) closeQueued(p host.Player, facing domain.Direction, dest, doorAt domain.Point) error {
	back := facing.Opposite()
	if back == domain.DirectionNone {
		return fmt.Errorf("facing %s: %w", facing, domain.ErrNoDirection)
	}

	turn := &host.ActionArgument{Direction: back, Point: dest}
	if err := c.deps.Actions.Execute(p, domain.ActionMove, turn); err != nil {
		return fmt.Errorf("turn around: %w", err)
	}

	closeArg := &host.ActionArgument{Direction: back, Point: doorAt}
	if err := c.deps.Actions.Execute(p, domain.ActionCloseDoor, closeArg); err != nil {
		return fmt.Errorf("close door at %s: %w", doorAt, err)
	}
	return nil
}
