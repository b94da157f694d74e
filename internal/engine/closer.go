package engine

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/HenryFBP/wayward-close-da-door/internal/domain"
	"github.com/HenryFBP/wayward-close-da-door/internal/host"
	"github.com/HenryFBP/wayward-close-da-door/internal/systems"
	"github.com/HenryFBP/wayward-close-da-door/pkg/logger"
)

// StatDoorsClosed - ключ счетчика закрытых дверей в хранилище
const StatDoorsClosed = "doorsClosed"

var (
	ErrNoTile   = errors.New("no tile under player")
	ErrNoDoodad = errors.New("no doodad under player")
	ErrNotADoor = errors.New("doodad under player is not a door")
)

// State - состояние доводчика
type State uint8

const (
	// StateIdle - ничего не закрываем
	StateIdle State = iota
	// StateClosing - закрытие запущено, повторно не пытаемся
	StateClosing
)

func (s State) String() string {
	if s == StateClosing {
		return "CLOSING"
	}
	return "IDLE"
}

// Deps - возможности хоста, нужные доводчику. Store можно не передавать.
type Deps struct {
	World    host.World
	Actions  host.ActionPipeline
	Renderer host.Renderer
	Store    host.KeyValueStore
}

// DoorCloser закрывает дверь за игроком, прошедшим через проем.
// Вызывается только с игрового потока хоста, поэтому без блокировок.
type DoorCloser struct {
	cfg   Config
	deps  Deps
	state State
}

// NewDoorCloser создает доводчик в состоянии Idle
func NewDoorCloser(cfg Config, deps Deps) *DoorCloser {
	return &DoorCloser{cfg: cfg, deps: deps}
}

// State возвращает текущее состояние флага already_closing
func (c *DoorCloser) State() State {
	return c.state
}

// OnPlayerJoin сбрасывает флаг при (пере)входе игрока
func (c *DoorCloser) OnPlayerJoin(p host.Player) {
	c.state = StateIdle

	who := playerID(p)
	defer c.recoverHost(who)

	logger.Verbose(c.cfg.Verbose, logrus.Fields{"player": who}, "Player joined, closer reset")
}

// playerID читает ID игрока, не пропуская панику хоста наружу
func playerID(p host.Player) (id string) {
	defer func() {
		if recover() != nil {
			id = "unknown"
		}
	}()
	return p.ID()
}

// recoverHost - граница хука: паника хоста сбрасывает флаг и только логируется.
// Внутри не вызываем методы хоста.
func (c *DoorCloser) recoverHost(who string) {
	if r := recover(); r != nil {
		c.state = StateIdle
		logger.Log.WithFields(logrus.Fields{
			"player": who,
			"panic":  r,
		}).Error("Door closer recovered from host failure")
	}
}

// OnMove - хук движения. Игрок шагает в (newX, newY) лицом к facing.
// Всегда возвращает MoveDefault: движение мы не блокируем.
func (c *DoorCloser) OnMove(p host.Player, newX, newY int, _ host.Tile, facing domain.Direction) (res host.MoveResult) {
	res = host.MoveDefault

	// Паника хоста не должна уронить его диспетчер событий
	who := playerID(p)
	defer c.recoverHost(who)

	fields := logrus.Fields{"player": who, "x": newX, "y": newY, "z": p.Z(), "facing": facing}

	tb, err := systems.TileBehind(c.deps.World, newX, newY, p.Z(), facing)
	if err != nil {
		// Нет клетки за спиной - значит и двери нет
		c.state = StateIdle
		logger.Verbose(c.cfg.Verbose, fields, fmt.Sprintf("No tile behind player: %v", err))
		return
	}
	if tb == nil {
		c.state = StateIdle
		return
	}

	door := tb.Doodad()
	switch systems.ClassifyDoor(door) {
	case domain.DoorAbsent, domain.DoorClosed:
		// Сзади не открытая дверь - закрывать нечего
		c.state = StateIdle
		return
	}

	fields["door"] = door.Type()
	if c.state == StateClosing {
		logger.Verbose(c.cfg.Verbose, fields, "Already closing a door, skipping")
		return
	}

	logger.Verbose(c.cfg.Verbose, fields, "Open door behind player, closing it")
	c.state = StateClosing

	if err := c.close(p, facing, domain.Point{X: newX, Y: newY, Z: p.Z()}, door.Point()); err != nil {
		// Флаг сбрасываем, чтобы следующий тик попробовал снова
		c.state = StateIdle
		logger.Log.WithFields(fields).WithError(err).Warn("Failed to close door behind player")
		return
	}

	c.countClosed(fields)
	return
}

func (c *DoorCloser) close(p host.Player, facing domain.Direction, dest, doorAt domain.Point) error {
	switch c.cfg.Strategy {
	case StrategyQueued:
		return c.closeQueued(p, facing, dest, doorAt)
	default:
		return c.closeDirect(p, doorAt)
	}
}

func (c *DoorCloser) countClosed(fields logrus.Fields) {
	if c.deps.Store == nil {
		return
	}

	var n int
	if _, err := c.deps.Store.Retrieve(StatDoorsClosed, &n); err != nil {
		logger.Log.WithFields(fields).WithError(err).Warn("Failed to read door counter")
		return
	}
	if err := c.deps.Store.Store(StatDoorsClosed, n+1); err != nil {
		logger.Log.WithFields(fields).WithError(err).Warn("Failed to store door counter")
	}
}

var _ host.MoveHook = (*DoorCloser)(nil)
