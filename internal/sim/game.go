package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/HenryFBP/wayward-close-da-door/internal/domain"
	"github.com/HenryFBP/wayward-close-da-door/internal/host"
	"github.com/HenryFBP/wayward-close-da-door/pkg/logger"
)

var (
	ErrBlocked        = errors.New("tile is blocked")
	ErrUnknownPlayer  = errors.New("player has not joined")
	ErrUnknownAction  = errors.New("unsupported action")
	ErrMissingArg     = errors.New("action argument required")
	ErrNotAdjacent    = errors.New("target is not adjacent")
	ErrNothingToClose = errors.New("no open door at target")
	ErrNothingToOpen  = errors.New("no closed door at target")
)

// MoveOutcome - что случилось с шагом игрока
type MoveOutcome uint8

const (
	MoveDone MoveOutcome = iota
	// MoveBumped - уперлись в стену, закрытую дверь или край карты (игрок только повернулся)
	MoveBumped
	// MoveVetoed - один из хуков вернул MoveBlock
	MoveVetoed
)

func (o MoveOutcome) String() string {
	switch o {
	case MoveDone:
		return "DONE"
	case MoveBumped:
		return "BUMPED"
	case MoveVetoed:
		return "VETOED"
	}
	return "UNKNOWN"
}

type queuedAction struct {
	player *Player
	action domain.ActionType
	arg    *host.ActionArgument
}

// Game - хост: мир, игроки, хуки, очередь действий и флаг перерисовки.
// Однопоточный: все вызовы идут с одного "игрового потока".
type Game struct {
	World   *World
	Players map[string]*Player
	Tick    int

	// Renders - сколько раз просили перерисовать кадр
	Renders int
	// Executed - журнал выполненных действий
	Executed []domain.ActionType

	hooks  []host.MoveHook
	queue  []queuedAction
	moving bool
}

func NewGame(w *World) *Game {
	return &Game{
		World:   w,
		Players: make(map[string]*Player),
	}
}

// AddHook подключает мод к событиям хоста
func (g *Game) AddHook(h host.MoveHook) {
	g.hooks = append(g.hooks, h)
}

// Join добавляет игрока в мир и сообщает хукам
func (g *Game) Join(p *Player) error {
	t, err := g.World.TileAt(p.Pos.X, p.Pos.Y, p.Pos.Z)
	if err != nil {
		return fmt.Errorf("join %s: %w", p.Name, err)
	}
	if t.IsWall() {
		return fmt.Errorf("join %s at %s: %w", p.Name, p.Pos, ErrBlocked)
	}

	g.Players[p.ID()] = p
	for _, h := range g.hooks {
		h.OnPlayerJoin(p)
	}

	logger.Log.WithFields(logrus.Fields{"player": p.Name, "pos": p.Pos.String()}).Info("Player joined")
	return nil
}

// Move - шаг игрока в направлении dir. Как и настоящий хост, сначала разворачивает игрока,
// затем зовет хуки (игрок еще на старой клетке), затем перемещает и выполняет очередь.
func (g *Game) Move(p *Player, dir domain.Direction) (MoveOutcome, error) {
	if _, ok := g.Players[p.ID()]; !ok {
		return MoveBumped, fmt.Errorf("move %s: %w", p.Name, ErrUnknownPlayer)
	}

	step, ok := domain.ScreenVector(dir)
	if !ok {
		return MoveBumped, fmt.Errorf("move %s: %w", p.Name, domain.ErrNoDirection)
	}

	p.Facing = dir
	g.Tick++

	target := p.Pos.Shift(step.DX, step.DY)
	tile, err := g.World.TileAt(target.X, target.Y, target.Z)
	if err != nil || tile.Blocks() {
		p.SpendTime(domain.TimeCostTurn)
		return MoveBumped, nil
	}

	g.moving = true
	outcome := MoveDone
	for _, h := range g.hooks {
		if h.OnMove(p, target.X, target.Y, tile, dir) == host.MoveBlock {
			outcome = MoveVetoed
		}
	}
	g.moving = false

	if outcome == MoveDone {
		p.Pos = target
		p.SpendTime(domain.TimeCostMove)
	}

	g.drain()
	return outcome, nil
}

// Execute реализует очередь действий хоста. Внутри хука движения действие
// откладывается до конца шага, иначе выполняется сразу.
func (g *Game) Execute(hp host.Player, action domain.ActionType, arg *host.ActionArgument) error {
	p, ok := g.Players[hp.ID()]
	if !ok {
		return fmt.Errorf("execute %s: %w", action, ErrUnknownPlayer)
	}

	switch action {
	case domain.ActionIdle:
	case domain.ActionMove, domain.ActionCloseDoor, domain.ActionOpenDoor:
		if arg == nil {
			return fmt.Errorf("execute %s: %w", action, ErrMissingArg)
		}
	default:
		return fmt.Errorf("execute %s: %w", action, ErrUnknownAction)
	}

	if g.moving {
		g.queue = append(g.queue, queuedAction{player: p, action: action, arg: arg})
		return nil
	}
	return g.perform(p, action, arg)
}

func (g *Game) drain() {
	for len(g.queue) > 0 {
		qa := g.queue[0]
		g.queue = g.queue[1:]
		if err := g.perform(qa.player, qa.action, qa.arg); err != nil {
			logger.Log.WithFields(logrus.Fields{
				"player": qa.player.Name,
				"action": qa.action,
			}).WithError(err).Warn("Queued action failed")
		}
	}
}

// RequestRender - подсказка хосту перерисовать кадр
func (g *Game) RequestRender() {
	g.Renders++
}

var (
	_ host.ActionPipeline = (*Game)(nil)
	_ host.Renderer       = (*Game)(nil)
)
