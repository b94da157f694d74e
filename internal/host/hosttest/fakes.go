// Package hosttest содержит фейки хоста для тестов ядра.
package hosttest

import (
	"fmt"

	"github.com/stretchr/testify/mock"

	"github.com/HenryFBP/wayward-close-da-door/internal/domain"
	"github.com/HenryFBP/wayward-close-da-door/internal/host"
)

// Doodad - фейковый доодад, запоминает все вызовы ChangeType
type Doodad struct {
	Tag     domain.DoodadType
	At      domain.Point
	Changes []domain.DoodadType
}

func NewDoodad(t domain.DoodadType, x, y, z int) *Doodad {
	return &Doodad{Tag: t, At: domain.Point{X: x, Y: y, Z: z}}
}

func (d *Doodad) Type() domain.DoodadType { return d.Tag }

func (d *Doodad) ChangeType(t domain.DoodadType) {
	d.Changes = append(d.Changes, t)
	d.Tag = t
}

func (d *Doodad) Point() domain.Point { return d.At }

// Tile - клетка с опциональным доодадом
type Tile struct {
	Occupant *Doodad
}

func (t *Tile) Doodad() host.Doodad {
	// nil-указатель нельзя отдавать как интерфейс
	if t.Occupant == nil {
		return nil
	}
	return t.Occupant
}

// TileUpdate - запись вызова UpdateTile
type TileUpdate struct {
	Point domain.Point
	Tile  host.Tile
}

// World - разреженный мир: клетки, которых нет в карте, считаются вне границ
type World struct {
	Tiles   map[domain.Point]*Tile
	Updates []TileUpdate
	// Panic заставляет GetTileFromPoint паниковать (проверка границы хука)
	Panic bool
}

func NewWorld() *World {
	return &World{Tiles: make(map[domain.Point]*Tile)}
}

// Floor добавляет пустую клетку
func (w *World) Floor(x, y, z int) *Tile {
	t := &Tile{}
	w.Tiles[domain.Point{X: x, Y: y, Z: z}] = t
	return t
}

// Place ставит доодад на клетку, создавая ее при необходимости
func (w *World) Place(d *Doodad) *Tile {
	t, ok := w.Tiles[d.At]
	if !ok {
		t = &Tile{}
		w.Tiles[d.At] = t
	}
	t.Occupant = d
	return t
}

func (w *World) GetTile(x, y, z int) (host.Tile, error) {
	return w.GetTileFromPoint(domain.Point{X: x, Y: y, Z: z})
}

func (w *World) GetTileFromPoint(p domain.Point) (host.Tile, error) {
	if w.Panic {
		panic("world is gone")
	}
	t, ok := w.Tiles[p]
	if !ok {
		return nil, fmt.Errorf("no tile at %s", p)
	}
	return t, nil
}

func (w *World) UpdateTile(x, y, z int, t host.Tile) {
	w.Updates = append(w.Updates, TileUpdate{Point: domain.Point{X: x, Y: y, Z: z}, Tile: t})
}

// Player - фейковый игрок
type Player struct {
	PlayerID string
	At       domain.Point
	Facing   domain.Direction
}

func NewPlayer(x, y, z int, facing domain.Direction) *Player {
	return &Player{PlayerID: "p1", At: domain.Point{X: x, Y: y, Z: z}, Facing: facing}
}

func (p *Player) ID() string                        { return p.PlayerID }
func (p *Player) Point() domain.Point               { return p.At }
func (p *Player) Z() int                            { return p.At.Z }
func (p *Player) FacingDirection() domain.Direction { return p.Facing }

// Renderer считает запросы на перерисовку
type Renderer struct {
	Requests int
}

func (r *Renderer) RequestRender() { r.Requests++ }

// ActionPipeline - мок очереди действий на testify/mock
type ActionPipeline struct {
	mock.Mock
}

func (m *ActionPipeline) Execute(p host.Player, action domain.ActionType, arg *host.ActionArgument) error {
	args := m.Called(p, action, arg)
	return args.Error(0)
}

// Store - хранилище в памяти без сериализации
type Store struct {
	Values map[string]any
	Err    error
}

func NewStore() *Store {
	return &Store{Values: make(map[string]any)}
}

func (s *Store) Store(key string, val any) error {
	if s.Err != nil {
		return s.Err
	}
	s.Values[key] = val
	return nil
}

func (s *Store) Retrieve(key string, out any) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	v, ok := s.Values[key]
	if !ok {
		return false, nil
	}
	// Поддерживаем только счетчики - больше ядру не нужно
	if dst, isInt := out.(*int); isInt {
		if n, isN := v.(int); isN {
			*dst = n
			return true, nil
		}
	}
	return false, fmt.Errorf("unsupported value type for key %q", key)
}

var (
	_ host.World          = (*World)(nil)
	_ host.Tile           = (*Tile)(nil)
	_ host.Doodad         = (*Doodad)(nil)
	_ host.Player         = (*Player)(nil)
	_ host.Renderer       = (*Renderer)(nil)
	_ host.ActionPipeline = (*ActionPipeline)(nil)
	_ host.KeyValueStore  = (*Store)(nil)
)
