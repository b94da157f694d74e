// Package sim - минимальный хост в памяти: мир из клеток, доодады, игроки и очередь действий.
// Нужен, чтобы гонять доводчик без настоящего движка (CLI и тесты).
package sim

import (
	"errors"
	"fmt"

	"github.com/HenryFBP/wayward-close-da-door/internal/domain"
	"github.com/HenryFBP/wayward-close-da-door/internal/host"
)

var (
	ErrOutOfBounds = errors.New("out of bounds")
	ErrNoDoodad    = errors.New("no doodad")
	ErrOccupied    = errors.New("tile already has a doodad")
)

// Doodad - доодад симулятора. History хранит все смены типа.
type Doodad struct {
	kind    domain.DoodadType
	at      domain.Point
	History []domain.DoodadType
}

func (d *Doodad) Type() domain.DoodadType { return d.kind }

func (d *Doodad) ChangeType(t domain.DoodadType) {
	d.History = append(d.History, t)
	d.kind = t
}

func (d *Doodad) Point() domain.Point { return d.at }

// Blocks - через доодад нельзя пройти (закрытая дверь, стена, мебель)
func (d *Doodad) Blocks() bool {
	return !d.kind.IsOpenDoor()
}

type Tile struct {
	X, Y, Z int
	Terrain string
	doodad  *Doodad
}

func (t *Tile) Doodad() host.Doodad {
	if t.doodad == nil {
		return nil
	}
	return t.doodad
}

func (t *Tile) IsWall() bool {
	return t.Terrain == domain.TerrainWall
}

// Blocks - клетка непроходима
func (t *Tile) Blocks() bool {
	return t.IsWall() || (t.doodad != nil && t.doodad.Blocks())
}

// World - карта Depth x Height x Width. Map индексируется как [z][y][x].
type World struct {
	Width  int
	Height int
	Depth  int
	Map    [][][]*Tile

	// Updates - клетки, о которых сообщили через UpdateTile
	Updates []domain.Point
}

// NewWorld создает мир, целиком покрытый полом
func NewWorld(width, height, depth int) *World {
	w := &World{Width: width, Height: height, Depth: depth}
	w.Map = make([][][]*Tile, depth)
	for z := 0; z < depth; z++ {
		w.Map[z] = make([][]*Tile, height)
		for y := 0; y < height; y++ {
			row := make([]*Tile, width)
			for x := 0; x < width; x++ {
				row[x] = &Tile{X: x, Y: y, Z: z, Terrain: domain.TerrainFloor}
			}
			w.Map[z][y] = row
		}
	}
	return w
}

func (w *World) InBounds(x, y, z int) bool {
	return x >= 0 && x < w.Width && y >= 0 && y < w.Height && z >= 0 && z < w.Depth
}

// TileAt - конкретная клетка симулятора
func (w *World) TileAt(x, y, z int) (*Tile, error) {
	if !w.InBounds(x, y, z) {
		return nil, fmt.Errorf("tile [%d, %d, %d]: %w", x, y, z, ErrOutOfBounds)
	}
	return w.Map[z][y][x], nil
}

func (w *World) GetTile(x, y, z int) (host.Tile, error) {
	t, err := w.TileAt(x, y, z)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (w *World) GetTileFromPoint(p domain.Point) (host.Tile, error) {
	return w.GetTile(p.X, p.Y, p.Z)
}

func (w *World) UpdateTile(x, y, z int, _ host.Tile) {
	w.Updates = append(w.Updates, domain.Point{X: x, Y: y, Z: z})
}

// PlaceDoodad ставит доодад на свободную клетку
func (w *World) PlaceDoodad(kind domain.DoodadType, p domain.Point) (*Doodad, error) {
	t, err := w.TileAt(p.X, p.Y, p.Z)
	if err != nil {
		return nil, err
	}
	if t.doodad != nil {
		return nil, fmt.Errorf("place %s at %s: %w", kind, p, ErrOccupied)
	}
	d := &Doodad{kind: kind, at: p}
	t.doodad = d
	return d, nil
}

// DoodadAt возвращает доодад или ErrNoDoodad
func (w *World) DoodadAt(p domain.Point) (*Doodad, error) {
	t, err := w.TileAt(p.X, p.Y, p.Z)
	if err != nil {
		return nil, err
	}
	if t.doodad == nil {
		return nil, fmt.Errorf("doodad at %s: %w", p, ErrNoDoodad)
	}
	return t.doodad, nil
}

// Doors перечисляет все двери и калитки мира (для отчета)
func (w *World) Doors() []*Doodad {
	var doors []*Doodad
	for z := range w.Map {
		for y := range w.Map[z] {
			for _, t := range w.Map[z][y] {
				if t.doodad != nil && t.doodad.kind.IsDoor() {
					doors = append(doors, t.doodad)
				}
			}
		}
	}
	return doors
}

var _ host.World = (*World)(nil)
