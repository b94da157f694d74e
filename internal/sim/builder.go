package sim

import (
	"errors"
	"fmt"

	"github.com/HenryFBP/wayward-close-da-door/internal/domain"
)

// Rect - Вспомогательная структура для комнаты (стены по периметру, пол внутри)
type Rect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// LevelBuilder предоставляет fluent API для сборки тестовых карт.
// Ошибки копятся и возвращаются из Build.
type LevelBuilder struct {
	width  int
	height int
	walled bool
	rooms  []Rect
	floors []domain.Point
	placed []placement
	errs   []error
}

type placement struct {
	kind domain.DoodadType
	at   domain.Point
}

// NewLevel создает builder для карты width x height на одном слое
func NewLevel(width, height int) *LevelBuilder {
	return &LevelBuilder{width: width, height: height}
}

// WithRoom вырезает комнату. С первой комнатой вся карта становится камнем.
// Пересечения разрешены: так строятся смежные комнаты с общей стеной.
func (b *LevelBuilder) WithRoom(room Rect) *LevelBuilder {
	b.walled = true
	b.rooms = append(b.rooms, room)
	return b
}

// WithFloor пробивает одну клетку пола (дверной проем в общей стене)
func (b *LevelBuilder) WithFloor(x, y, z int) *LevelBuilder {
	b.floors = append(b.floors, domain.Point{X: x, Y: y, Z: z})
	return b
}

// WithDoor ставит дверь (или калитку)
func (b *LevelBuilder) WithDoor(x, y, z int, gate, open bool) *LevelBuilder {
	kind := domain.DoodadWoodenDoor
	if gate {
		kind = domain.DoodadWoodenGate
	}
	if open {
		kind, _ = domain.DoorPair(kind)
	}
	return b.WithDoodad(kind, x, y, z)
}

// WithDoodad ставит произвольный доодад. Под дверью пробивается проем в стене.
func (b *LevelBuilder) WithDoodad(kind domain.DoodadType, x, y, z int) *LevelBuilder {
	if kind == domain.DoodadUnknown {
		b.errs = append(b.errs, fmt.Errorf("doodad at [%d, %d, %d]: unknown type", x, y, z))
		return b
	}
	if kind.IsDoor() {
		b.WithFloor(x, y, z)
	}
	b.placed = append(b.placed, placement{kind: kind, at: domain.Point{X: x, Y: y, Z: z}})
	return b
}

// Build собирает мир
func (b *LevelBuilder) Build() (*World, error) {
	if b.width <= 0 || b.height <= 0 {
		return nil, fmt.Errorf("invalid level size %dx%d", b.width, b.height)
	}
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	w := NewWorld(b.width, b.height, 1)

	if b.walled {
		// Инициализируем карту стенами и вырезаем комнаты на слое 0
		for z := 0; z < w.Depth; z++ {
			for y := 0; y < w.Height; y++ {
				for x := 0; x < w.Width; x++ {
					w.Map[z][y][x].Terrain = domain.TerrainWall
				}
			}
		}
		for _, room := range b.rooms {
			if err := createRoom(w, room); err != nil {
				return nil, err
			}
		}
	}

	for _, p := range b.floors {
		t, err := w.TileAt(p.X, p.Y, p.Z)
		if err != nil {
			return nil, fmt.Errorf("floor: %w", err)
		}
		t.Terrain = domain.TerrainFloor
	}

	for _, pl := range b.placed {
		if _, err := w.PlaceDoodad(pl.kind, pl.at); err != nil {
			return nil, err
		}
	}

	return w, nil
}

func createRoom(w *World, room Rect) error {
	if room.W < 2 || room.H < 2 {
		return fmt.Errorf("room %+v is too small", room)
	}
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			t, err := w.TileAt(x, y, 0)
			if err != nil {
				return fmt.Errorf("room %+v: %w", room, err)
			}
			t.Terrain = domain.TerrainFloor
		}
	}
	return nil
}
