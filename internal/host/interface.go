// Package host описывает возможности игрового движка, которыми пользуется доводчик.
// Движок реализует эти интерфейсы; ядро не держит глобальных ссылок на мир.
package host

import "github.com/HenryFBP/wayward-close-da-door/internal/domain"

// Doodad - статичный объект мира (дверь, калитка, мебель). Принадлежит хосту.
type Doodad interface {
	Type() domain.DoodadType
	// ChangeType меняет тег на месте. Перерисовку не вызывает.
	ChangeType(t domain.DoodadType)
	Point() domain.Point
}

// Tile - клетка мира. Doodad() возвращает nil, если на клетке ничего нет.
type Tile interface {
	Doodad() Doodad
}

type Player interface {
	ID() string
	Point() domain.Point
	Z() int
	FacingDirection() domain.Direction
}

// World - запросы к миру и уведомление об изменении клетки
type World interface {
	GetTile(x, y, z int) (Tile, error)
	GetTileFromPoint(p domain.Point) (Tile, error)
	UpdateTile(x, y, z int, t Tile)
}

// ActionArgument - аргумент действия для очереди хоста
type ActionArgument struct {
	Direction domain.Direction
	Point     domain.Point
}

// ActionPipeline выполняет действие от имени игрока (тратит ход)
type ActionPipeline interface {
	Execute(p Player, action domain.ActionType, arg *ActionArgument) error
}

// Renderer - подсказка хосту, что пора перерисовать кадр
type Renderer interface {
	RequestRender()
}

// KeyValueStore - опциональное хранилище мода, переживающее сессию
type KeyValueStore interface {
	Store(key string, val any) error
	// Retrieve возвращает found == false, если ключа нет
	Retrieve(key string, out any) (bool, error)
}

// MoveResult - ответ хука движения хосту
type MoveResult uint8

const (
	// MoveDefault - не вмешиваемся, хост решает сам
	MoveDefault MoveResult = iota
	// MoveBlock - хост отменяет шаг
	MoveBlock
)

// MoveHook - колбэки жизненного цикла, которые хост вызывает на своем игровом потоке
type MoveHook interface {
	OnPlayerJoin(p Player)
	OnMove(p Player, newX, newY int, tile Tile, facing domain.Direction) MoveResult
}
