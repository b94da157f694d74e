package domain

import (
	"errors"
	"strings"
)

// ErrNoDirection - у направления нет вектора смещения (None или неизвестное значение)
var ErrNoDirection = errors.New("direction has no offset")

// Direction - направление, куда смотрит игрок. Приходит от хоста при каждом шаге.
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionNorth
	DirectionEast
	DirectionSouth
	DirectionWest
)

// Маппинг для конвертации строки (YAML, флаги) -> Domain
var directionStringToDir = map[string]Direction{
	"NONE":  DirectionNone,
	"NORTH": DirectionNorth,
	"EAST":  DirectionEast,
	"SOUTH": DirectionSouth,
	"WEST":  DirectionWest,
}

// Маппинг для логов Domain -> String
var directionDirToString = map[Direction]string{
	DirectionNone:  "NONE",
	DirectionNorth: "NORTH",
	DirectionEast:  "EAST",
	DirectionSouth: "SOUTH",
	DirectionWest:  "WEST",
}

// ParseDirection конвертирует строку в Direction. Неизвестное значение -> DirectionNone.
func ParseDirection(s string) Direction {
	if val, ok := directionStringToDir[strings.ToUpper(s)]; ok {
		return val
	}
	return DirectionNone
}

// String реализует интерфейс Stringer
func (d Direction) String() string {
	if val, ok := directionDirToString[d]; ok {
		return val
	}
	return "UNKNOWN"
}

// Vector2 - смещение на одну клетку, компоненты из {-1, 0, 1}
type Vector2 struct {
	DX int `json:"dx" yaml:"dx"`
	DY int `json:"dy" yaml:"dy"`
}

// Вектор в "математических" координатах: вправо x++, вверх y++.
var directionVectors = map[Direction]Vector2{
	DirectionNorth: {DX: 0, DY: 1},
	DirectionEast:  {DX: 1, DY: 0},
	DirectionSouth: {DX: 0, DY: -1},
	DirectionWest:  {DX: -1, DY: 0},
}

// VectorOf возвращает смещение для направления.
// Для None и неизвестных значений ok == false: это ошибка, а не (0,0).
func VectorOf(d Direction) (Vector2, bool) {
	v, ok := directionVectors[d]
	return v, ok
}

// Opposite возвращает противоположное направление. None (и мусор) -> None.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionNorth:
		return DirectionSouth
	case DirectionEast:
		return DirectionWest
	case DirectionSouth:
		return DirectionNorth
	case DirectionWest:
		return DirectionEast
	}
	return DirectionNone
}

// Множители осей хоста. На экране y растет вниз, поэтому шаг на север УМЕНЬШАЕТ y.
const (
	axisMultX = 1
	axisMultY = -1
)

// PositionBehind возвращает клетку за спиной: смещение направления, взятое с обратным знаком,
// с учетом перевернутой оси Y хоста. {10, 10, North} -> {10, 11}.
func PositionBehind(x, y int, d Direction) (Position, bool) {
	v, ok := VectorOf(d)
	if !ok {
		return Position{}, false
	}
	return Position{
		X: x + (-axisMultX * v.DX),
		Y: y + (-axisMultY * v.DY),
	}, true
}

// ScreenVector переводит направление в экранное смещение хоста (север = y-1).
func ScreenVector(d Direction) (Vector2, bool) {
	v, ok := VectorOf(d)
	if !ok {
		return Vector2{}, false
	}
	return Vector2{DX: axisMultX * v.DX, DY: axisMultY * v.DY}, true
}
