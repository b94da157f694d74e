package systems

import (
	"github.com/HenryFBP/wayward-close-da-door/internal/domain"
	"github.com/HenryFBP/wayward-close-da-door/internal/host"
)

// ClassifyDoor определяет, стоит ли на клетке открытая дверь.
// Смотрит только на тег типа и ничего не меняет.
func ClassifyDoor(d host.Doodad) domain.DoorState {
	if d == nil {
		return domain.DoorAbsent
	}
	if d.Type().IsOpenDoor() {
		return domain.DoorOpen
	}
	return domain.DoorClosed
}

// ToggleDoorState переключает дверь/калитку между открытым и закрытым состоянием.
// Для остальных типов ничего не делает. Мир не уведомляет - это забота вызывающего.
func ToggleDoorState(d host.Doodad) bool {
	if d == nil {
		return false
	}
	pair, ok := domain.DoorPair(d.Type())
	if !ok {
		return false
	}
	d.ChangeType(pair)
	return true
}
