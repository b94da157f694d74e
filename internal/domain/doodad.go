package domain

import "strings"

// DoodadType - тег типа доодада (статичный объект мира: дверь, калитка, сундук...)
type DoodadType uint16

const (
	DoodadUnknown DoodadType = iota
	DoodadWoodenDoor
	DoodadWoodenDoorOpen
	DoodadWoodenGate
	DoodadWoodenGateOpen
	DoodadWoodenChest
	DoodadCampfire
	DoodadStoneWall
)

var doodadStringToType = map[string]DoodadType{
	"WOODEN_DOOR":      DoodadWoodenDoor,
	"WOODEN_DOOR_OPEN": DoodadWoodenDoorOpen,
	"WOODEN_GATE":      DoodadWoodenGate,
	"WOODEN_GATE_OPEN": DoodadWoodenGateOpen,
	"WOODEN_CHEST":     DoodadWoodenChest,
	"CAMPFIRE":         DoodadCampfire,
	"STONE_WALL":       DoodadStoneWall,
}

var doodadTypeToString = map[DoodadType]string{
	DoodadWoodenDoor:     "WOODEN_DOOR",
	DoodadWoodenDoorOpen: "WOODEN_DOOR_OPEN",
	DoodadWoodenGate:     "WOODEN_GATE",
	DoodadWoodenGateOpen: "WOODEN_GATE_OPEN",
	DoodadWoodenChest:    "WOODEN_CHEST",
	DoodadCampfire:       "CAMPFIRE",
	DoodadStoneWall:      "STONE_WALL",
}

// ParseDoodadType конвертирует строку из сценария в DoodadType
func ParseDoodadType(s string) DoodadType {
	if val, ok := doodadStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return DoodadUnknown
}

func (t DoodadType) String() string {
	if val, ok := doodadTypeToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// Пары открыто/закрыто. Таблица замкнута: каждый член пары отображается в другой.
var doorPairs = map[DoodadType]DoodadType{
	DoodadWoodenDoor:     DoodadWoodenDoorOpen,
	DoodadWoodenDoorOpen: DoodadWoodenDoor,
	DoodadWoodenGate:     DoodadWoodenGateOpen,
	DoodadWoodenGateOpen: DoodadWoodenGate,
}

// DoorPair возвращает парный тип (открытый <-> закрытый). Для не-дверей ok == false.
func DoorPair(t DoodadType) (DoodadType, bool) {
	pair, ok := doorPairs[t]
	return pair, ok
}

// IsDoor - дверь или калитка в любом состоянии
func (t DoodadType) IsDoor() bool {
	_, ok := doorPairs[t]
	return ok
}

// IsOpenDoor - ровно открытая дверь или открытая калитка
func (t DoodadType) IsOpenDoor() bool {
	return t == DoodadWoodenDoorOpen || t == DoodadWoodenGateOpen
}

// DoorState - результат классификации содержимого клетки
type DoorState uint8

const (
	// DoorAbsent - доодада нет вообще (отличается от "есть, но не дверь")
	DoorAbsent DoorState = iota
	// DoorClosed - доодад есть, но это не открытая дверь
	DoorClosed
	DoorOpen
)

func (s DoorState) String() string {
	switch s {
	case DoorAbsent:
		return "ABSENT"
	case DoorClosed:
		return "CLOSED"
	case DoorOpen:
		return "OPEN"
	}
	return "UNKNOWN"
}
