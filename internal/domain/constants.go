package domain

// Стоимость действий в тиках (Time Units)
const (
	TimeCostMove      = 100
	TimeCostIdle      = 50
	TimeCostTurn      = 10
	TimeCostCloseDoor = 50
	TimeCostOpenDoor  = 50
)

// Типы поверхности клетки
const (
	TerrainFloor = "floor"
	TerrainWall  = "wall"
)

// DefaultModIdent - префикс ключей в хранилище, чтобы не топтать чужие записи
const DefaultModIdent = "closeDaDoor"
