package domain

// ActionType - Внутренний числовой идентификатор действия хоста
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionIdle
	ActionMove
	ActionCloseDoor
	ActionOpenDoor
)

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionIdle:      "IDLE",
	ActionMove:      "MOVE",
	ActionCloseDoor: "CLOSE_DOOR",
	ActionOpenDoor:  "OPEN_DOOR",
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
