package domain

import "testing"

func TestActionType_String(t *testing.T) {
	tests := []struct {
		action   ActionType
		expected string
	}{
		{ActionIdle, "IDLE"},
		{ActionMove, "MOVE"},
		{ActionCloseDoor, "CLOSE_DOOR"},
		{ActionOpenDoor, "OPEN_DOOR"},
		{ActionUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("ActionType(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}
