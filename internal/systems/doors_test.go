package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HenryFBP/wayward-close-da-door/internal/domain"
	"github.com/HenryFBP/wayward-close-da-door/internal/host/hosttest"
)

func TestClassifyDoor(t *testing.T) {
	assert.Equal(t, domain.DoorAbsent, ClassifyDoor(nil))

	tests := []struct {
		typ      domain.DoodadType
		expected domain.DoorState
	}{
		{domain.DoodadWoodenDoorOpen, domain.DoorOpen},
		{domain.DoodadWoodenGateOpen, domain.DoorOpen},
		{domain.DoodadWoodenDoor, domain.DoorClosed},
		{domain.DoodadWoodenGate, domain.DoorClosed},
		{domain.DoodadCampfire, domain.DoorClosed},
		{domain.DoodadUnknown, domain.DoorClosed},
	}

	for _, tt := range tests {
		d := hosttest.NewDoodad(tt.typ, 0, 0, 0)
		assert.Equal(t, tt.expected, ClassifyDoor(d), "type %s", tt.typ)
		assert.Empty(t, d.Changes, "classifier must not mutate %s", tt.typ)
	}
}

func TestClassifyDoor_EmptyTile(t *testing.T) {
	tile := &hosttest.Tile{}
	assert.Equal(t, domain.DoorAbsent, ClassifyDoor(tile.Doodad()))
}

func TestToggleDoorState_Pairs(t *testing.T) {
	tests := []struct {
		from, to domain.DoodadType
	}{
		{domain.DoodadWoodenDoor, domain.DoodadWoodenDoorOpen},
		{domain.DoodadWoodenDoorOpen, domain.DoodadWoodenDoor},
		{domain.DoodadWoodenGate, domain.DoodadWoodenGateOpen},
		{domain.DoodadWoodenGateOpen, domain.DoodadWoodenGate},
	}

	for _, tt := range tests {
		d := hosttest.NewDoodad(tt.from, 1, 1, 0)
		assert.True(t, ToggleDoorState(d))
		assert.Equal(t, tt.to, d.Type())
		assert.Equal(t, []domain.DoodadType{tt.to}, d.Changes)
	}
}

func TestToggleDoorState_TwiceRestores(t *testing.T) {
	d := hosttest.NewDoodad(domain.DoodadWoodenDoor, 0, 0, 0)
	ToggleDoorState(d)
	ToggleDoorState(d)

	assert.Equal(t, domain.DoodadWoodenDoor, d.Type())
	assert.Len(t, d.Changes, 2)
}

func TestToggleDoorState_NonDoorIsNoop(t *testing.T) {
	d := hosttest.NewDoodad(domain.DoodadWoodenChest, 0, 0, 0)

	assert.False(t, ToggleDoorState(d))
	assert.Equal(t, domain.DoodadWoodenChest, d.Type())
	assert.Empty(t, d.Changes)
	assert.False(t, ToggleDoorState(nil))
}
