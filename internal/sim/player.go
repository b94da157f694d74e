package sim

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/HenryFBP/wayward-close-da-door/internal/domain"
	"github.com/HenryFBP/wayward-close-da-door/internal/host"
)

// GenerateID создает простой уникальный ID (замена UUID для снижения зависимостей)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

type Player struct {
	id     string
	Name   string
	Pos    domain.Point
	Facing domain.Direction

	// NextActionTick - когда игрок снова сможет действовать
	NextActionTick int
}

func NewPlayer(name string, pos domain.Point, facing domain.Direction) *Player {
	return &Player{id: GenerateID(), Name: name, Pos: pos, Facing: facing}
}

func (p *Player) ID() string                        { return p.id }
func (p *Player) Point() domain.Point               { return p.Pos }
func (p *Player) Z() int                            { return p.Pos.Z }
func (p *Player) FacingDirection() domain.Direction { return p.Facing }

// SpendTime сдвигает следующий ход игрока
func (p *Player) SpendTime(cost int) {
	p.NextActionTick += cost
}

var _ host.Player = (*Player)(nil)
