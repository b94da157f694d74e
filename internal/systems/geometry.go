package systems

import (
	"fmt"

	"github.com/HenryFBP/wayward-close-da-door/internal/domain"
	"github.com/HenryFBP/wayward-close-da-door/internal/host"
)

// TileBehind возвращает клетку за спиной игрока, стоящего в (x, y, z) лицом к d.
// Границы не проверяет: ошибку (например, выход за карту) возвращает сам хост.
func TileBehind(w host.World, x, y, z int, d domain.Direction) (host.Tile, error) {
	pb, ok := domain.PositionBehind(x, y, d)
	if !ok {
		return nil, fmt.Errorf("tile behind [%d, %d, %d] facing %s: %w", x, y, z, d, domain.ErrNoDirection)
	}

	t, err := w.GetTile(pb.X, pb.Y, z)
	if err != nil {
		return nil, fmt.Errorf("tile behind [%d, %d, %d] facing %s: %w", x, y, z, d, err)
	}
	return t, nil
}
