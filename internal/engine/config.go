package engine

import (
	"fmt"
	"strings"

	"github.com/HenryFBP/wayward-close-da-door/internal/domain"
)

// Strategy - способ закрыть дверь за игроком
type Strategy uint8

const (
	// StrategyDirect меняет тип двери напрямую и тратит ход через Idle (блокирующе)
	StrategyDirect Strategy = iota
	// StrategyQueued имитирует действия игрока через очередь хоста: разворот + CloseDoor
	StrategyQueued
)

func (s Strategy) String() string {
	switch s {
	case StrategyDirect:
		return "direct"
	case StrategyQueued:
		return "queued"
	}
	return "unknown"
}

// ParseStrategy разбирает значение флага -strategy
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case "", "direct":
		return StrategyDirect, nil
	case "queued":
		return StrategyQueued, nil
	}
	return StrategyDirect, fmt.Errorf("unknown strategy %q", s)
}

// Config хранит параметры доводчика
type Config struct {
	// Ident - префикс ключей мода в хранилище
	Ident    string
	Strategy Strategy
	// Verbose включает подробную трассировку решений хука
	Verbose bool
}

// NewConfig создает конфиг по умолчанию
func NewConfig() Config {
	return Config{
		Ident:    domain.DefaultModIdent,
		Strategy: StrategyDirect,
	}
}
