package sim

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/HenryFBP/wayward-close-da-door/internal/domain"
	"github.com/HenryFBP/wayward-close-da-door/internal/host"
	"github.com/HenryFBP/wayward-close-da-door/pkg/logger"
)

// Scenario - карта и маршрут игрока, описанные в YAML
type Scenario struct {
	Name    string         `yaml:"name"`
	Width   int            `yaml:"width"`
	Height  int            `yaml:"height"`
	Rooms   []Rect         `yaml:"rooms"`
	Floors  []domain.Point `yaml:"floors"`
	Doodads []DoodadSpec   `yaml:"doodads"`
	Player  PlayerSpec     `yaml:"player"`
	Steps   []Step         `yaml:"steps"`
}

type DoodadSpec struct {
	Type string `yaml:"type"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Z    int    `yaml:"z"`
}

type PlayerSpec struct {
	Name   string `yaml:"name"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Z      int    `yaml:"z"`
	Facing string `yaml:"facing"`
}

// Step - один шаг сценария. Заполняется ровно одно поле.
type Step struct {
	Move   string `yaml:"move,omitempty"`
	Open   string `yaml:"open,omitempty"`
	Idle   bool   `yaml:"idle,omitempty"`
	Rejoin bool   `yaml:"rejoin,omitempty"`
}

func (s Step) String() string {
	switch {
	case s.Move != "":
		return "move " + strings.ToLower(s.Move)
	case s.Open != "":
		return "open " + strings.ToLower(s.Open)
	case s.Idle:
		return "idle"
	case s.Rejoin:
		return "rejoin"
	}
	return "noop"
}

// LoadScenario читает сценарий из файла
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := ParseScenario(raw)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// ParseScenario разбирает YAML. Неизвестные поля - ошибка.
func ParseScenario(raw []byte) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) Validate() error {
	var errs []error
	if sc.Width <= 0 || sc.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid size %dx%d", sc.Width, sc.Height))
	}
	if domain.ParseDirection(sc.Player.Facing) == domain.DirectionNone && sc.Player.Facing != "" {
		errs = append(errs, fmt.Errorf("invalid player facing %q", sc.Player.Facing))
	}
	for _, d := range sc.Doodads {
		if domain.ParseDoodadType(d.Type) == domain.DoodadUnknown {
			errs = append(errs, fmt.Errorf("unknown doodad type %q", d.Type))
		}
	}
	for i, st := range sc.Steps {
		dir := st.Move
		if dir == "" {
			dir = st.Open
		}
		if dir != "" && domain.ParseDirection(dir) == domain.DirectionNone {
			errs = append(errs, fmt.Errorf("step %d: invalid direction %q", i, dir))
		}
	}
	return errors.Join(errs...)
}

// Build собирает мир и игрока
func (sc *Scenario) Build() (*World, *Player, error) {
	b := NewLevel(sc.Width, sc.Height)
	for _, r := range sc.Rooms {
		b.WithRoom(r)
	}
	for _, f := range sc.Floors {
		b.WithFloor(f.X, f.Y, f.Z)
	}
	for _, d := range sc.Doodads {
		b.WithDoodad(domain.ParseDoodadType(d.Type), d.X, d.Y, d.Z)
	}

	w, err := b.Build()
	if err != nil {
		return nil, nil, err
	}

	name := sc.Player.Name
	if name == "" {
		name = "player"
	}
	facing := domain.ParseDirection(sc.Player.Facing)
	if facing == domain.DirectionNone {
		facing = domain.DirectionSouth
	}
	p := NewPlayer(name, domain.Point{X: sc.Player.X, Y: sc.Player.Y, Z: sc.Player.Z}, facing)
	return w, p, nil
}

// Report - итог прогона сценария
type Report struct {
	Steps   int
	Moved   int
	Bumped  int
	Vetoed  int
	Failed  int
	Renders int
}

// Run прогоняет шаги сценария. Ошибки отдельных шагов логируются и считаются в Failed.
func (sc *Scenario) Run(g *Game, p *Player) Report {
	var rep Report
	for i, st := range sc.Steps {
		rep.Steps++
		fields := logrus.Fields{"step": i, "action": st.String()}

		if err := g.runStep(p, st, &rep); err != nil {
			rep.Failed++
			logger.Log.WithFields(fields).WithError(err).Warn("Scenario step failed")
			continue
		}
		fields["pos"] = p.Pos.String()
		fields["facing"] = p.Facing
		logger.Log.WithFields(fields).Debug("Scenario step done")
	}
	rep.Renders = g.Renders
	return rep
}

func (g *Game) runStep(p *Player, st Step, rep *Report) error {
	switch {
	case st.Move != "":
		outcome, err := g.Move(p, domain.ParseDirection(st.Move))
		if err != nil {
			return err
		}
		switch outcome {
		case MoveDone:
			rep.Moved++
		case MoveBumped:
			rep.Bumped++
		case MoveVetoed:
			rep.Vetoed++
		}
		return nil
	case st.Open != "":
		dir := domain.ParseDirection(st.Open)
		step, ok := domain.ScreenVector(dir)
		if !ok {
			return domain.ErrNoDirection
		}
		p.Facing = dir
		return g.Execute(p, domain.ActionOpenDoor, &host.ActionArgument{Direction: dir, Point: p.Pos.Shift(step.DX, step.DY)})
	case st.Idle:
		return g.Execute(p, domain.ActionIdle, nil)
	case st.Rejoin:
		return g.Join(p)
	}
	return nil
}
