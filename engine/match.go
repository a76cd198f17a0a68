package engine

import (
	"errors"
	"fmt"

	"battleship/agent"
	"battleship/game"

	"github.com/google/uuid"
)

var (
	ErrOutOfTurn = errors.New("not this side's turn")
	ErrMatchOver = errors.New("match is over")
)

type Status int

const (
	PlayerTurn Status = iota
	EnemyTurn
	PlayerWon
	EnemyWon
)

func (s Status) String() string {
	switch s {
	case PlayerTurn:
		return "player_turn"
	case EnemyTurn:
		return "enemy_turn"
	case PlayerWon:
		return "player_won"
	case EnemyWon:
		return "enemy_won"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

func (s Status) IsOver() bool {
	return s == PlayerWon || s == EnemyWon
}

// Match alternates turns between the player's field and the enemy's
// concealed field. The enemy always fires through its agent.
type Match struct {
	ID               string
	Player           *game.Field
	Enemy            *game.Field
	PlacementRetries int

	enemyAgent agent.Agent
	status     Status
	turns      int
}

// NewMatch places both fleets with gen. The player moves first.
func NewMatch(gen *game.Generator, enemyAgent agent.Agent) (*Match, error) {
	if enemyAgent == nil {
		panic("enemy agent is required")
	}

	player := game.NewField(false)
	playerRestarts, err := gen.Generate(player)
	if err != nil {
		return nil, fmt.Errorf("placing player fleet: %w", err)
	}
	enemy := game.NewField(true)
	enemyRestarts, err := gen.Generate(enemy)
	if err != nil {
		return nil, fmt.Errorf("placing enemy fleet: %w", err)
	}

	return &Match{
		ID:               uuid.NewString()[:6],
		Player:           player,
		Enemy:            enemy,
		PlacementRetries: playerRestarts + enemyRestarts,
		enemyAgent:       enemyAgent,
		status:           PlayerTurn,
	}, nil
}

func (m *Match) Status() Status {
	return m.status
}

// Turns counts completed turns of both sides.
func (m *Match) Turns() int {
	return m.turns
}

// PlayerShot fires at the enemy field from a typed label. Invalid or repeated
// cells leave the turn with the player.
func (m *Match) PlayerShot(label string) (game.ShotResult, error) {
	if err := m.expect(PlayerTurn); err != nil {
		return game.ShotMiss, err
	}
	c, err := game.ParseCoordinate(label)
	if err != nil {
		return game.ShotMiss, err
	}
	return m.PlayerShotAt(c)
}

func (m *Match) PlayerShotAt(c game.Coordinate) (game.ShotResult, error) {
	if err := m.expect(PlayerTurn); err != nil {
		return game.ShotMiss, err
	}
	result, err := m.Enemy.Shot(c)
	if err != nil {
		return result, err
	}
	m.endTurn(EnemyTurn)
	return result, nil
}

// PlayerAutoShot lets an agent take the player's turn.
func (m *Match) PlayerAutoShot(a agent.Agent) (game.Coordinate, game.ShotResult, error) {
	if err := m.expect(PlayerTurn); err != nil {
		return game.Coordinate{}, game.ShotMiss, err
	}
	c, result, err := a.NextTarget(m.Enemy)
	if err != nil {
		return c, result, fmt.Errorf("player agent: %w", err)
	}
	m.endTurn(EnemyTurn)
	return c, result, nil
}

// EnemyShot resolves the enemy's turn. The turn passes back to the player
// whatever the outcome.
func (m *Match) EnemyShot() (game.Coordinate, game.ShotResult, error) {
	if err := m.expect(EnemyTurn); err != nil {
		return game.Coordinate{}, game.ShotMiss, err
	}
	c, result, err := m.enemyAgent.NextTarget(m.Player)
	if err != nil {
		return c, result, fmt.Errorf("enemy agent: %w", err)
	}
	m.endTurn(PlayerTurn)
	return c, result, nil
}

func (m *Match) expect(status Status) error {
	if m.status.IsOver() {
		return ErrMatchOver
	}
	if m.status != status {
		return fmt.Errorf("%w: status is %v", ErrOutOfTurn, m.status)
	}
	return nil
}

func (m *Match) endTurn(next Status) {
	m.turns++
	switch {
	case m.Player.Defeated():
		m.status = EnemyWon
	case m.Enemy.Defeated():
		m.status = PlayerWon
	default:
		m.status = next
	}
}
