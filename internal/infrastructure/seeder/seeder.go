package seeder

import (
	"log"

	"github.com/gridfall/progression/internal/domain"
)

// Seeder handles database seeding operations
type Seeder struct {
	playerRepo domain.PlayerRepository
}

// NewSeeder creates a new seeder instance
func NewSeeder(playerRepo domain.PlayerRepository) *Seeder {
	return &Seeder{
		playerRepo: playerRepo,
	}
}

// SeedPlayers seeds the database with development players
func (s *Seeder) SeedPlayers() error {
	log.Printf("Seeding players...")

	usernames := []string{"ada", "brom", "cassia", "dorn"}

	for _, username := range usernames {
		existing, err := s.playerRepo.GetByUsername(username)
		if err != nil {
			return err
		}
		if existing != nil {
			log.Printf("Player %s already exists, skipping", username)
			continue
		}

		player := domain.NewPlayer(username)
		if err := s.playerRepo.Create(player); err != nil {
			return err
		}
		log.Printf("Created player %s (id=%d)", player.Username, player.ID)
	}

	return nil
}
