// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"kinograph/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumFilms    int
	ShouldClean bool
}

var (
	genreNames = []string{
		"Comedy", "Drama", "Cartoon", "Thriller", "Documentary", "Action",
	}

	mpaNames = []string{"G", "PG", "PG-13", "R", "NC-17"}

	directorNames = []string{
		"Ava Castellanos", "Miklos Ferenczy", "June Okafor", "Piotr Lindqvist",
		"Carmen Iturbide", "Dashiell Wren", "Noor Haddad", "Teodora Vasquez",
	}
)

// Seeder populates the database with demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	r       *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Seeder{db: db, factory: NewFactory(db), r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// ClearAll removes all seeded data and resets identity sequences.
func (s *Seeder) ClearAll() error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE review_reactions, reviews, feed_events, likes, friendships, film_genres, film_directors, films, directors, genres, mpa_ratings, users RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

// SeedReferenceData inserts the fixed genre, MPA rating, and director
// reference rows if they are not already present.
func (s *Seeder) SeedReferenceData() ([]models.Genre, []models.MpaRating, error) {
	genres := make([]models.Genre, 0, len(genreNames))
	for _, name := range genreNames {
		var g models.Genre
		if err := s.db.Where(models.Genre{Name: name}).FirstOrCreate(&g).Error; err != nil {
			return nil, nil, err
		}
		genres = append(genres, g)
	}

	ratings := make([]models.MpaRating, 0, len(mpaNames))
	for _, name := range mpaNames {
		var m models.MpaRating
		if err := s.db.Where(models.MpaRating{Name: name}).FirstOrCreate(&m).Error; err != nil {
			return nil, nil, err
		}
		ratings = append(ratings, m)
	}

	for _, name := range directorNames {
		var d models.Director
		if err := s.db.Where(models.Director{Name: name}).FirstOrCreate(&d).Error; err != nil {
			return nil, nil, err
		}
	}

	return genres, ratings, nil
}

// SeedUsers creates `count` demo users. The first few have stable logins
// so the API can be exercised against known accounts.
func (s *Seeder) SeedUsers(count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	if count >= 3 {
		baseLogins := []string{"alice", "bob", "carol"}
		for _, login := range baseLogins {
			l := login
			user, err := s.factory.CreateUser(func(u *models.User) {
				u.Login = l
				u.Email = fmt.Sprintf("%s@example.com", l)
			})
			if err != nil {
				log.Printf("Failed to create user %s: %v", l, err)
				continue
			}
			users = append(users, user)
		}
	}

	for i := len(users); i < count; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)

		if i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

// SeedFilms creates `count` demo films with genres and MPA ratings attached.
func (s *Seeder) SeedFilms(count int, ratings []models.MpaRating, genres []models.Genre) ([]*models.Film, error) {
	films := make([]*models.Film, 0, count)
	for i := 0; i < count; i++ {
		film, err := s.factory.CreateFilm(ratings, genres)
		if err != nil {
			return nil, err
		}
		films = append(films, film)

		if i%100 == 0 {
			log.Printf("Created %d films...", i)
		}
	}
	return films, nil
}

// SeedEngagement wires users and films together: likes with a popularity
// skew, friendship edges with a share of confirmed pairs, and reviews with
// reactions. Feed events are recorded alongside so the activity feed has
// history out of the box.
func (s *Seeder) SeedEngagement(users []*models.User, films []*models.Film) error {
	if len(users) == 0 || len(films) == 0 {
		return nil
	}

	// Likes: earlier films accumulate more likes so the popularity ranking
	// has visible structure.
	liked := map[string]bool{}
	for i, film := range films {
		weight := len(films) - i
		numLikes := s.r.Intn(weight*len(users)/len(films) + 1)
		for j := 0; j < numLikes; j++ {
			user := users[s.r.Intn(len(users))]
			key := fmt.Sprintf("%d:%d", user.ID, film.ID)
			if liked[key] {
				continue
			}
			liked[key] = true
			if err := s.factory.CreateLike(user, film); err != nil {
				return err
			}
			if err := s.factory.CreateFeedEvent(user, film.ID, models.FeedEventLike, models.FeedOperationAdd); err != nil {
				return err
			}
		}
	}
	log.Printf("✓ %d likes created", len(liked))

	// Friendships: random directed edges, roughly half reciprocated. A pair
	// is confirmed on both edges only when both directions exist.
	edges := map[string]bool{}
	numEdges := len(users) * 2
	for i := 0; i < numEdges; i++ {
		a := users[s.r.Intn(len(users))]
		b := users[s.r.Intn(len(users))]
		if a.ID == b.ID {
			continue
		}
		key := fmt.Sprintf("%d:%d", a.ID, b.ID)
		if edges[key] {
			continue
		}
		edges[key] = true

		status := models.FriendshipStatusPending
		if edges[fmt.Sprintf("%d:%d", b.ID, a.ID)] {
			status = models.FriendshipStatusConfirmed
			if err := s.db.Model(&models.Friendship{}).
				Where("owner_id = ? AND friend_id = ?", b.ID, a.ID).
				Update("status", models.FriendshipStatusConfirmed).Error; err != nil {
				return err
			}
		}
		if err := s.factory.CreateFriendship(a, b, status); err != nil {
			return err
		}
		if err := s.factory.CreateFeedEvent(a, b.ID, models.FeedEventFriend, models.FeedOperationAdd); err != nil {
			return err
		}
	}
	log.Printf("✓ %d friendship edges created", len(edges))

	// Reviews and reactions. Each review gets a handful of reactions; the
	// factory keeps the cached useful score in sync.
	numReviews := len(films)
	reviewed := map[string]bool{}
	for i := 0; i < numReviews; i++ {
		user := users[s.r.Intn(len(users))]
		film := films[s.r.Intn(len(films))]
		key := fmt.Sprintf("%d:%d", user.ID, film.ID)
		if reviewed[key] {
			continue
		}
		reviewed[key] = true

		review, err := s.factory.CreateReview(user, film)
		if err != nil {
			return err
		}
		if err := s.factory.CreateFeedEvent(user, review.ID, models.FeedEventReview, models.FeedOperationAdd); err != nil {
			return err
		}

		reacted := map[uint]bool{user.ID: true}
		numReactions := s.r.Intn(5)
		for j := 0; j < numReactions; j++ {
			reactor := users[s.r.Intn(len(users))]
			if reacted[reactor.ID] {
				continue
			}
			reacted[reactor.ID] = true
			if err := s.factory.CreateReaction(reactor, review, s.r.Float32() < 0.75); err != nil {
				return err
			}
		}
	}
	log.Printf("✓ %d reviews created", len(reviewed))

	return nil
}

// Seed populates the database with demo data end to end.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d films...", opts.NumUsers, opts.NumFilms)

	s := NewSeeder(db)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	genres, ratings, err := s.SeedReferenceData()
	if err != nil {
		return fmt.Errorf("failed to seed reference data: %w", err)
	}
	log.Printf("✓ %d genres, %d MPA ratings available", len(genres), len(ratings))

	users, err := s.SeedUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d users created", len(users))

	films, err := s.SeedFilms(opts.NumFilms, ratings, genres)
	if err != nil {
		return fmt.Errorf("failed to create films: %w", err)
	}
	log.Printf("✓ %d films created", len(films))

	if err := s.SeedEngagement(users, films); err != nil {
		return fmt.Errorf("failed to seed engagement: %w", err)
	}

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}
