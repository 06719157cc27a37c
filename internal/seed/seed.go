// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"

	"blogicum/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the database with demo content.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded rows. Child tables go first so foreign keys
// do not block deletion.
func (s *Seeder) ClearAll() error {
	log.Println("Cleaning database...")
	tables := []string{"comments", "posts", "locations", "categories", "users"}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clean %s: %w", table, err)
		}
	}
	return nil
}

// SeedBlog populates users, categories, locations, posts, and comments.
// Roughly a fifth of the posts are scheduled in the future and a tenth are
// unpublished, so the visibility rules have something to hide.
func (s *Seeder) SeedBlog(numUsers, numPosts int) error {
	log.Printf("Seeding %d users and %d posts...", numUsers, numPosts)

	admin, err := s.factory.CreateStaffUser("admin", "admin@blogicum.local")
	if err != nil {
		return fmt.Errorf("failed to create staff user: %w", err)
	}

	users := []*models.User{admin}
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}

	categories, err := s.factory.CreateDefaultCategories()
	if err != nil {
		return fmt.Errorf("failed to create categories: %w", err)
	}
	locations, err := s.factory.CreateDefaultLocations()
	if err != nil {
		return fmt.Errorf("failed to create locations: %w", err)
	}

	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[i%len(users)]
		post, err := s.factory.CreatePost(author, categories, locations, postKind(i))
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, post)
	}

	commented := 0
	for _, post := range posts {
		if !post.IsPublished {
			continue
		}
		n, err := s.factory.CreateComments(post, users)
		if err != nil {
			return fmt.Errorf("failed to create comments: %w", err)
		}
		commented += n
	}

	log.Printf("Seeded %d users, %d categories, %d locations, %d posts, %d comments",
		len(users), len(categories), len(locations), len(posts), commented)
	return nil
}

func postKind(i int) postTemplate {
	switch {
	case i%10 == 9:
		return postUnpublished
	case i%5 == 4:
		return postScheduled
	default:
		return postPublished
	}
}
