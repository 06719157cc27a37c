package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"blogicum/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Every seeded user gets this password so demo logins are easy.
const demoPassword = "DemoPassword123!"

type postTemplate int

const (
	postPublished postTemplate = iota
	postScheduled
	postUnpublished
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rnd *rand.Rand
	// post titles carry a sequence number to satisfy the unique constraint
	seq int
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists a fake user with the demo password.
func (f *Factory) CreateUser() (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	username := strings.ToLower(gofakeit.Username())
	user := &models.User{
		Username:     fmt.Sprintf("%s%d", username, f.rnd.Intn(10000)),
		Email:        gofakeit.Email(),
		PasswordHash: string(hash),
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateStaffUser persists a staff user with a fixed username and email.
func (f *Factory) CreateStaffUser(username, email string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsStaff:      true,
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateDefaultCategories persists a fixed set of categories. One of them is
// unpublished so its posts disappear from public listings.
func (f *Factory) CreateDefaultCategories() ([]*models.Category, error) {
	specs := []struct {
		title     string
		slug      string
		published bool
	}{
		{"Travel", "travel", true},
		{"Food", "food", true},
		{"Technology", "technology", true},
		{"Music", "music", true},
		{"Drafts corner", "drafts-corner", false},
	}

	categories := make([]*models.Category, 0, len(specs))
	for _, spec := range specs {
		category := &models.Category{
			Title:       spec.title,
			Description: gofakeit.Sentence(12),
			Slug:        spec.slug,
			IsPublished: spec.published,
		}
		if err := f.db.Create(category).Error; err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// CreateDefaultLocations persists a handful of cities.
func (f *Factory) CreateDefaultLocations() ([]*models.Location, error) {
	locations := make([]*models.Location, 0, 6)
	for i := 0; i < 6; i++ {
		location := &models.Location{
			Name:        gofakeit.City(),
			IsPublished: i != 5,
		}
		if err := f.db.Create(location).Error; err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}
	return locations, nil
}

// CreatePost persists a post by the given author. Scheduled posts get a
// future publication date, unpublished ones a past date with the flag off.
func (f *Factory) CreatePost(
	author *models.User,
	categories []*models.Category,
	locations []*models.Location,
	kind postTemplate,
) (*models.Post, error) {
	f.seq++
	post := &models.Post{
		Title:       fmt.Sprintf("%s #%d", gofakeit.Sentence(4), f.seq),
		Text:        gofakeit.Paragraph(2, 4, 8, "\n\n"),
		AuthorID:    author.ID,
		IsPublished: true,
	}

	// realistic publication date spread over the last 90 days
	daysBack := f.rnd.Intn(90)
	post.PubDate = time.Now().UTC().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(f.rnd.Intn(24))*time.Hour)

	switch kind {
	case postScheduled:
		post.PubDate = time.Now().UTC().Add(time.Duration(1+f.rnd.Intn(30)) * 24 * time.Hour)
	case postUnpublished:
		post.IsPublished = false
	}

	if len(categories) > 0 && f.rnd.Intn(10) != 0 {
		category := categories[f.rnd.Intn(len(categories))]
		post.CategoryID = &category.ID
	}
	if len(locations) > 0 && f.rnd.Intn(3) != 0 {
		location := locations[f.rnd.Intn(len(locations))]
		post.LocationID = &location.ID
	}
	if f.rnd.Intn(2) == 0 {
		post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID())
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComments persists zero to five comments on a post and returns the
// number created.
func (f *Factory) CreateComments(post *models.Post, users []*models.User) (int, error) {
	n := f.rnd.Intn(6)
	for i := 0; i < n; i++ {
		commenter := users[f.rnd.Intn(len(users))]
		comment := &models.Comment{
			Text:     gofakeit.Sentence(10),
			AuthorID: commenter.ID,
			PostID:   post.ID,
		}
		if err := f.db.Create(comment).Error; err != nil {
			return i, err
		}
	}
	return n, nil
}
