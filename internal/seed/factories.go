// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"context"
	"fmt"

	"simpleadvert/internal/models"
	"simpleadvert/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password of every seeded user.
const DefaultPassword = "password123"

// FactoryOptions tune how entities are generated.
type FactoryOptions struct {
	// SkipBcrypt stores DefaultPassword unhashed, which keeps large seeds and tests fast.
	SkipBcrypt bool
	// Seed makes generation deterministic when non-zero.
	Seed int64
}

// Factory builds domain entities and persists them through the repositories.
type Factory struct {
	repos    repository.Repositories
	faker    *gofakeit.Faker
	password string
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts FactoryOptions) (*Factory, error) {
	password := DefaultPassword
	if !opts.SkipBcrypt {
		hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash seed password: %w", err)
		}
		password = string(hashed)
	}
	return &Factory{
		repos:    repository.NewRepositories(db),
		faker:    gofakeit.New(opts.Seed),
		password: password,
	}, nil
}

// CreateUser constructs and persists a sample user.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(ctx context.Context, overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Email:    fmt.Sprintf("%s.%d@%s", f.faker.Username(), f.faker.Number(1000, 9999), f.faker.DomainName()),
		Password: f.password,
		IsActive: true,
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.repos.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// BuildAdvert returns an unsaved advert. The description carries a random reference
// so generated descriptions never collide.
func (f *Factory) BuildAdvert(overrides ...func(*models.Advert)) *models.Advert {
	advert := &models.Advert{
		Title:       f.faker.ProductName(),
		Description: fmt.Sprintf("%s Ref %s.", f.faker.Sentence(12), f.faker.UUID()),
		Kind:        models.AdvertKinds[f.faker.Number(0, len(models.AdvertKinds)-1)],
		Price:       f.faker.Number(1, 100000),
	}
	for _, override := range overrides {
		override(advert)
	}
	return advert
}

// CreateAdvert persists a generated advert owned by owner.
func (f *Factory) CreateAdvert(ctx context.Context, owner *models.User, overrides ...func(*models.Advert)) (*models.Advert, error) {
	actor := owner.Actor()
	return f.repos.Adverts.Create(ctx, f.BuildAdvert(overrides...), &actor)
}

// CreateFeedback persists generated feedback by author on advert.
func (f *Factory) CreateFeedback(ctx context.Context, author *models.User, advert *models.Advert) (*models.Feedback, error) {
	actor := author.Actor()
	return f.repos.Feedback.Create(ctx, &models.Feedback{
		Text:     f.faker.Sentence(f.faker.Number(5, 20)),
		AdvertID: advert.ID,
	}, &actor)
}

// CreateComplaint persists a generated complaint by author on advert.
func (f *Factory) CreateComplaint(ctx context.Context, author *models.User, advert *models.Advert) (*models.Complaint, error) {
	actor := author.Actor()
	return f.repos.Complaints.Create(ctx, &models.Complaint{
		Text:     f.faker.RandomString(complaintReasons) + ": " + f.faker.Sentence(8),
		AdvertID: advert.ID,
	}, &actor)
}

var complaintReasons = []string{"Spam", "Fraud", "Wrong category", "Offensive content", "Duplicate listing"}

// pick returns a random element of users other than exclude.
func (f *Factory) pick(users []*models.User, exclude *models.User) *models.User {
	for {
		u := users[f.faker.Number(0, len(users)-1)]
		if u.ID != exclude.ID {
			return u
		}
	}
}
