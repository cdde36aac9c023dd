package seed

import (
	"context"
	"errors"
	"fmt"
	"log"

	"simpleadvert/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers          int
	NumAdverts        int
	FeedbackPerAdvert int
	// ComplaintRate is the share of adverts, 0 to 1, that receive one complaint.
	ComplaintRate float64
	ShouldClean   bool
	Factory       FactoryOptions
}

// Summary counts what a run created.
type Summary struct {
	Users      int
	Adverts    int
	Feedback   int
	Complaints int
}

// Seeder populates the database with fake users, adverts, feedback and complaints.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll removes every advert, review and regular user. Superusers are kept.
func (s *Seeder) ClearAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []any{&models.Complaint{}, &models.Feedback{}, &models.Advert{}} {
			if err := all.Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Where("is_superuser = ?", false).Delete(&models.User{}).Error
	})
}

// Run seeds according to opts inside a single transaction.
func (s *Seeder) Run(ctx context.Context, opts Options) (Summary, error) {
	if opts.NumAdverts > 0 && opts.NumUsers < 1 {
		return Summary{}, errors.New("adverts need at least one user")
	}
	if (opts.FeedbackPerAdvert > 0 || opts.ComplaintRate > 0) && opts.NumUsers < 2 {
		return Summary{}, errors.New("feedback and complaints need at least two users")
	}

	if opts.ShouldClean {
		if err := s.ClearAll(ctx); err != nil {
			return Summary{}, fmt.Errorf("cleanup failed: %w", err)
		}
	}

	var sum Summary
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		f, err := NewFactory(tx, opts.Factory)
		if err != nil {
			return err
		}

		users := make([]*models.User, 0, opts.NumUsers)
		for range opts.NumUsers {
			u, err := f.CreateUser(ctx)
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}
			users = append(users, u)
		}
		sum.Users = len(users)

		for i := range opts.NumAdverts {
			owner := users[i%len(users)]
			advert, err := f.CreateAdvert(ctx, owner)
			if err != nil {
				return fmt.Errorf("create advert: %w", err)
			}
			sum.Adverts++

			for range opts.FeedbackPerAdvert {
				if _, err := f.CreateFeedback(ctx, f.pick(users, owner), advert); err != nil {
					return fmt.Errorf("create feedback: %w", err)
				}
				sum.Feedback++
			}
			if opts.ComplaintRate > 0 && f.faker.Float64() < opts.ComplaintRate {
				if _, err := f.CreateComplaint(ctx, f.pick(users, owner), advert); err != nil {
					return fmt.Errorf("create complaint: %w", err)
				}
				sum.Complaints++
			}
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	log.Printf("Seeded %d users, %d adverts, %d feedback, %d complaints",
		sum.Users, sum.Adverts, sum.Feedback, sum.Complaints)
	return sum, nil
}
