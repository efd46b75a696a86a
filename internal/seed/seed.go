// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"devconnector/internal/gravatar"
	"devconnector/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var statuses = []string{
	"Developer", "Junior Developer", "Senior Developer", "Manager",
	"Student or Learning", "Instructor or Teacher", "Intern",
}

var skillPool = []string{
	"JavaScript", "TypeScript", "Go", "Python", "Ruby", "Rust", "Java",
	"React", "Vue", "Node.js", "PostgreSQL", "Redis", "Docker", "Kubernetes",
	"HTML", "CSS", "GraphQL", "AWS", "Terraform",
}

var degrees = []string{
	"BSc Computer Science", "BA Mathematics", "MSc Software Engineering",
	"Certificate", "Bootcamp Graduate", "PhD",
}

// Seed populates the database with demo users, profiles and posts. Every
// seeded user gets the password "password123".
func Seed(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	log.Printf("Seeding %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Printf("Warning: could not clear existing data: %v", err)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		email := gofakeit.Email()
		user := &models.User{
			Name:     gofakeit.Name(),
			Email:    email,
			Password: string(hashed),
			Avatar:   gravatar.URL(email),
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("%d users created", len(users))

	for _, user := range users {
		profile := buildProfile(r, user)
		if err := db.Create(profile).Error; err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
	}
	log.Printf("%d profiles created", len(users))

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[r.Intn(len(users))]
		post := &models.Post{
			UserID: author.ID,
			Text:   gofakeit.Paragraph(1, 3, 8, " "),
			Name:   author.Name,
			Avatar: author.Avatar,
		}
		if err := db.Create(post).Error; err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("%d posts created", len(posts))

	if err := seedEngagement(db, r, users, posts); err != nil {
		return err
	}

	log.Println("Seeding complete")
	return nil
}

func buildProfile(r *rand.Rand, user *models.User) *models.Profile {
	skills := make([]string, 0, 5)
	for _, idx := range r.Perm(len(skillPool))[:3+r.Intn(3)] {
		skills = append(skills, skillPool[idx])
	}

	handle := strings.ToLower(strings.ReplaceAll(user.Name, " ", ""))
	profile := &models.Profile{
		UserID:         user.ID,
		Status:         statuses[r.Intn(len(statuses))],
		Company:        gofakeit.Company(),
		Website:        gofakeit.URL(),
		Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		Bio:            gofakeit.Sentence(12),
		GithubUsername: handle,
		Skills:         skills,
		Social: models.SocialLinks{
			Twitter:  fmt.Sprintf("https://twitter.com/%s", handle),
			Linkedin: fmt.Sprintf("https://linkedin.com/in/%s", handle),
		},
	}

	fromYear := 2015 + r.Intn(8)
	profile.Experience = []models.Experience{{
		Title:       gofakeit.JobTitle(),
		Company:     gofakeit.Company(),
		Location:    gofakeit.City(),
		From:        fmt.Sprintf("%d-0%d-01", fromYear, 1+r.Intn(9)),
		Current:     true,
		Description: gofakeit.Sentence(10),
	}}
	profile.Education = []models.Education{{
		School:       fmt.Sprintf("%s University", gofakeit.LastName()),
		Degree:       degrees[r.Intn(len(degrees))],
		FieldOfStudy: "Computer Science",
		From:         fmt.Sprintf("%d-09-01", fromYear-4),
		To:           fmt.Sprintf("%d-06-01", fromYear),
		Description:  gofakeit.Sentence(8),
	}}
	return profile
}

// seedEngagement sprinkles likes and comments across the seeded posts.
func seedEngagement(db *gorm.DB, r *rand.Rand, users []*models.User, posts []*models.Post) error {
	likes, comments := 0, 0
	for _, post := range posts {
		for _, idx := range r.Perm(len(users))[:r.Intn(len(users)/2+1)] {
			like := &models.Like{PostID: post.ID, UserID: users[idx].ID}
			if err := db.Create(like).Error; err != nil {
				return fmt.Errorf("failed to create like: %w", err)
			}
			likes++
		}
		for i := 0; i < r.Intn(4); i++ {
			author := users[r.Intn(len(users))]
			comment := &models.Comment{
				PostID: post.ID,
				UserID: author.ID,
				Text:   gofakeit.Sentence(10),
				Name:   author.Name,
				Avatar: author.Avatar,
			}
			if err := db.Create(comment).Error; err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			comments++
		}
	}
	log.Printf("%d likes and %d comments created", likes, comments)
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE comments, likes, posts, experiences, educations, profiles, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
