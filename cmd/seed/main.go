package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"miniblog/internal/database"
	"miniblog/internal/domain"
	"miniblog/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("site.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM files")
	db.Exec("DELETE FROM posts")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	posts := repository.NewPostRepository(db)
	files := repository.NewFileRepository(db)

	log.Println("Creating users...")
	alice := seedUser(ctx, users, "alice", "alice123", "alice@example.com")
	bob := seedUser(ctx, users, "bob", "bob123", "")

	log.Println("Creating posts...")
	for i := 1; i <= 3; i++ {
		p := &domain.Post{
			Title:     fmt.Sprintf("Alice's post #%d", i),
			Content:   fmt.Sprintf("Content of post number %d, written by alice.", i),
			UserID:    alice.ID,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := posts.Create(ctx, p); err != nil {
			log.Fatal("post create failed:", err)
		}
	}
	p := &domain.Post{
		Title:     "Hello from bob",
		Content:   "Bob's one and only post.",
		UserID:    bob.ID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := posts.Create(ctx, p); err != nil {
		log.Fatal("post create failed:", err)
	}

	log.Println("Creating file records...")
	f := &domain.File{
		Filename:   "notes.txt",
		Path:       "uploads/notes.txt",
		UserID:     alice.ID,
		UploadedAt: time.Now(),
	}
	if err := files.Create(ctx, f); err != nil {
		log.Fatal("file create failed:", err)
	}

	log.Println("Seed complete. Users: alice/alice123, bob/bob123")
}

func seedUser(ctx context.Context, users *repository.UserRepository, username, password, email string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	u := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		CreatedAt:    time.Now(),
	}
	if err := users.Create(ctx, u); err != nil {
		log.Fatal("user create failed:", err)
	}
	return u
}
