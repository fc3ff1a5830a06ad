// Command seed wipes the database and loads the deterministic demo fixture:
// three users (one private) and five posts (one private).
package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"miniblog/internal/config"
	"miniblog/internal/database"
	"miniblog/internal/model"
	"miniblog/internal/repository"
)

const seedPassword = "password123"

type seedPost struct {
	author   string
	title    string
	content  string
	isPublic bool
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	ctx := context.Background()

	// posts first: the FK on author_id blocks deleting users otherwise
	if _, err := db.ExecContext(ctx, `DELETE FROM posts`); err != nil {
		log.Fatalf("Failed to clear posts: %v", err)
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM users`); err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}
	log.Println("Cleared existing data")

	users := repository.NewUserRepository(db)
	posts := repository.NewPostRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	seedUsers := []*model.User{
		{Username: "jay", Email: "jay@example.com", Bio: "just a regular person who likes to write stuff"},
		{Username: "maria", Email: "maria@example.com", Bio: "student, blogger, coffee enthusiast"},
		{Username: "testuser", Email: "test@example.com", IsPrivate: true},
	}

	ids := make(map[string]int64, len(seedUsers))
	for _, u := range seedUsers {
		u.PasswordHash = string(hash)
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("Failed to create user %s: %v", u.Username, err)
		}
		ids[u.Username] = u.ID
		log.Printf("Created user: %s", u.Username)
	}

	seedPosts := []seedPost{
		{
			author:   "jay",
			title:    "trying out this blog thing lol",
			content:  "so i just signed up for this blog site and figured i should write something. not really sure what to say but here we are. maybe i'll post more stuff later if i think of anything interesting.",
			isPublic: true,
		},
		{
			author:   "jay",
			title:    "did not really plan this post but here we are",
			content:  "just writing random thoughts i guess. this is pretty cool actually. might use this more often.",
			isPublic: true,
		},
		{
			author:   "maria",
			title:    "first post!",
			content:  "hey everyone! this is my first post on the blog. excited to see what other people are writing about. feel free to check out my other posts if i make any!",
			isPublic: true,
		},
		{
			author:   "maria",
			title:    "random thoughts",
			content:  "sometimes i just like to write things down. helps me think better. anyway, hope everyone is having a good day!",
			isPublic: true,
		},
		{
			author:   "testuser",
			title:    "private post",
			content:  "this is a private post that only i can see because my account is set to private.",
			isPublic: false,
		},
	}

	for i, sp := range seedPosts {
		post := &model.Post{
			AuthorID: ids[sp.author],
			Title:    sp.title,
			Content:  sp.content,
			IsPublic: sp.isPublic,
		}
		if err := posts.Create(ctx, post); err != nil {
			log.Fatalf("Failed to create post %d: %v", i+1, err)
		}
		log.Printf("Created post %d", i+1)
	}

	log.Println("Seed data created successfully")
	log.Println("You can now log in with jay, maria or testuser (password: password123)")
}
