// Command provision manages user accounts and role profiles out of band.
// It talks to the same identity and profile stores as the interactive
// application but runs independently of it.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	authadapters "github.com/akhileshms120/irblibrary/internal/feature/auth/adapters"
	"github.com/akhileshms120/irblibrary/internal/feature/auth/domain/entity"
	authusecase "github.com/akhileshms120/irblibrary/internal/feature/auth/usecase"
	infradb "github.com/akhileshms120/irblibrary/internal/platform/db"
	"github.com/akhileshms120/irblibrary/internal/shared/ratelimiter"
)

const usage = `Available commands:
  provision create <email> <password> [role]   Create a new user with role (default: user)
  provision create-admin <email> <password>    Create a new admin user
  provision list                               List all users
  provision profiles                           List all role profiles
  provision demo                               Create demo admin/librarian/user accounts

Available roles: admin, librarian, user`

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	db := infradb.OpenDB()
	userRepo := authadapters.NewUserRepository(db)
	profileRepo := authadapters.NewProfileRepository(db)
	sessionRepo := authadapters.NewSessionRepository(db)
	uc := authusecase.NewAuthUsecase(userRepo, profileRepo, sessionRepo, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, uc, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, uc *authusecase.AuthUsecase, args []string) error {
	if len(args) == 0 {
		fmt.Println(usage)
		return nil
	}

	switch args[0] {
	case "create":
		if len(args) < 3 {
			return fmt.Errorf("usage: provision create <email> <password> [role]")
		}
		role := entity.RoleUser
		if len(args) > 3 {
			role = entity.Role(args[3])
		}
		return createUser(ctx, uc, args[1], args[2], role)

	case "create-admin":
		if len(args) < 3 {
			return fmt.Errorf("usage: provision create-admin <email> <password>")
		}
		return createUser(ctx, uc, args[1], args[2], entity.RoleAdmin)

	case "list":
		return listUsers(ctx, uc)

	case "profiles":
		return listProfiles(ctx, uc)

	case "demo":
		return createDemoUsers(ctx, uc)

	default:
		fmt.Println(usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func createUser(ctx context.Context, uc *authusecase.AuthUsecase, email, password string, role entity.Role) error {
	fmt.Printf("Creating user: %s with role: %s\n", email, role)
	user, err := uc.ProvisionUser(ctx, email, password, role)
	if err != nil {
		return err
	}
	fmt.Printf("User created and assigned role successfully: %s\n", user.Email)
	fmt.Printf("  User ID: %s\n", user.ID)
	fmt.Printf("  Role:    %s\n", role)
	return nil
}

func listUsers(ctx context.Context, uc *authusecase.AuthUsecase) error {
	users, err := uc.ListUsers(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Current users:")
	if len(users) == 0 {
		fmt.Println("  No users found")
	}
	for i, u := range users {
		fmt.Printf("  %d. %s (created %s)\n", i+1, u.Email, u.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func listProfiles(ctx context.Context, uc *authusecase.AuthUsecase) error {
	profiles, err := uc.ListProfiles(ctx)
	if err != nil {
		return err
	}
	fmt.Println("User profiles:")
	if len(profiles) == 0 {
		fmt.Println("  No profiles found")
	}
	for i, p := range profiles {
		fmt.Printf("  %d. %s - Role: %s\n", i+1, p.Email, p.Role)
	}
	return nil
}

// createDemoUsers seeds one account per role, pacing the identity-store
// calls so seeding cannot hammer a shared backend.
func createDemoUsers(ctx context.Context, uc *authusecase.AuthUsecase) error {
	limiter := ratelimiter.NewRateLimiter(10, time.Minute)

	demo := []struct {
		email    string
		password string
		role     entity.Role
	}{
		{"admin@library.com", "admin123", entity.RoleAdmin},
		{"librarian@library.com", "librarian123", entity.RoleLibrarian},
		{"user@library.com", "user123", entity.RoleUser},
	}

	fmt.Println("Creating demo users...")
	for _, d := range demo {
		limiter.WaitIfNeeded()
		if err := createUser(ctx, uc, d.email, d.password, d.role); err != nil {
			return err
		}
	}

	if err := listUsers(ctx, uc); err != nil {
		return err
	}
	return listProfiles(ctx, uc)
}
