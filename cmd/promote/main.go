// Command promote grants the admin role to an existing user by email.
// Role promotion is an operator action; there is no API surface for it.
//
//	promote <email>
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"tripplanner/internal/config"
	"tripplanner/internal/model"
	mysqlClient "tripplanner/internal/platform/mysql"
	"tripplanner/internal/repository"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: promote <email>")
		os.Exit(2)
	}
	email := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	db, err := mysqlClient.New(context.Background(), cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("connect mysql failed: %v", err)
	}

	users := repository.NewUserRepository(db)
	user, err := users.GetByEmail(email)
	if err != nil {
		log.Fatalf("lookup user failed: %v", err)
	}
	if user == nil {
		fmt.Fprintf(os.Stderr, "user with email %q not found\n", email)
		os.Exit(1)
	}

	if user.HasRole(model.RoleAdmin) {
		fmt.Printf("user %q is already an admin\n", email)
		return
	}

	user.Roles = append(user.Roles, model.RoleAdmin)
	if err := users.Update(user); err != nil {
		log.Fatalf("promote user failed: %v", err)
	}
	fmt.Printf("user %q promoted to admin\n", email)
}
