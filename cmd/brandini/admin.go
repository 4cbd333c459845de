package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"syscall"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/brandini/brandini/internal/adapter/postgres"
	"github.com/brandini/brandini/internal/config"
	"github.com/brandini/brandini/internal/domain"
	"github.com/brandini/brandini/internal/domain/shop"
	"github.com/brandini/brandini/internal/domain/user"
	"github.com/brandini/brandini/internal/service"
)

// runAdmin dispatches admin subcommands.
func runAdmin(args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "--help" {
		printAdminHelp()
		return nil
	}

	switch args[0] {
	case "create-user":
		return runAdminCreateUser(args[1:])
	case "reset-password":
		return runAdminResetPassword(args[1:])
	case "provision-shop":
		return runAdminProvisionShop(args[1:])
	case "list-shops":
		return runAdminListShops(args[1:])
	case "list-users":
		return runAdminListUsers(args[1:])
	default:
		printAdminHelp()
		return fmt.Errorf("unknown admin command: %s", args[0])
	}
}

func printAdminHelp() {
	fmt.Fprintf(os.Stderr, `Usage: brandini admin <command> [options]

Commands:
  create-user      Create a new user (owner or platform admin)
  reset-password   Reset a user's password
  provision-shop   Provision a storefront for an owner
  list-shops       List all shops
  list-users       List all users
  help             Show this help message

Examples:
  brandini admin create-user --email amira@example.com --name "Amira"
  brandini admin provision-shop --name "Shoppy" --subdomain shoppy --owner 7
  brandini admin reset-password --email amira@example.com
  brandini admin list-shops
`)
}

type adminDeps struct {
	auth  *service.AuthService
	shops *service.ShopService
}

func loadAdminDeps() (*adminDeps, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.Postgres)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	store := postgres.NewStore(pool)
	deps := &adminDeps{
		auth:  service.NewAuthService(store, &cfg.Auth),
		shops: service.NewShopService(store),
	}
	return deps, pool.Close, nil
}

func runAdminCreateUser(args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ContinueOnError)
	email := fs.String("email", "", "user email address (required)")
	name := fs.String("name", "", "user display name (required)")
	password := fs.String("password", "", "password (prompted if not provided)") //nolint:gosec // CLI flag
	admin := fs.Bool("admin", false, "grant the platform admin role")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		return fmt.Errorf("--email is required")
	}
	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	pass, err := passwordFromFlagOrPrompt(*password)
	if err != nil {
		return err
	}

	role := user.RoleOwner
	if *admin {
		role = user.RolePlatformAdmin
	}

	deps, cleanup, err := loadAdminDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	u, err := deps.auth.Register(context.Background(), &user.CreateRequest{
		Email:    *email,
		Name:     *name,
		Password: pass,
		Role:     role,
	})
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	fmt.Fprintf(os.Stderr, "User created: %s (id=%d, role=%s)\n", u.Email, u.ID, u.Role)
	return nil
}

func runAdminResetPassword(args []string) error {
	fs := flag.NewFlagSet("reset-password", flag.ContinueOnError)
	email := fs.String("email", "", "user email address (required)")
	password := fs.String("password", "", "new password (prompted if not provided)") //nolint:gosec // CLI flag
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		return fmt.Errorf("--email is required")
	}

	newPass, err := passwordFromFlagOrPrompt(*password)
	if err != nil {
		return err
	}

	deps, cleanup, err := loadAdminDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := deps.auth.ResetPassword(context.Background(), *email, newPass); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Password reset successfully for %s\n", *email)
	return nil
}

func runAdminProvisionShop(args []string) error {
	fs := flag.NewFlagSet("provision-shop", flag.ContinueOnError)
	name := fs.String("name", "", "shop display name (required)")
	subdomain := fs.String("subdomain", "", "shop subdomain (required)")
	owner := fs.Int64("owner", 0, "owner user id (required)")
	whatsapp := fs.String("whatsapp", "", "shop WhatsApp number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" || *subdomain == "" || *owner == 0 {
		return fmt.Errorf("--name, --subdomain and --owner are required")
	}

	deps, cleanup, err := loadAdminDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	sh, err := deps.shops.Create(context.Background(), shop.CreateRequest{
		Name:           *name,
		Subdomain:      *subdomain,
		OwnerID:        domain.ID(*owner),
		WhatsAppNumber: *whatsapp,
	})
	if err != nil {
		return fmt.Errorf("provision shop: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Shop provisioned: %s (id=%d, subdomain=%s)\n", sh.Name, sh.ID, sh.Subdomain)
	return nil
}

func runAdminListShops(args []string) error {
	fs := flag.NewFlagSet("list-shops", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	deps, cleanup, err := loadAdminDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	shops, err := deps.shops.List(context.Background())
	if err != nil {
		return fmt.Errorf("list shops: %w", err)
	}

	if len(shops) == 0 {
		fmt.Println("No shops found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSUBDOMAIN\tOWNER\tACTIVE")
	for _, sh := range shops {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%v\n", sh.ID, sh.Name, sh.Subdomain, sh.OwnerID, sh.Active)
	}
	return w.Flush()
}

func runAdminListUsers(args []string) error {
	fs := flag.NewFlagSet("list-users", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	deps, cleanup, err := loadAdminDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	users, err := deps.auth.ListUsers(context.Background())
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	if len(users) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tNAME\tROLE\tENABLED")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%v\n", u.ID, u.Email, u.Name, u.Role, u.Enabled)
	}
	return w.Flush()
}

func passwordFromFlagOrPrompt(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	pass, err := promptPassword("Password: ")
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if pass != confirm {
		return "", fmt.Errorf("passwords do not match")
	}
	return pass, nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
