// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/lerkeveld/underground/internal/service"
	"github.com/lerkeveld/underground/internal/validators"
	"github.com/lerkeveld/underground/models"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errMissingFlag    = errors.New("missing required flag")
)

type command struct {
	name    string
	summary string
	run     func(a *app, ctx context.Context, args []string) error
}

var commands = []command{
	{"user-add", "create an account, a random password is generated unless -password is given", (*app).userAdd},
	{"group-add", "create a group", (*app).groupAdd},
	{"orderdate-add", "add a bread delivery date", (*app).orderDateAdd},
	{"orderdate-deactivate", "stop orders for a delivery date", (*app).orderDateDeactivate},
	{"breadtype-add", "add a bread type with its price in cents", (*app).breadTypeAdd},
	{"materialtype-add", "add a piece of materiaal", (*app).materialTypeAdd},
}

type app struct {
	users     service.UserService
	bread     service.BreadService
	material  service.MaterialService
	validator validators.Validator
	out       io.Writer
}

func newApp(services *service.Services, validator validators.Validator, out io.Writer) *app {
	return &app{
		users:     services.UserService,
		bread:     services.BreadService,
		material:  services.MaterialService,
		validator: validator,
		out:       out,
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: admin <command> [flags]")
	fmt.Fprintln(w)
	for _, c := range commands {
		fmt.Fprintf(w, "  %-22s %s\n", c.name, c.summary)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		usage(a.out)
		return errUnknownCommand
	}

	for _, c := range commands {
		if c.name == args[0] {
			return c.run(a, ctx, args[1:])
		}
	}

	usage(a.out)
	return fmt.Errorf("%w: %s", errUnknownCommand, args[0])
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func required(values map[string]string) error {
	for name, value := range values {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: -%s", errMissingFlag, name)
		}
	}
	return nil
}

func (a *app) userAdd(ctx context.Context, args []string) error {
	fs := newFlagSet("user-add", a.out)
	var (
		user     models.User
		password = fs.String("password", "", "initial password, random when empty")
		room     = fs.Int("room", -1, "room number")
		member   = fs.String("member", "", "membership: yes, no or empty when unknown")
		groups   = fs.String("groups", "", "comma separated groups to join")
	)
	fs.StringVar(&user.Email, "email", "", "email address (required)")
	fs.StringVar(&user.FirstName, "first", "", "first name (required)")
	fs.StringVar(&user.LastName, "last", "", "last name (required)")
	fs.StringVar(&user.Phone, "phone", "", "phone number")
	fs.StringVar(&user.Corridor, "corridor", "", "corridor")
	fs.BoolVar(&user.IsAdmin, "admin", false, "grant admin rights")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *room >= 0 {
		user.Room = room
	}
	switch *member {
	case "yes":
		user.IsMember = new(bool)
		*user.IsMember = true
	case "no":
		user.IsMember = new(bool)
	case "":
	default:
		return fmt.Errorf("-member must be yes or no, got %q", *member)
	}

	if err := a.validator.Validate(ctx, user); err != nil {
		return err
	}

	created, generated, err := a.users.CreateUser(ctx, user, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "created user %s (id %d)\n", created.Email, created.ID)
	if *password == "" {
		fmt.Fprintf(a.out, "password: %s\n", generated)
	}

	for _, group := range strings.Split(*groups, ",") {
		if group = strings.TrimSpace(group); group == "" {
			continue
		}
		if err = a.users.AddUserToGroup(ctx, created.Email, group); err != nil {
			return fmt.Errorf("joining group %s: %w", group, err)
		}
		fmt.Fprintf(a.out, "added to group %s\n", group)
	}
	return nil
}

func (a *app) groupAdd(ctx context.Context, args []string) error {
	fs := newFlagSet("group-add", a.out)
	name := fs.String("name", "", "group name (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(map[string]string{"name": *name}); err != nil {
		return err
	}

	group, err := a.users.CreateGroup(ctx, strings.TrimSpace(*name))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "created group %s (id %d)\n", group.Name, group.ID)
	return nil
}

func parseDateFlag(raw string) (models.Date, error) {
	if err := required(map[string]string{"date": raw}); err != nil {
		return models.Date{}, err
	}
	date, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, fmt.Errorf("-date must look like 2006-01-02: %w", err)
	}
	return date, nil
}

func (a *app) orderDateAdd(ctx context.Context, args []string) error {
	fs := newFlagSet("orderdate-add", a.out)
	raw := fs.String("date", "", "delivery date, YYYY-MM-DD (required)")
	inactive := fs.Bool("inactive", false, "add the date without accepting orders")
	if err := fs.Parse(args); err != nil {
		return err
	}
	date, err := parseDateFlag(*raw)
	if err != nil {
		return err
	}

	orderDate, err := a.bread.CreateOrderDate(ctx, date, !*inactive)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "added order date %s (id %d)\n", orderDate.Date, orderDate.ID)
	return nil
}

func (a *app) orderDateDeactivate(ctx context.Context, args []string) error {
	fs := newFlagSet("orderdate-deactivate", a.out)
	raw := fs.String("date", "", "delivery date, YYYY-MM-DD (required)")
	activate := fs.Bool("activate", false, "reopen the date instead")
	if err := fs.Parse(args); err != nil {
		return err
	}
	date, err := parseDateFlag(*raw)
	if err != nil {
		return err
	}

	if err = a.bread.SetOrderDateActive(ctx, date, *activate); err != nil {
		return err
	}
	if *activate {
		fmt.Fprintf(a.out, "order date %s activated\n", date)
	} else {
		fmt.Fprintf(a.out, "order date %s deactivated\n", date)
	}
	return nil
}

func (a *app) breadTypeAdd(ctx context.Context, args []string) error {
	fs := newFlagSet("breadtype-add", a.out)
	name := fs.String("name", "", "bread type name (required)")
	price := fs.Int64("price", -1, "price in euro cents (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(map[string]string{"name": *name}); err != nil {
		return err
	}
	if *price < 0 {
		return fmt.Errorf("%w: -price", errMissingFlag)
	}

	breadType, err := a.bread.CreateBreadType(ctx, strings.TrimSpace(*name), *price)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "added bread type %s at %d cents (id %d)\n", breadType.Name, breadType.Price, breadType.ID)
	return nil
}

func (a *app) materialTypeAdd(ctx context.Context, args []string) error {
	fs := newFlagSet("materialtype-add", a.out)
	name := fs.String("name", "", "material name (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(map[string]string{"name": *name}); err != nil {
		return err
	}

	materialType, err := a.material.CreateMaterialType(ctx, strings.TrimSpace(*name))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "added material %s (id %d)\n", materialType.Name, materialType.ID)
	return nil
}
