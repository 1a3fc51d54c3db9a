package user

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Directory is an in-memory user list used when no database is configured.
type Directory struct {
	users []User
	byID  map[string]User
}

func NewDirectory(users []User) *Directory {
	d := &Directory{users: append([]User{}, users...), byID: make(map[string]User, len(users))}
	for _, u := range users {
		d.byID[u.ID] = u
	}
	return d
}

func (d *Directory) List() []User {
	return append([]User{}, d.users...)
}

func (d *Directory) Get(id string) (User, bool) {
	u, ok := d.byID[id]
	return u, ok
}

func (d *Directory) ListUsers(_ context.Context) ([]User, error) {
	return d.List(), nil
}

func (d *Directory) GetUser(_ context.Context, id string) (User, error) {
	u, ok := d.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

// Principal is the authenticated caller of a catalog operation.
type Principal struct {
	UserID string
	Admin  bool
}

func DemoUsers() []User {
	return []User{
		{ID: "jsmith", Name: "John Smith", Email: "jsmith@company.com"},
		{ID: "analyst2", Name: "Sarah Chen", Email: "schen@company.com"},
		{ID: "mwilson", Name: "Mike Wilson", Email: "mwilson@company.com"},
		{ID: "klee", Name: "Karen Lee", Email: "klee@company.com"},
		{ID: "tjohnson", Name: "Tom Johnson", Email: "tjohnson@company.com"},
		{ID: "agarcia", Name: "Ana Garcia", Email: "agarcia@company.com"},
		{ID: "rpatil", Name: "Raj Patil", Email: "rpatil@company.com"},
		{ID: "lnguyen", Name: "Lisa Nguyen", Email: "lnguyen@company.com"},
		{ID: "dkumar", Name: "Dev Kumar", Email: "dkumar@company.com"},
		{ID: "ewright", Name: "Emma Wright", Email: "ewright@company.com"},
		{ID: "bmartin", Name: "Brian Martin", Email: "bmartin@company.com"},
		{ID: "jdavis", Name: "Julia Davis", Email: "jdavis@company.com"},
	}
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok && p.UserID != ""
}
