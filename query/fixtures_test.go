package query_test

import (
	"errors"

	"mirror/member"
)

type entity struct {
	ID      int `json:"id"`
	created string
}

func (e entity) Identity() int       { return e.ID }
func (e *entity) Touch(stamp string) { e.created = stamp }

type user struct {
	entity
	Name  string `json:"name"`
	Email string `json:"email"`
	age   int
	Tags  []string
}

func (u user) Greeting() string { return "hi " + u.Name }
func (u user) Panic()           { panic("boom") }

func (u *user) Rename(name string) error {
	if name == "" {
		return errors.New("empty name")
	}

	u.Name = name

	return nil
}

func newUser(name string) *user { return &user{Name: name} }
func defaultUser() user         { return user{Name: "anon"} }

func init() {
	member.MustRegisterConstructor(newUser)
	member.MustRegisterConstructor(defaultUser)
}

func names[M member.Member](members []M) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.Name()
	}

	return out
}
