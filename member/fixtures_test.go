package member_test

import (
	"errors"
	"strings"
)

type base struct {
	ID   int
	name string
}

func (b base) Describe() string   { return "base:" + b.name }
func (b *base) Rename(name string) { b.name = name }
func (b base) Kind() string       { return "base" }

type derived struct {
	base
	Title string
	_     int
}

func (d derived) Kind() string { return "derived" }

type shape struct{}

func (shape) Area(scale int) float64 { return float64(scale) }

type square struct {
	shape
	Side float64
}

func (s square) Area() float64 { return s.Side * s.Side }

type left struct{}

func (left) Hello() string { return "left" }

type right struct{}

func (right) Hello() string { return "right" }

type both struct {
	left
	right
}

type node struct {
	*node
	Val int
}

type greeter interface {
	Greet() string
}

type host struct {
	greeter
	Name string
}

type english struct{}

func (english) Greet() string { return "hello" }

type inner struct{ X int }

type outer struct{ *inner }

type calc struct{ total int }

func (c *calc) Add(values ...int) int {
	for _, v := range values {
		c.total += v
	}

	return c.total
}

func (c calc) Div(a, b int) (int, error) {
	if b == 0 {
		return 0, errors.New("division by zero")
	}

	return a / b, nil
}

func (c calc) Boom() { panic("boom") }

func (c calc) Join(sep string, parts ...string) string { return strings.Join(parts, sep) }

func names[M interface{ Name() string }](members []M) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.Name()
	}

	return out
}
