package clone_test

import (
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
)

var spewer = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type node struct {
	name  string
	next  *node
	peers []*node
	tags  map[string]*node
	meta  any
}

type audit struct {
	created *time.Time
	by      string
}

type document struct {
	audit
	Title    string
	Body     []byte
	Sections [2]*node
	Index    map[*node]int
	Owner    *node
	Editor   *node
	OnSave   func() string
	updates  chan string
	mu       sync.Mutex
	at       time.Time
}

func newDocument() *document {
	root := &node{name: "root"}
	leaf := &node{name: "leaf", next: root}
	root.next = leaf
	root.peers = []*node{leaf, root}
	root.tags = map[string]*node{"self": root, "leaf": leaf}
	leaf.meta = root

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	return &document{
		audit:    audit{created: &created, by: "ada"},
		Title:    "notes",
		Body:     []byte("hello"),
		Sections: [2]*node{root, leaf},
		Index:    map[*node]int{root: 1, leaf: 2},
		Owner:    root,
		Editor:   root,
		OnSave:   func() string { return "saved" },
		updates:  make(chan string, 1),
		at:       created.In(time.FixedZone("CET", 3600)),
	}
}
