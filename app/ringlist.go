package main

import (
	"github.com/karlseguin/ringlist"
	"github.com/wsxiaoys/terminal/color"
)

type Student struct {
	first string
	last  string
	grade int
	id    uint32
}

func main() {
	released := 0
	release := func(*Student) {
		released++
	}

	l := ringlist.New[*Student](ringlist.Configure())
	section("An empty list prints nothing")
	l.ForEach(printStudent)

	l.PushFront(&Student{"Nick", "Nack", 56, 239402128})
	l.PushBack(&Student{"Some", "Student", 92, 123456789})
	l.PushBack(&Student{"Another", "Student", 78, 987654321})
	l.PushFront(&Student{"Nick", "Nack", 56, 239402128})
	section("Four students")
	l.ForEach(printStudent)

	section("Remove index 1")
	if err := l.RemoveAt(1, release); err != nil {
		color.Println("@r" + err.Error())
	}
	l.ForEach(printStudent)

	nick := &Student{"Nick", "Nack", 56, 239402128}
	color.Printf("@ycontains Nick Nack: %v\n", l.Contains(nick, same))
	color.Printf("@yremoved %d matching Nick Nack\n", l.RemoveMatching(nick, same, release))

	l.PushBack(nick)
	n := l.RemoveFunc(func(s *Student) bool { return s.last == "Student" }, release)
	color.Printf("@yremoved %d named Student\n", n)
	l.ForEach(printStudent)

	l.Clear(release)
	color.Printf("@gempty: %v, released: %d\n", l.IsEmpty(), released)
}

func same(a, b *Student) bool {
	return a.first == b.first && a.last == b.last && a.grade == b.grade && a.id == b.id
}

func section(title string) {
	color.Println("@{c}" + title)
}

func printStudent(s *Student) {
	color.Printf("Student: %s %s\nGrade: %d\nId: %d\n", s.first, s.last, s.grade, s.id)
}
