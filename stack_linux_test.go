// +build linux,cgo

package auxv

import (
	"testing"

	"github.com/elwinar/auxv/pkg/environx"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/sys/unix"
)

func TestStack_EqualsProcfs(t *testing.T) {
	it, err := Stack(environx.Address())
	if err != nil {
		t.Fatalf(`Stack(): unexpected error: %s`, err)
	}
	var fromStack []Pair
	for it.Next() {
		fromStack = append(fromStack, it.Pair())
	}

	pit, err := IterateSelf()
	if err != nil {
		t.Fatalf(`IterateSelf(): unexpected error: %s`, err)
	}
	fromProcfs := pairs(t, pit)

	if !cmp.Equal(fromProcfs, fromStack) {
		t.Errorf(`Stack(): result differs from procfs`)
		t.Log(cmp.Diff(fromProcfs, fromStack))
	}
}

func TestStack_UIDMatchesSyscall(t *testing.T) {
	it, err := Stack(environx.Address())
	if err != nil {
		t.Fatalf(`Stack(): unexpected error: %s`, err)
	}

	for it.Next() {
		p := it.Pair()
		if p.Type != TypeUID {
			continue
		}
		if int(p.Value) != unix.Getuid() {
			t.Errorf(`Stack(): wanted uid %d, got %d`, unix.Getuid(), p.Value)
		}
		return
	}
	t.Errorf(`Stack(): no uid entry found`)
}

func TestWord_ReadString(t *testing.T) {
	vector, err := SearchSelf(TypePlatform)
	if err != nil {
		t.Fatalf(`SearchSelf(platform): unexpected error: %s`, err)
	}
	platform, ok := vector[TypePlatform]
	if !ok {
		t.Skip(`no platform entry in the vector`)
	}

	if s := platform.ReadString(); len(s) == 0 {
		t.Errorf(`Word.ReadString(): wanted a platform name, got an empty string`)
	}
}
