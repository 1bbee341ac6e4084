package finfo_test

import (
	"testing"

	"finfo/internal/finfo"
	"finfo/internal/testutil"
)

func TestPathList_Add(t *testing.T) {
	t.Run("classifies files and directories into buckets", func(t *testing.T) {
		fsys := testutil.NewMockFilesystem()
		fsys.AddFile("/data/a.txt", 1)
		fsys.AddDirectory("/data/docs")

		list := finfo.NewPathList(fsys)
		if err := list.Add("/data/docs"); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		if err := list.Add("/data/a.txt"); err != nil {
			t.Fatalf("Add() error = %v", err)
		}

		// Combined index space: file bucket first, then directories.
		got0, _ := list.At(0)
		got1, _ := list.At(1)
		if got0 != "/data/a.txt" {
			t.Errorf("At(0) = %q, want %q", got0, "/data/a.txt")
		}
		if got1 != "/data/docs" {
			t.Errorf("At(1) = %q, want %q", got1, "/data/docs")
		}
	})

	t.Run("symlink to a regular file counts as a file", func(t *testing.T) {
		fsys := testutil.NewMockFilesystem()
		fsys.AddFile("/data/real.txt", 1)
		fsys.AddSymlink("/data/link", "/data/real.txt")

		list := finfo.NewPathList(fsys)
		if err := list.Add("/data/link"); err != nil {
			t.Fatalf("Add() error = %v", err)
		}

		got, _ := list.At(0)
		if got != "/data/link" {
			t.Errorf("At(0) = %q, want the link in the file bucket", got)
		}
	})

	t.Run("nonexistent path lands in the directory bucket", func(t *testing.T) {
		fsys := testutil.NewMockFilesystem()
		fsys.AddFile("/data/a.txt", 1)

		list := finfo.NewPathList(fsys)
		if err := list.Add("/data/a.txt"); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		if err := list.Add("/missing"); err != nil {
			t.Fatalf("Add() error = %v", err)
		}

		got, _ := list.At(1)
		if got != "/missing" {
			t.Errorf("At(1) = %q, want %q", got, "/missing")
		}
	})

	t.Run("rejects empty path", func(t *testing.T) {
		list := finfo.NewPathList(testutil.NewMockFilesystem())
		if err := list.Add(""); err == nil {
			t.Fatal("Add(\"\") expected error")
		}
	})
}

func TestPathList_Sort(t *testing.T) {
	fsys := testutil.NewMockFilesystem()
	for _, p := range []string{"/e", "/d", "/c"} {
		fsys.AddFile(p, 1)
	}
	fsys.AddDirectory("/zdir")
	fsys.AddDirectory("/adir")

	list := finfo.NewPathList(fsys)
	for _, p := range []string{"/e", "/c", "/zdir", "/d", "/adir"} {
		if err := list.Add(p); err != nil {
			t.Fatalf("Add(%q) error = %v", p, err)
		}
	}

	list.Sort()

	want := []string{"/c", "/d", "/e", "/adir", "/zdir"}
	for i, w := range want {
		got, err := list.At(i)
		if err != nil {
			t.Fatalf("At(%d) error = %v", i, err)
		}
		if got != w {
			t.Errorf("At(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestPathList_At(t *testing.T) {
	fsys := testutil.NewMockFilesystem()
	fsys.AddFile("/a", 1)

	list := finfo.NewPathList(fsys)
	if err := list.Add("/a"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if got := list.Size(); got != 1 {
		t.Fatalf("Size() = %d, want 1", got)
	}

	if _, err := list.At(1); err == nil {
		t.Error("At(1) expected out-of-range error")
	}
	if _, err := list.At(-1); err == nil {
		t.Error("At(-1) expected out-of-range error")
	}
}
