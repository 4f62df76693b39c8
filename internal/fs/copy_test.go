package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCopyFileContentAndMode(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.py")
	dst := filepath.Join(dir, "dst.py")

	if err := os.WriteFile(src, []byte("print('hi')"), 0o750); err != nil {
		t.Fatal(err)
	}

	f := New()
	if err := f.CopyFile(context.Background(), src, dst); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "print('hi')" {
		t.Errorf("dst content = %q, want %q", data, "print('hi')")
	}

	st, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if st.Mode().Perm() != 0o750 {
		t.Errorf("dst mode = %v, want 0750", st.Mode().Perm())
	}
}

func TestCopyFilePreservesModTime(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.py")
	dst := filepath.Join(dir, "dst.py")

	if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	mtime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(src, mtime, mtime); err != nil {
		t.Fatal(err)
	}

	f := New()
	if err := f.CopyFile(context.Background(), src, dst); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	st, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !st.ModTime().Equal(mtime) {
		t.Errorf("dst mtime = %v, want %v", st.ModTime(), mtime)
	}
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()

	f := New()
	err := f.CopyFile(context.Background(), filepath.Join(dir, "nope"), filepath.Join(dir, "dst"))
	if err == nil {
		t.Error("CopyFile() of missing source should fail")
	}
}

func TestSourceChanged(t *testing.T) {
	base := FileInfo{Size: 10, MTime: time.Unix(100, 0), Inode: 7}

	cases := []struct {
		name string
		now  FileInfo
		want bool
	}{
		{"identical", FileInfo{Size: 10, MTime: time.Unix(100, 0), Inode: 7}, false},
		{"grew", FileInfo{Size: 11, MTime: time.Unix(100, 0), Inode: 7}, true},
		{"newer mtime", FileInfo{Size: 10, MTime: time.Unix(200, 0), Inode: 7}, true},
		{"replaced inode", FileInfo{Size: 10, MTime: time.Unix(100, 0), Inode: 8}, true},
		{"no inode info", FileInfo{Size: 10, MTime: time.Unix(100, 0), Inode: 0}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sourceChanged(base, tc.now); got != tc.want {
				t.Errorf("sourceChanged() = %v, want %v", got, tc.want)
			}
		})
	}
}
