// Public domain.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"gonum.org/v1/plot/vg"

	"github.com/soniakeys/refract"
)

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "grafico_experimento_f_prisma.png")
	if err := run(out, false, 4*vg.Inch, 3*vg.Inch); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Fatal("empty image")
	}
}

func TestRunBadPath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "no", "such", "dir.png")
	if err := run(out, false, 4*vg.Inch, 3*vg.Inch); err == nil {
		t.Fatal("want error")
	}
}

func TestPrintTableAligned(t *testing.T) {
	m := refract.PrismF()
	sinI, sinR := m.Sines()
	var buf bytes.Buffer
	printTable(&buf, m, sinI, sinR)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != len(m)+1 {
		t.Fatalf("%d lines, want %d", len(lines), len(m)+1)
	}
	want := utf8.RuneCountInString(lines[0])
	for i, l := range lines[1:] {
		if n := utf8.RuneCountInString(l); n != want {
			t.Errorf("row %d is %d runes, header %d:\n%s\n%s", i, n, want, lines[0], l)
		}
	}
	if !strings.HasSuffix(lines[len(lines)-1], "0.7071  0.9981") {
		t.Errorf("last row %q", lines[len(lines)-1])
	}
}
