package textio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/roundtour/roundtour/textio"
)

func TestWriteLines_ReadLines_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stops.txt")
	want := []string{"Auckland Airport", "St Margarets", "Aria Gardens"}

	if err := textio.WriteLines(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := textio.ReadLines(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != len(want) {
		t.Fatalf("ReadLines = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ReadLines[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestWriteFloats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "distances.txt")
	if err := textio.WriteFloats(path, []float64{5, 3.25, 8.5}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "5\n3.25\n8.5\n" {
		t.Fatalf("file contents = %q", string(data))
	}
}

func TestReadLines_Missing(t *testing.T) {
	if _, err := textio.ReadLines(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
