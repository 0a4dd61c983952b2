package numfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "numbers.txt")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err.Error())
	}
	return name
}

func TestReadAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subsums")
	defer teardown()
	//
	name := writeFile(t, "# weights\n1, 2,3\n\n  4 5;6\n# trailing comment\n")
	numbers, err := ReadAll(name)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !slices.Equal(numbers, []int64{1, 2, 3, 4, 5, 6}) {
		t.Errorf("expected [1..6], have %v", numbers)
	}
}

func TestSmallBatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subsums")
	defer teardown()
	//
	name := writeFile(t, "10 20 30\n40 50\n")
	f, err := Open(name, Options{BatchSize: 2, Prefetch: 1})
	if err != nil {
		t.Fatal(err.Error())
	}
	var numbers []int64
	for n := range f.Numbers() {
		numbers = append(numbers, n)
	}
	if f.Err() != nil {
		t.Fatalf("unexpected error: %v", f.Err())
	}
	if !slices.Equal(numbers, []int64{10, 20, 30, 40, 50}) {
		t.Errorf("expected 5 numbers in file order, have %v", numbers)
	}
}

func TestSyntaxError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subsums")
	defer teardown()
	//
	name := writeFile(t, "1 2\nthree 4\n")
	numbers, err := ReadAll(name)
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected syntax error, have %v", err)
	}
	if !slices.Equal(numbers, []int64{1, 2}) {
		t.Errorf("expected numbers before the error to be delivered, have %v", numbers)
	}
}

func TestOpenRejectsNonRegular(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subsums")
	defer teardown()
	//
	if _, err := Open(t.TempDir(), Options{}); !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected directory to be rejected, have %v", err)
	}
	missing := filepath.Join(t.TempDir(), "missing.txt")
	if _, err := Open(missing, Options{}); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected missing file to be reported, have %v", err)
	}
}

func TestEarlyBreak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subsums")
	defer teardown()
	//
	content := make([]byte, 0, 4096)
	for i := 0; i < 1000; i++ {
		content = append(content, "7\n"...)
	}
	f, err := Open(writeFile(t, string(content)), Options{BatchSize: 8, Prefetch: 1})
	if err != nil {
		t.Fatal(err.Error())
	}
	count := 0
	for range f.Numbers() {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("expected to stop after 3 numbers, have %d", count)
	}
	if err := f.Close(); err != nil {
		t.Errorf("second close failed: %v", err)
	}
}

func TestNumbersConsumedOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subsums")
	defer teardown()
	//
	f, err := Open(writeFile(t, "1 2 3"), Options{})
	if err != nil {
		t.Fatal(err.Error())
	}
	first := 0
	for range f.Numbers() {
		first++
	}
	second := 0
	for range f.Numbers() {
		second++
	}
	if first != 3 || second != 0 {
		t.Errorf("expected 3 then 0 numbers, have %d and %d", first, second)
	}
	if !errors.Is(f.Err(), ErrConsumed) {
		t.Errorf("expected ErrConsumed, have %v", f.Err())
	}
}
