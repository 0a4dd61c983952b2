package numfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/guiguan/caster"
)

// Some constants for batch size defaults
const (
	oneKb    = 1024
	tenKb    = 10240
	oneMb    = 1048576
	maxBatch = 65536
)

var (
	// ErrNotRegular signals that a path does not denote a regular file.
	ErrNotRegular = errors.New("numfile: not a regular file")
	// ErrSyntax signals a token which is not a decimal integer.
	ErrSyntax = errors.New("numfile: syntax error")
	// ErrConsumed signals that the numbers of a file have already been read.
	ErrConsumed = errors.New("numfile: numbers already consumed")
)

// Options tune the background loading of a number file.
// The zero value selects defaults depending on the file size.
type Options struct {
	BatchSize int // numbers per prefetched batch
	Prefetch  int // batches buffered ahead of the consumer
}

func (o Options) normalized(size int64) Options {
	if o.BatchSize <= 0 || o.BatchSize > maxBatch {
		if size < oneKb {
			o.BatchSize = 16
		} else if size < tenKb {
			o.BatchSize = 64
		} else if size < oneMb {
			o.BatchSize = 512
		} else {
			o.BatchSize = 4096
		}
	}
	if o.Prefetch <= 0 {
		o.Prefetch = 4
	}
	return o
}

// File represents an OS file of numbers which is being loaded.
type File struct {
	path      string             // file name
	info      os.FileInfo        // result from Stat(path)
	file      *os.File           // file handle
	cast      *caster.Caster     // broadcaster for async batch loading
	sub       <-chan interface{} // subscription of the consumer
	mu        sync.Mutex         // guards lastError and consumed
	lastError error              // remember last I/O or syntax error
	consumed  bool
	closing   sync.Once
}

// endOfFile is published after the last batch.
type endOfFile struct{}

// Open opens a number file and starts loading it in the background.
//
// Loading stops at the first syntax or I/O error. Numbers read up to that
// point are delivered, and Err reports the error afterwards.
func Open(name string, opts Options) (*File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	opts = opts.normalized(fi.Size())
	f := &File{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(context.Background()), // we will broadcast batches when they are parsed
	}
	// subscribe before loading starts, so no batch is missed
	sub, ok := f.cast.Sub(context.Background(), uint(opts.Prefetch))
	if !ok {
		file.Close()
		return nil, fmt.Errorf("numfile: cannot subscribe to loader of %s", name)
	}
	f.sub = sub
	tracer().Debugf("numfile: loading %s (%d bytes) in batches of %d", name, fi.Size(), opts.BatchSize)
	go f.load(opts.BatchSize)
	return f, nil
}

// ReadAll reads all numbers of a file.
func ReadAll(name string) ([]int64, error) {
	f, err := Open(name, Options{})
	if err != nil {
		return nil, err
	}
	var numbers []int64
	for n := range f.Numbers() {
		numbers = append(numbers, n)
	}
	return numbers, f.Err()
}

// Numbers returns the numbers of the file in file order. The sequence may be
// consumed only once; breaking out of it closes the file.
func (f *File) Numbers() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		f.mu.Lock()
		if f.consumed {
			f.mu.Unlock()
			f.setError(ErrConsumed)
			return
		}
		f.consumed = true
		f.mu.Unlock()
		defer f.Close()
		for msg := range f.sub {
			switch m := msg.(type) {
			case endOfFile:
				return
			case []int64:
				for _, n := range m {
					if !yield(n) {
						return
					}
				}
			}
		}
	}
}

// Err returns the first error encountered while loading, if any.
func (f *File) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastError
}

// Close stops loading. It is safe to call Close more than once.
func (f *File) Close() error {
	f.closing.Do(func() {
		f.cast.Close()
		// unblock a loader which is still delivering to our subscription
		go func(ch <-chan interface{}) {
			for range ch {
			}
		}(f.sub)
		tracer().Debugf("numfile: closed %s", f.path)
	})
	return nil
}

func (f *File) setError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lastError == nil {
		f.lastError = err
	}
}

// --- File loading goroutine ------------------------------------------------

func (f *File) load(batchSize int) {
	defer f.file.Close()
	scanner := bufio.NewScanner(f.file)
	batch := make([]int64, 0, batchSize)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, tok := range strings.FieldsFunc(line, isSeparator) {
			n, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				tracer().Errorf("numfile: %s:%d: cannot read %q", f.path, lineno, tok)
				f.setError(fmt.Errorf("%w: %s:%d: %q", ErrSyntax, f.path, lineno, tok))
				f.finish(batch)
				return
			}
			batch = append(batch, n)
			if len(batch) == batchSize {
				if !f.cast.Pub(batch) {
					return // closed by consumer
				}
				batch = make([]int64, 0, batchSize)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		f.setError(fmt.Errorf("numfile: error loading %s: %w", f.path, err))
	}
	f.finish(batch)
}

// finish publishes a trailing partial batch and the end-of-file marker.
func (f *File) finish(batch []int64) {
	if len(batch) > 0 && !f.cast.Pub(batch) {
		return
	}
	f.cast.Pub(endOfFile{})
}

func isSeparator(r rune) bool {
	return r == ',' || r == ';' || unicode.IsSpace(r)
}
