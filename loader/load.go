package loader

import (
	"bufio"
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/guiguan/caster"
	"github.com/npillmayer/isotree"
	"github.com/npillmayer/isotree/tree234"
)

// ErrJobStarted is flagged if a job is started more than once.
var ErrJobStarted = errors.New("loader: job already started")

// Options configures a loading job.
type Options struct {
	// ProgressEvery is the number of input lines between progress messages.
	ProgressEvery int
}

const defaultProgressEvery = 1000

func (opts Options) normalized() Options {
	if opts.ProgressEvery <= 0 {
		opts.ProgressEvery = defaultProgressEvery
	}
	return opts
}

// Progress is the message type broadcast to subscribers of a job.
type Progress struct {
	Lines    int   // input lines read so far
	Inserted int   // keys inserted so far; duplicates are not counted
	Done     bool  // set for the final message
	Err      error // set if loading stopped with an error
}

// Job loads keys of type T into a 2-3-4 tree.
type Job[T any] struct {
	src     io.Reader
	closer  io.Closer
	parse   func(string) (T, error)
	opts    Options
	cast    *caster.Caster // broadcaster for progress messages
	tree    *tree234.Tree[T]
	started atomic.Bool
	done    chan struct{}
	err     error
}

// NewJob creates a job reading keys from r. parse converts a line to a key and
// compare orders keys.
func NewJob[T any](r io.Reader, parse func(string) (T, error), compare func(a, b T) int,
	opts *Options) (*Job[T], error) {
	//
	if r == nil || parse == nil {
		return nil, isotree.ErrIllegalArguments
	}
	tree, err := tree234.NewFunc(compare)
	if err != nil {
		return nil, err
	}
	var o Options
	if opts != nil {
		o = *opts
	}
	return &Job[T]{
		src:   r,
		parse: parse,
		opts:  o.normalized(),
		cast:  caster.New(nil),
		tree:  tree,
		done:  make(chan struct{}),
	}, nil
}

// NewStringJob creates a job for string keys.
func NewStringJob(r io.Reader, opts *Options) (*Job[string], error) {
	return NewJob(r, func(s string) (string, error) { return s, nil }, cmp.Compare[string], opts)
}

// NewIntJob creates a job for decimal integer keys.
func NewIntJob(r io.Reader, opts *Options) (*Job[int], error) {
	return NewJob(r, strconv.Atoi, cmp.Compare[int], opts)
}

// Open creates a job reading from a text file. The file will be closed when
// loading is complete.
func Open[T any](name string, parse func(string) (T, error), compare func(a, b T) int,
	opts *Options) (*Job[T], error) {
	//
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	job, err := NewJob(file, parse, compare, opts)
	if err != nil {
		file.Close()
		return nil, err
	}
	job.closer = file
	return job, nil
}

// Subscribe returns a channel of progress messages (of type Progress) with the
// given capacity. The channel is closed when loading is complete. Subscribe
// before calling Start to receive every message.
func (job *Job[T]) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	ch, ok := job.cast.Sub(ctx, capacity)
	return ch, ok
}

// Start begins loading in the background.
func (job *Job[T]) Start() error {
	if !job.started.CompareAndSwap(false, true) {
		return ErrJobStarted
	}
	go job.load()
	return nil
}

// Wait blocks until loading is complete and returns the tree. If loading
// stopped with an error, the tree holds all keys read before the error.
func (job *Job[T]) Wait() (*tree234.Tree[T], error) {
	<-job.done
	return job.tree, job.err
}

// Load reads all keys from a file synchronously.
func Load[T any](name string, parse func(string) (T, error), compare func(a, b T) int) (*tree234.Tree[T], error) {
	job, err := Open(name, parse, compare, nil)
	if err != nil {
		return nil, err
	}
	if err = job.Start(); err != nil {
		return nil, err
	}
	return job.Wait()
}

func (job *Job[T]) load() {
	defer close(job.done)
	defer job.cast.Close()
	if job.closer != nil {
		defer job.closer.Close()
	}
	scanner := bufio.NewScanner(job.src)
	p := Progress{}
	for scanner.Scan() {
		p.Lines++
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			key, err := job.parse(line)
			if err != nil {
				job.err = fmt.Errorf("line %d: %w", p.Lines, err)
				break
			}
			if job.tree.Insert(key) {
				p.Inserted++
			}
		}
		if p.Lines%job.opts.ProgressEvery == 0 {
			job.cast.Pub(p)
		}
	}
	if job.err == nil {
		job.err = scanner.Err()
	}
	if job.err != nil {
		tracer().Errorf("loader: %v", job.err)
	}
	p.Done, p.Err = true, job.err
	job.cast.Pub(p)
	tracer().Infof("loader: %d lines read, %d keys inserted", p.Lines, p.Inserted)
}
