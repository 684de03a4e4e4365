package content

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/adrg/frontmatter"
	glog "github.com/goliatone/go-logger/glog"
)

// Worker pool sizing constants. Parsing is cheap, so the pool is capped
// low; the collector remains the single writer into the result set.
const (
	minLoaderWorkers = 1
	maxLoaderWorkers = 8
)

// LoaderConfig configures how markdown entries are discovered beneath a
// content root.
type LoaderConfig struct {
	// Roots maps each collection to its directory relative to the
	// filesystem root. Defaults to the collection name.
	Roots map[Collection]string
	// Workers bounds the parsing pool. Zero picks a size from GOMAXPROCS.
	Workers int
	// Logger receives per-file debug output. Optional.
	Logger glog.Logger
}

// Loader scans a directory tree of markdown files with YAML frontmatter and
// produces validated, immutable entries. One invalid entry fails the whole
// load; every violation found is reported, named by file and field.
type Loader struct {
	fs      fs.FS
	roots   map[Collection]string
	workers int
	logger  glog.Logger
}

// NewLoader constructs a Loader over the provided filesystem.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	roots := make(map[Collection]string, len(Collections()))
	for _, col := range Collections() {
		root := cfg.Roots[col]
		if strings.TrimSpace(root) == "" {
			root = string(col)
		}
		roots[col] = path.Clean(root)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers < minLoaderWorkers {
		workers = minLoaderWorkers
	}
	if workers > maxLoaderWorkers {
		workers = maxLoaderWorkers
	}

	logger := cfg.Logger
	if logger == nil {
		logger = glog.NewLogger(glog.WithLoggerTypeConsole())
	}

	return &Loader{
		fs:      filesystem,
		roots:   roots,
		workers: workers,
		logger:  logger,
	}
}

type loadJob struct {
	collection Collection
	root       string
	path       string
}

type loadResult struct {
	entry *Entry
	err   error
}

// Load scans every collection root and returns all entries. Parsing fans
// out across the worker pool; entries are merged by a single collector and
// returned in deterministic (collection, path) order. Uniqueness of slugs
// is enforced later by NewStore at merge time.
func (l *Loader) Load(ctx context.Context) ([]*Entry, error) {
	jobs, err := l.discover()
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, nil
	}

	jobCh := make(chan loadJob)
	resultCh := make(chan loadResult)

	var wg sync.WaitGroup
	for i := 0; i < l.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				entry, err := l.loadFile(ctx, job)
				resultCh <- loadResult{entry: entry, err: err}
			}
		}()
	}

	go func() {
		defer close(jobCh)
		for _, job := range jobs {
			select {
			case jobCh <- job:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	var entries []*Entry
	var errs []error
	for res := range resultCh {
		if res.err != nil {
			errs = append(errs, res.err)
			continue
		}
		if res.entry != nil {
			entries = append(entries, res.entry)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })
		return nil, errors.Join(errs...)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Collection != entries[j].Collection {
			return entries[i].Collection < entries[j].Collection
		}
		return entries[i].FilePath < entries[j].FilePath
	})

	l.logger.Debug("content scan complete", "entries", len(entries))
	return entries, nil
}

// discover walks each collection root and returns the markdown files to
// parse. A missing collection root is not an error; the collection is
// simply empty.
func (l *Loader) discover() ([]loadJob, error) {
	var jobs []loadJob

	for _, col := range Collections() {
		root := l.roots[col]
		if _, err := fs.Stat(l.fs, root); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				l.logger.Debug("collection root missing, skipping", "collection", col, "root", root)
				continue
			}
			return nil, fmt.Errorf("content: stat collection root %s: %w", root, err)
		}

		err := fs.WalkDir(l.fs, root, func(p string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			name := d.Name()
			if d.IsDir() {
				if p != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
					return fs.SkipDir
				}
				return nil
			}
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
				return nil
			}
			if !IsMarkdownPath(p) {
				return nil
			}
			jobs = append(jobs, loadJob{collection: col, root: root, path: p})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("content: walk collection %s: %w", col, err)
		}
	}

	return jobs, nil
}

// loadFile reads, parses, and validates a single markdown document.
func (l *Loader) loadFile(ctx context.Context, job loadJob) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(l.fs, job.path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", job.path, err)
	}

	info, err := fs.Stat(l.fs, job.path)
	if err != nil {
		return nil, fmt.Errorf("content: stat %s: %w", job.path, err)
	}

	var env frontMatterEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(data), &env)
	if err != nil {
		return nil, &SchemaViolationError{
			Collection: job.collection,
			Path:       job.path,
			Reason:     fmt.Sprintf("frontmatter parse: %v", err),
		}
	}

	fm, err := ValidateFrontMatter(job.collection, job.path, env)
	if err != nil {
		return nil, err
	}

	rel := strings.TrimPrefix(strings.TrimPrefix(job.path, job.root), "/")
	entrySlug, err := SlugFromPath(rel)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(data)

	return &Entry{
		Collection:   job.collection,
		Slug:         entrySlug,
		FrontMatter:  fm,
		Body:         body,
		FilePath:     job.path,
		LastModified: info.ModTime(),
		Checksum:     sum[:],
	}, nil
}
