package encryption

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/kcrypt/internal/cipherio"
	"github.com/idelchi/kcrypt/internal/config"
	"github.com/idelchi/kcrypt/internal/fileutil"
	"github.com/idelchi/kcrypt/internal/kcrypt"
	"github.com/idelchi/kcrypt/internal/progress"
)

// ErrNoSuffix is returned when an input to decrypt lacks the configured suffix.
var ErrNoSuffix = errors.New("unknown suffix, cannot derive output name")

// Stats summarizes a ProcessFiles run.
type Stats struct {
	Processed int
	Errored   int
	// Bytes written across all outputs
	TotalSize int64
}

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	codec *Codec

	// key is the loaded key. Each stream works on its own copy.
	key kcrypt.BlockKey

	// mode is used when encrypting
	mode Mode

	// progress is nil unless progress output was requested
	progress *progress.Reporter

	stdin  io.Reader
	stdout io.Writer
	// messages receives per-file status lines
	messages io.Writer

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// NewProcessor creates a new Processor with the given configuration and key.
func NewProcessor(cfg *config.Config, codec *Codec, key *kcrypt.BlockKey) (*Processor, error) {
	processor := &Processor{
		cfg:      cfg,
		codec:    codec,
		key:      *key,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		messages: os.Stdout,
		results:  make(chan Result, len(cfg.Files)),
	}

	if !cfg.Decrypt {
		mode, err := ParseMode(cfg.Mode)
		if err != nil {
			return nil, err
		}

		processor.mode = mode
	}

	if cfg.ToStdout() {
		processor.messages = os.Stderr
	}

	if cfg.Progress {
		processor.progress = progress.New(os.Stderr, progress.DefaultInterval)
	}

	return processor, nil
}

// SetStdio replaces the standard streams used for "-" and --stdout.
func (p *Processor) SetStdio(in io.Reader, out, messages io.Writer) {
	p.stdin, p.stdout, p.messages = in, out, messages
}

// Wipe clears the key held by the processor.
func (p *Processor) Wipe() {
	p.key.Wipe()
}

// ProcessFiles concurrently processes all files specified in the configuration.
// It encrypts or decrypts files based on the configuration settings.
//
//nolint:cyclop,gocognit
func (p *Processor) ProcessFiles() (stats Stats, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				stats.Errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", result.Input, result.Error)

				continue
			}

			stats.Processed++

			stats.TotalSize += result.OutputSize

			if !p.cfg.Quiet {
				fmt.Fprintf(p.messages, "Processed %q -> %q (%v)\n", result.Input, result.Output, result.Mode)
			}

			if p.cfg.Delete && result.Input != config.Stdio {
				if err := os.Remove(result.Input); err != nil {
					fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", result.Input, err)

					continue
				}

				if !p.cfg.Quiet {
					fmt.Fprintf(p.messages, "Deleted %q\n", result.Input)
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			result := p.process(file)

			p.results <- result

			return result.Error
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return stats, fmt.Errorf("processing files: %w", err)
	}

	return stats, nil
}

func (p *Processor) process(file string) Result {
	if p.cfg.ToStdout() {
		return p.processStdout(file)
	}

	outPath, err := OutputPath(file, p.cfg.Suffix, p.cfg.Decrypt)
	if err != nil {
		return Result{Input: file, Error: err}
	}

	result, err := p.processFile(file, outPath)
	if err != nil {
		return Result{Input: file, Error: err}
	}

	return result
}

// run encrypts or decrypts between two streams with a private copy of the key.
func (p *Processor) run(name string, in, out cipherio.Stream, total int64) (Mode, error) {
	params := Params{
		Key:    p.key,
		Input:  in,
		Output: out,
		Total:  total,
	}
	defer params.Key.Wipe()

	if p.progress != nil {
		params.Progress = p.progress.Track(name)
	}

	if p.cfg.Decrypt {
		mode, err := p.codec.Decode(&params)
		if err != nil {
			return mode, fmt.Errorf("decrypting: %w", err)
		}

		return mode, nil
	}

	if err := p.codec.Encode(p.mode, &params); err != nil {
		return p.mode, fmt.Errorf("encrypting: %w", err)
	}

	return p.mode, nil
}

// processStdout streams a single input, a file or standard input, to standard output.
func (p *Processor) processStdout(file string) Result {
	result := Result{Input: file, Output: config.Stdio}

	in := p.stdin

	if file != config.Stdio {
		f, err := os.Open(filepath.Clean(file))
		if err != nil {
			result.Error = fmt.Errorf("opening input file: %w", err)

			return result
		}
		defer f.Close()

		if info, err := f.Stat(); err == nil && info.Mode().IsRegular() {
			result.InputSize = info.Size()
		}

		in = f
	}

	br := acquireReader(in)
	defer releaseReader(br)

	bw := acquireWriter(p.stdout)
	defer releaseWriter(bw)

	input, output := cipherio.NewIO(br, nil), cipherio.NewIO(nil, bw)

	result.Mode, result.Error = p.run(file, input, output, result.InputSize)
	result.InputSize = input.Tell()
	result.OutputSize = output.Tell()

	// What was decoded before an error is still delivered.
	if err := bw.Flush(); err != nil && result.Error == nil {
		result.Error = fmt.Errorf("writing output: %w", err)
	}

	return result
}

// processFile handles the encryption or decryption of a single file.
// It writes into a temporary file and renames it into place on completion.
func (p *Processor) processFile(filename, outPath string) (result Result, err error) {
	tc, err := fileutil.NewTempContext(filename, outPath, p.cfg.Force)
	if err != nil {
		return result, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	inFile, err := os.Open(filepath.Clean(filename))
	if err != nil {
		return result, fmt.Errorf("opening input file: %w", err)
	}
	defer inFile.Close()

	br := acquireReader(inFile)
	defer releaseReader(br)

	bw := acquireWriter(tc.TmpFile)
	defer releaseWriter(bw)

	mode, err := p.run(filename, cipherio.NewIO(br, nil), cipherio.NewIO(nil, bw), tc.SrcInfo.Size())
	if err != nil {
		return result, err
	}

	if err := bw.Flush(); err != nil {
		return result, fmt.Errorf("writing output: %w", err)
	}

	if err := inFile.Close(); err != nil {
		return result, fmt.Errorf("closing input file: %w", err)
	}

	size, err := tc.Commit(p.cfg.PreserveTimestamps)
	if err != nil {
		return result, fmt.Errorf("finalizing output: %w", err)
	}

	return Result{
		Input:      filename,
		Output:     outPath,
		Mode:       mode,
		InputSize:  tc.SrcInfo.Size(),
		OutputSize: size,
	}, nil
}

// OutputPath derives the output file path from the input filename and suffix.
// Encryption appends the suffix; decryption requires and strips it.
func OutputPath(filename, suffix string, decrypt bool) (string, error) {
	if !decrypt {
		return filename + suffix, nil
	}

	trimmed, ok := strings.CutSuffix(filename, suffix)
	if !ok || filepath.Base(filename) == suffix {
		return "", fmt.Errorf("%w: %q does not end in %q", ErrNoSuffix, filename, suffix)
	}

	return trimmed, nil
}
