// Package converter implements the conversions between Intel HEX files
// and flat binary images.
package converter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/ihexconv/internal/ihex"
	"github.com/retroenv/retrogolib/log"
)

// Converter converts between Intel HEX files and binary images. Each
// conversion call constructs fresh address extension state, no state is
// shared between invocations.
type Converter struct {
	logger *log.Logger
	filler byte
}

// New creates a new converter with the given gap filler byte.
func New(logger *log.Logger, filler byte) *Converter {
	return &Converter{
		logger: logger,
		filler: filler,
	}
}

// HexToBin converts an Intel HEX file to a flat binary image. The output
// file is only created after a successful reconstruction and removed
// again if writing it fails, no truncated artifact is left behind.
func (c *Converter) HexToBin(ctx context.Context, inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening file '%s': %w", inputPath, err)
	}
	defer func() {
		_ = in.Close()
	}()

	data, err := c.reconstruct(ctx, in)
	if err != nil {
		return err
	}

	c.logger.Debug("writing binary image",
		log.String("file", outputPath),
		log.Int("bytes", len(data)),
	)

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating file '%s': %w", outputPath, err)
	}
	if _, err := out.Write(data); err != nil {
		_ = out.Close()
		_ = os.Remove(outputPath)
		return fmt.Errorf("writing file '%s': %w", outputPath, err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(outputPath)
		return fmt.Errorf("closing file '%s': %w", outputPath, err)
	}
	return nil
}

// reconstruct parses the HEX input line by line and feeds the records
// into a fresh reconstructor. Blank lines are skipped, reading stops at
// the first end of file record.
func (c *Converter) reconstruct(ctx context.Context, r io.Reader) ([]byte, error) {
	rec := NewReconstructor(c.filler)

	scanner := bufio.NewScanner(r)
	var lineNum int
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		lineNum++
		line := scanner.Text()
		if line == "" || line == "\r" {
			continue
		}

		record, err := ihex.ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		done, err := rec.Feed(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if done {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	c.logger.Debug("reconstructed image", log.Int("lines", lineNum))

	return rec.Bytes(), nil
}

// BinToHex converts a flat binary image to an Intel HEX file with data
// addressed starting at startAddress. On any failure the partially
// written output file is removed.
func (c *Converter) BinToHex(ctx context.Context, inputPath, outputPath string, startAddress uint32) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading file '%s': %w", inputPath, err)
	}

	c.logger.Debug("emitting hex records",
		log.String("file", outputPath),
		log.Int("bytes", len(data)),
		log.Hex("start", startAddress),
	)

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating file '%s': %w", outputPath, err)
	}
	if err := emit(ctx, out, data, startAddress); err != nil {
		_ = out.Close()
		_ = os.Remove(outputPath)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(outputPath)
		return fmt.Errorf("closing file '%s': %w", outputPath, err)
	}
	return nil
}

// emit writes all records of the conversion through a buffered writer.
func emit(ctx context.Context, w io.Writer, data []byte, startAddress uint32) error {
	buffered := bufio.NewWriter(w)

	emitter := NewEmitter(buffered, startAddress)
	if err := emitter.Emit(ctx, data); err != nil {
		return err
	}
	if err := emitter.Terminate(); err != nil {
		return err
	}

	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
