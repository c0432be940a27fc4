package converter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/ihexconv/internal/ihex"
	"github.com/retroenv/ihexconv/internal/image"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func testConverter(t *testing.T, filler byte) *Converter {
	t.Helper()
	return New(log.NewTestLogger(t), filler)
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestHexToBin(t *testing.T) {
	input := writeInput(t, "in.hex",
		":0400000001020304F2\n"+
			":04001000AABBCCDDDE\n"+
			":00000001FF\n")
	output := filepath.Join(t.TempDir(), "out.bin")

	conv := testConverter(t, image.DefaultFiller)
	assert.NoError(t, conv.HexToBin(context.Background(), input, output))

	data, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, 20, len(data))
	assert.Equal(t, []byte{1, 2, 3, 4}, data[:4])
	assert.Equal(t, byte(0xFF), data[4])
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xDD}, data[16:])
}

func TestHexToBinCustomFiller(t *testing.T) {
	input := writeInput(t, "in.hex",
		":0100000001FE\n"+
			":0100020003FA\n"+
			":00000001FF\n")
	output := filepath.Join(t.TempDir(), "out.bin")

	conv := testConverter(t, 0x00)
	assert.NoError(t, conv.HexToBin(context.Background(), input, output))

	data, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 3}, data)
}

// lines following the end of file record are not consumed, garbage after
// it does not fail the conversion.
func TestHexToBinStopsAtEndOfFile(t *testing.T) {
	input := writeInput(t, "in.hex",
		":0100000001FE\n"+
			":00000001FF\n"+
			"not a record\n")
	output := filepath.Join(t.TempDir(), "out.bin")

	conv := testConverter(t, image.DefaultFiller)
	assert.NoError(t, conv.HexToBin(context.Background(), input, output))
}

func TestHexToBinSkipsBlankLines(t *testing.T) {
	input := writeInput(t, "in.hex",
		"\n:0100000001FE\n\r\n:00000001FF\n")
	output := filepath.Join(t.TempDir(), "out.bin")

	conv := testConverter(t, image.DefaultFiller)
	assert.NoError(t, conv.HexToBin(context.Background(), input, output))

	data, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, []byte{1}, data)
}

func TestHexToBinParseFailureLeavesNoOutput(t *testing.T) {
	input := writeInput(t, "in.hex",
		":0100000001FE\n"+
			":0B0010006164647265737320676170A6\n")
	output := filepath.Join(t.TempDir(), "out.bin")

	conv := testConverter(t, image.DefaultFiller)
	err := conv.HexToBin(context.Background(), input, output)
	assert.True(t, errors.Is(err, ihex.ErrChecksumMismatch))
	assert.ErrorContains(t, err, "line 2")

	_, err = os.Stat(output)
	assert.True(t, os.IsNotExist(err))
}

func TestHexToBinMissingInput(t *testing.T) {
	conv := testConverter(t, image.DefaultFiller)
	err := conv.HexToBin(context.Background(), filepath.Join(t.TempDir(), "missing.hex"), "out.bin")
	assert.Error(t, err)
}

func TestBinToHexEmptyInput(t *testing.T) {
	input := writeInput(t, "in.bin", "")
	output := filepath.Join(t.TempDir(), "out.hex")

	conv := testConverter(t, image.DefaultFiller)
	assert.NoError(t, conv.BinToHex(context.Background(), input, output, 0))

	data, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, ":00000001FF\n", string(data))
}

func TestBinToHexOutputDirectoryMissing(t *testing.T) {
	input := writeInput(t, "in.bin", "\x01\x02")

	conv := testConverter(t, image.DefaultFiller)
	err := conv.BinToHex(context.Background(), input,
		filepath.Join(t.TempDir(), "missing", "out.hex"), 0)
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	data := make([]byte, 300)
	for i := range data {
		data[i] = byte(i * 7)
	}

	tests := []struct {
		name         string
		startAddress uint32
	}{
		{"zero start address", 0},
		{"boundary crossing start address", 0xFFF8},
		{"high start address", 0x08000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			binPath := filepath.Join(dir, "in.bin")
			hexPath := filepath.Join(dir, "out.hex")
			backPath := filepath.Join(dir, "back.bin")
			assert.NoError(t, os.WriteFile(binPath, data, 0o644))

			conv := testConverter(t, image.DefaultFiller)
			ctx := context.Background()
			assert.NoError(t, conv.BinToHex(ctx, binPath, hexPath, tt.startAddress))
			assert.NoError(t, conv.HexToBin(ctx, hexPath, backPath))

			back, err := os.ReadFile(backPath)
			assert.NoError(t, err)
			assert.Equal(t, data, back)
		})
	}
}
