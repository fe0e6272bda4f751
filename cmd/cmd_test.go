/*
Copyright © 2022 Jeff Berkowitz (pdxjjb@gmail.com)

*/
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmofishsauce/slip8/pkg/asm"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	asmStdout, asmOut, asmMode, asmList = false, "", "", false
	dumpMode = "hex"
	uploadConfig = ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir string, name string, data string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestAsmStdout(t *testing.T) {
	src := writeFile(t, t.TempDir(), "prog.c8asm", "cls\nret\n")
	out, _, err := execute(t, "asm", src, "--stdout")
	require.NoError(t, err)
	assert.Equal(t, "[0, 224, 0, 238]\n", out)
}

func TestAsmBinaryBesideSource(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "prog.c8asm", "ld V3 1f\njp V0 2a0\n")
	_, errOut, err := execute(t, "asm", src)
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "prog.c8x"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x63, 0x1F, 0xB2, 0xA0}, data)
	assert.Contains(t, errOut, "asm: wrote 4 bytes")
}

func TestAsmWarnsOnUnterminatedLine(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "prog.c8asm", "cls\nret")
	_, errOut, err := execute(t, "asm", src)
	require.NoError(t, err)
	assert.Contains(t, errOut, `no newline after "ret"`)
	data, err := os.ReadFile(filepath.Join(dir, "prog.c8x"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xE0}, data)
}

func TestAsmBinaryOut(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "prog.c8asm", "add Va Vb\n")
	_, _, err := execute(t, "asm", src, "--out", filepath.Join(dir, "game"))
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "game.c8x"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x8A, 0xB4}, data)
}

func TestAsmDiscrepancy(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "prog.c8asm", "cls\nld V1 zz\nret\n")
	_, errOut, err := execute(t, "asm", src)
	require.Error(t, err)
	assert.Equal(t, asm.WrongValue, asm.KindOf(err))
	assert.Equal(t, "SLIP-8 the CHIP-8 Compiler: Error: Detected discrepancy at 2 (Wrong value)\nCompilation terminated.\n", errOut)
	_, statErr := os.Stat(filepath.Join(dir, "prog.c8x"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestAsmUnknownInstruction(t *testing.T) {
	src := writeFile(t, t.TempDir(), "prog.c8asm", "halt\n")
	_, errOut, err := execute(t, "asm", src, "--stdout")
	require.Error(t, err)
	assert.Contains(t, errOut, "Error: Unknown instruction at 1\n")
}

func TestAsmMissingFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "none.c8asm")
	_, errOut, err := execute(t, "asm", src)
	require.Error(t, err)
	assert.Contains(t, errOut, "File "+src+" does not exist.")
}

func TestAsmWrongFormat(t *testing.T) {
	src := writeFile(t, t.TempDir(), "prog.txt", "cls\n")
	_, errOut, err := execute(t, "asm", src)
	require.Error(t, err)
	assert.Contains(t, errOut, "is of wrong format, expecting .c8asm file.")
}

func TestAsmEmpty(t *testing.T) {
	src := writeFile(t, t.TempDir(), "prog.c8asm", "")
	_, errOut, err := execute(t, "asm", src)
	require.Error(t, err)
	assert.Contains(t, errOut, "Error: No instructions.")
}

func TestAsmListing(t *testing.T) {
	src := writeFile(t, t.TempDir(), "prog.c8asm", "cls\ndrw V1 V2 5\n")
	out, _, err := execute(t, "asm", src, "--mode", "listing")
	require.NoError(t, err)
	assert.Contains(t, out, "LINE")
	assert.Contains(t, out, "D125")

	out, _, err = execute(t, "asm", src, "--stdout", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "[0, 224, 209, 37]\n")
	assert.Contains(t, out, "drw V1 V2 5")
}

func TestAsmBadMode(t *testing.T) {
	src := writeFile(t, t.TempDir(), "prog.c8asm", "cls\n")
	_, errOut, err := execute(t, "asm", src, "--mode", "printer")
	require.Error(t, err)
	assert.Equal(t, asm.ModeNotExist, asm.KindOf(err))
	assert.Contains(t, errOut, "mode printer is not defined")
}

func TestAsmNeedsOneFile(t *testing.T) {
	_, errOut, err := execute(t, "asm")
	require.Error(t, err)
	assert.Contains(t, errOut, "Error:")
}

func TestDump(t *testing.T) {
	img := writeFile(t, t.TempDir(), "prog.c8x", "\x00\xe0\x12\x00")
	out, _, err := execute(t, "dump", img)
	require.NoError(t, err)
	assert.Equal(t, "ADDR   DATA\n0x0200 00 E0 12 00\n", out)

	out, _, err = execute(t, "dump", img, "--mode", "stdout")
	require.NoError(t, err)
	assert.Equal(t, "[0, 224, 18, 0]\n", out)
}

func TestDumpOddImage(t *testing.T) {
	img := writeFile(t, t.TempDir(), "prog.c8x", "\x00\xe0\x12")
	_, errOut, err := execute(t, "dump", img)
	require.Error(t, err)
	assert.Contains(t, errOut, "odd length 3")
}

func TestUploadMissingConfig(t *testing.T) {
	dir := t.TempDir()
	img := writeFile(t, dir, "prog.c8x", "\x00\xe0")
	_, errOut, err := execute(t, "upload", img, "--config", filepath.Join(dir, "none.yaml"))
	require.Error(t, err)
	assert.Contains(t, errOut, "config:")
}
