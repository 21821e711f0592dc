package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runTrc(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	encoded, err := runTrc(t, "", "encode", "Hello World")
	require.NoError(t, err)

	decoded, err := runTrc(t, "", "decode", strings.TrimSpace(encoded))
	require.NoError(t, err)
	assert.Equal(t, "Hello World\n", decoded)
}

func TestEncode_NoCarrierPinnedVector(t *testing.T) {
	out, err := runTrc(t, "", "encode", "--bytes", "--no-carrier", "-")
	require.NoError(t, err)
	// Empty stdin: empty stream.
	assert.Equal(t, "\n", out)

	out, err = runTrc(t, "\x00", "encode", "--bytes", "--no-carrier", "-")
	require.NoError(t, err)
	assert.Equal(t, "==----====----==\n", out)
}

func TestDecode_AcceptsLEDDialect(t *testing.T) {
	encoded, err := runTrc(t, "", "encode", "--led", "Hi")
	require.NoError(t, err)

	decoded, err := runTrc(t, "", "decode", strings.TrimSpace(encoded))
	require.NoError(t, err)
	assert.Equal(t, "Hi\n", decoded)
}

func TestOpcode_RoundTripThroughDecode(t *testing.T) {
	out, err := runTrc(t, "", "opcode", "ack", "--no-carrier")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 8)

	_, err = runTrc(t, "", "opcode", "SHRUG")
	assert.Error(t, err)
}

func TestStream_EncodeDecodeRoundTrip(t *testing.T) {
	msg, err := runTrc(t, "", "stream", "encode", "Ready To Help")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(msg, "++++++"), "envelope must start with preamble and framed-width suffix")

	out, err := runTrc(t, msg, "stream", "decode")
	require.NoError(t, err)
	assert.Equal(t, "Ready To Help\n", out)
}

func TestVocab_ListsAllWords(t *testing.T) {
	out, err := runTrc(t, "", "vocab", "--no-carrier")
	require.NoError(t, err)
	assert.Contains(t, out, "HELLO")
	assert.Contains(t, out, "ERROR")
	assert.Equal(t, 15, strings.Count(out, "\n"))
}

func TestDecode_FailsOnCorruptStream(t *testing.T) {
	encoded, err := runTrc(t, "", "encode", "--no-carrier", "A")
	require.NoError(t, err)

	corrupted := "+" + strings.TrimSpace(encoded)[1:]
	_, err = runTrc(t, "", "decode", "--no-carrier", corrupted)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync loss")
}
