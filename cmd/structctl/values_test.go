package main

import (
	"testing"

	"github.com/sensignal/cstruct-go/cstruct"
)

func TestBuildArgsAndPackRoundTrip(t *testing.T) {
	format := "<I2x4s>2H"
	fields, err := cstruct.Fields(format)
	if err != nil {
		t.Fatalf("Fields: %v", err)
	}
	args, err := buildArgs(fields, []string{"0x12345678", "Hi", "1,2"})
	if err != nil {
		t.Fatalf("buildArgs: %v", err)
	}
	out, err := cstruct.AppendPack(nil, format, args...)
	if err != nil {
		t.Fatalf("AppendPack: %v", err)
	}
	want := []byte{
		0x78, 0x56, 0x34, 0x12, // <I
		0x00, 0x00, // 2x (fresh buffer, so zero)
		'H', 'i', 0x00, 0x00, // 4s
		0x00, 0x01, 0x00, 0x02, // >2H
	}
	if len(out) != len(want) {
		t.Fatalf("packed %d bytes, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("byte %d: got %#02x want %#02x", i, out[i], want[i])
		}
	}
}

func TestBuildArgsValueCountMismatch(t *testing.T) {
	fields, err := cstruct.Fields("IB")
	if err != nil {
		t.Fatalf("Fields: %v", err)
	}
	if _, err := buildArgs(fields, []string{"1"}); err == nil {
		t.Fatal("expected error for missing value")
	}
	if _, err := buildArgs(fields, []string{"1", "2", "3"}); err == nil {
		t.Fatal("expected error for extra value")
	}
}

func TestParse128RoundTrip(t *testing.T) {
	in := "0x000102030405060708090a0b0c0d0e0f"
	b, err := parse128(in)
	if err != nil {
		t.Fatalf("parse128: %v", err)
	}
	// Most significant hex pair lands in the top of the LE block.
	if b[15] != 0x00 || b[0] != 0x0f {
		t.Fatalf("unexpected block layout: %x", b)
	}
	if got := format128(b); got != in {
		t.Fatalf("format128: got %s want %s", got, in)
	}
	if _, err := parse128("abcd"); err == nil {
		t.Fatal("expected error for short hex")
	}
}

func TestMakeDestAndRender(t *testing.T) {
	format := "<B3H8s"
	fields, err := cstruct.Fields(format)
	if err != nil {
		t.Fatalf("Fields: %v", err)
	}
	src, err := cstruct.AppendPack(nil, format,
		uint8(7), []uint16{1, 2, 3}, "abc")
	if err != nil {
		t.Fatalf("AppendPack: %v", err)
	}
	var dests []any
	for _, f := range fields {
		dests = append(dests, makeDest(f))
	}
	if _, err := cstruct.Unpack(src, format, dests...); err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if v := renderDest(fields[0], dests[0]); v != uint8(7) {
		t.Fatalf("field 0: %v", v)
	}
	got := renderDest(fields[1], dests[1]).([]uint16)
	if len(got) != 3 || got[2] != 3 {
		t.Fatalf("field 1: %v", got)
	}
	if v := renderDest(fields[2], dests[2]); v != "abc" {
		t.Fatalf("field 2: %q", v)
	}
}
