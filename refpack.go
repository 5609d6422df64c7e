// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package refpack

import (
	"bytes"
	"io"
)

// Compress reads uncompressedLen bytes from r, encodes them as a RefPack
// stream wrapped in format F's header, and writes the result to w. opts may
// be nil, selecting ModeFast.
func Compress[F Format](uncompressedLen int, r io.Reader, w io.Writer, opts *CompressOptions) error {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	if uncompressedLen < 0 {
		return ErrBadLength
	}

	src := make([]byte, uncompressedLen)
	if _, err := io.ReadFull(r, src); err != nil {
		return ioReadErr(err)
	}

	tokens, tail := parse(src, opts)

	var body bytes.Buffer
	if err := emit(&body, src, tokens, tail); err != nil {
		return err
	}

	if opts.Stats != nil {
		fillStats(opts.Stats, tokens, tail)
	}

	var format F
	headerLen := format.headerLen(uncompressedLen)
	if err := format.writeHeader(w, uncompressedLen, headerLen+body.Len()); err != nil {
		return err
	}
	_, err := w.Write(body.Bytes())
	return wrapIO(err)
}

// CompressBytes is Compress's byte-slice convenience wrapper.
func CompressBytes[F Format](src []byte, opts *CompressOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Compress[F](len(src), bytes.NewReader(src), &buf, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress reads format F's header and opcode stream from r and writes
// the decoded bytes to w.
func Decompress[F Format](r io.Reader, w io.Writer) error {
	return decompress[F](r, w)
}

// DecompressBytes is Decompress's byte-slice convenience wrapper.
func DecompressBytes[F Format](compressed []byte) ([]byte, error) {
	return decompressToSlice[F](bytes.NewReader(compressed))
}

// parse dispatches to the match finder selected by opts.Mode.
func parse(src []byte, opts *CompressOptions) ([]token, []byte) {
	switch opts.Mode {
	case ModeDeep:
		return parseDeep(src, opts.Deep.ChainDepth)
	case ModeOptimal:
		return parseOptimal(src, opts.Deep.ChainDepth)
	default:
		return parseFast(src)
	}
}

func fillStats(s *Stats, tokens []token, tail []byte) {
	s.LiteralBytes = len(tail)
	s.MatchBytes = 0
	s.MatchCount = len(tokens)
	for _, t := range tokens {
		s.LiteralBytes += t.literalLen
		s.MatchBytes += t.length
	}
}
