package main

import (
	"errors"
	"io"
	"strconv"
	"unicode/utf8"
)

var ErrBadEscape = errors.New("invalid escape sequence")

// payloads returns one byte string per argument. No arguments, or a single
// "-", reads the whole of stdin as one payload.
func payloads(args []string, stdin io.Reader, escape bool) ([][]byte, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		return [][]byte{b}, nil
	}

	result := make([][]byte, 0, len(args))
	for _, arg := range args {
		if !escape {
			result = append(result, []byte(arg))
			continue
		}
		b, err := unescape(arg)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, nil
}

// unescape decodes Go backslash escapes in s. Bytes outside an escape,
// including invalid UTF-8, are copied unchanged.
func unescape(s string) ([]byte, error) {
	buf := make([]byte, 0, len(s))
	for len(s) > 0 {
		if s[0] != '\\' {
			buf = append(buf, s[0])
			s = s[1:]
			continue
		}

		r, multibyte, tail, err := strconv.UnquoteChar(s, '"')
		if err != nil {
			return nil, errors.Join(ErrBadEscape, err)
		}
		if multibyte {
			buf = utf8.AppendRune(buf, r)
		} else {
			buf = append(buf, byte(r))
		}
		s = tail
	}
	return buf, nil
}
