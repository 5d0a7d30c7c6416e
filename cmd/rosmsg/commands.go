package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/zphilip/handDetect/internal/capture"
	"github.com/zphilip/handDetect/internal/export"
	"github.com/zphilip/handDetect/rosmsg"
)

func cmdList(a *app, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("list takes no arguments")
	}
	for _, name := range a.types.Names() {
		fmt.Fprintln(a.stdout, name)
	}
	return nil
}

func cmdMD5(a *app, args []string) error {
	s, err := a.schema("md5", args)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, s.MD5Sum())
	return nil
}

func cmdShow(a *app, args []string) error {
	s, err := a.schema("show", args)
	if err != nil {
		return err
	}
	def := s.Definition()
	fmt.Fprint(a.stdout, def)
	if !strings.HasSuffix(def, "\n") {
		fmt.Fprintln(a.stdout)
	}
	return nil
}

func cmdSize(a *app, args []string) error {
	s, err := a.schema("size", args)
	if err != nil {
		return err
	}
	if n, ok := s.FixedSize(); ok {
		fmt.Fprintln(a.stdout, n)
		return nil
	}
	fmt.Fprintln(a.stdout, "variable")
	return nil
}

func cmdHeader(a *app, args []string) error {
	fs := flag.NewFlagSet("header", flag.ContinueOnError)
	raw := fs.Bool("raw", false, "write the encoded header block instead of key=value lines")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := a.schema("header", fs.Args())
	if err != nil {
		return err
	}
	h := rosmsg.NewConnectionHeader(s)
	if *raw {
		_, err := a.stdout.Write(h.Encode())
		return err
	}
	keys := make([]string, 0, len(h))
	for k := range h {
		if k != rosmsg.HeaderKeyDefinition {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(a.stdout, "%s=%s\n", k, h[k])
	}
	return nil
}

func cmdDecode(a *app, args []string) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	format := fs.String("format", a.cfg.Export.Format, "output format: "+strings.Join(a.codecs.Names(), ", "))
	withHeader := fs.Bool("header", false, "input starts with a connection header block")
	frames := fs.Bool("frames", false, "input is a stream of length-prefixed frames")
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 2 {
		return fmt.Errorf("usage: decode [-format F] [-header] [-frames] TYPE FILE")
	}
	s, err := a.types.Lookup(positional[0])
	if err != nil {
		return err
	}
	codec, err := a.codecs.Lookup(*format)
	if err != nil {
		return err
	}
	data, err := readInput(positional[1])
	if err != nil {
		return err
	}

	if *frames {
		return a.decodeFrames(s, codec, data, *withHeader)
	}

	var m *rosmsg.Message
	if *withHeader {
		m, err = decodeWithHeader(s, data)
	} else {
		m, err = rosmsg.Decode(s, data)
	}
	if err != nil {
		return err
	}
	a.log.Debug("decoded message",
		zap.String("type", s.Name()),
		zap.Int("bytes", len(data)),
		zap.String("format", codec.ContentType()))
	return a.print(codec, m)
}

// decodeFrames prints every frame of a capture stream, separating text
// renderings with "---" lines.
func (a *app) decodeFrames(s *rosmsg.Schema, codec export.Codec, data []byte, withHeader bool) error {
	r := capture.NewReader(bytes.NewReader(data), s, capture.WithLogger(a.log))
	if withHeader {
		if _, err := r.ReadHeader(); err != nil {
			return err
		}
	}
	var printErr error
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	n, err := capture.Each(ctx, r, capture.NewCallback(func(m *rosmsg.Message) {
		if printErr = a.print(codec, m); printErr != nil {
			cancel()
			return
		}
		if codec.ContentType() == export.Text().ContentType() {
			fmt.Fprintln(a.stdout, "---")
		}
	}, nil))
	if printErr != nil {
		return printErr
	}
	if err != nil {
		return err
	}
	a.log.Debug("decoded capture", zap.String("type", s.Name()), zap.Int("frames", n))
	return nil
}

func (a *app) print(codec export.Codec, m *rosmsg.Message) error {
	out, err := codec.Marshal(m)
	if err != nil {
		return err
	}
	if _, err := a.stdout.Write(out); err != nil {
		return err
	}
	if strings.HasPrefix(codec.ContentType(), "application/json") {
		fmt.Fprintln(a.stdout)
	}
	return nil
}

// decodeWithHeader splits a captured connection header from the payload
// that follows it and decodes the payload only if the header matches.
func decodeWithHeader(s *rosmsg.Schema, data []byte) (*rosmsg.Message, error) {
	if len(data) < 4 {
		return nil, rosmsg.NewCodecError(rosmsg.ErrorCodeBufferTruncated, "connection header length missing")
	}
	n := uint64(binary.LittleEndian.Uint32(data))
	if n > uint64(len(data)-4) {
		return nil, rosmsg.NewCodecError(rosmsg.ErrorCodeLengthOverflow,
			fmt.Sprintf("connection header of %d bytes exceeds %d remaining", n, len(data)-4))
	}
	peer, err := rosmsg.DecodeConnectionHeader(data[:4+n])
	if err != nil {
		return nil, err
	}
	m, _, err := rosmsg.Receive(s, peer, data[4+n:])
	return m, err
}

func (a *app) schema(cmd string, args []string) (*rosmsg.Schema, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("usage: %s TYPE", cmd)
	}
	return a.types.Lookup(args[0])
}

// parseInterspersed lets flags follow positional arguments.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}
