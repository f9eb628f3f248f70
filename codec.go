package bst

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

const (
	nodeAbsent  byte = 0
	nodePresent byte = 1

	keySize = 4
)

// Codec writes and reads the binary pre-order form of a tree. Every node
// slot starts with a presence byte; a present slot is followed by the key
// and then by the left and right subtrees. The format carries no header,
// so reader and writer must agree on ByteOrder.
type Codec struct {
	ByteOrder binary.ByteOrder
}

var (
	// DefaultCodec uses the byte order of the running platform.
	DefaultCodec = Codec{ByteOrder: binary.NativeEndian}
	// PortableCodec always uses little endian. Files written with it are
	// only compatible with DefaultCodec on little endian machines.
	PortableCodec = Codec{ByteOrder: binary.LittleEndian}
)

func SaveBinary(t Tree, w io.Writer) error {
	return DefaultCodec.SaveBinary(t, w)
}

func LoadBinary(r io.Reader) (Tree, error) {
	return DefaultCodec.LoadBinary(r)
}

func SaveBinaryFile(t Tree, path string) error {
	return DefaultCodec.SaveBinaryFile(t, path)
}

func LoadBinaryFile(path string) (Tree, error) {
	return DefaultCodec.LoadBinaryFile(path)
}

func (c Codec) order() binary.ByteOrder {
	if c.ByteOrder == nil {
		return binary.NativeEndian
	}
	return c.ByteOrder
}

func (c Codec) SaveBinary(t Tree, w io.Writer) error {
	bw := bufio.NewWriter(w)
	c.encode(bw, t.rootNode())
	return bw.Flush()
}

func (c Codec) encode(w *bufio.Writer, n *node) {
	if n == nil {
		w.WriteByte(nodeAbsent)
		return
	}
	var buf [keySize]byte
	c.order().PutUint32(buf[:], uint32(n.key))

	w.WriteByte(nodePresent)
	w.Write(buf[:])
	c.encode(w, n.left)
	c.encode(w, n.right)
}

// LoadBinary builds a new tree from r. The shape is taken from the stream
// as is, without comparing keys. Input ending early yields empty slots from
// that point on instead of an error.
func (c Codec) LoadBinary(r io.Reader) (Tree, error) {
	d := &decoder{order: c.order()}
	if br, ok := r.(io.ByteReader); ok {
		d.r = struct {
			io.Reader
			io.ByteReader
		}{r, br}
	} else {
		d.r = bufio.NewReader(r)
	}

	root, err := d.decode()
	if err != nil {
		return New(), err
	}
	t := New()
	t.setRoot(root, d.size)
	return t, nil
}

type decoder struct {
	r interface {
		io.Reader
		io.ByteReader
	}
	order     binary.ByteOrder
	size      int
	truncated bool
}

func (d *decoder) decode() (*node, error) {
	if d.truncated {
		return nil, nil
	}

	flag, err := d.r.ReadByte()
	if err == io.EOF {
		d.truncated = true
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if flag == nodeAbsent {
		return nil, nil
	}

	var buf [keySize]byte
	if _, err := io.ReadFull(d.r, buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			d.truncated = true
			return nil, nil
		}
		return nil, err
	}

	n := newNode(Key(int32(d.order.Uint32(buf[:]))))
	d.size++
	if n.left, err = d.decode(); err != nil {
		return nil, err
	}
	if n.right, err = d.decode(); err != nil {
		return nil, err
	}
	return n, nil
}

func (c Codec) SaveBinaryFile(t Tree, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return openError(path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return c.SaveBinary(t, f)
}

// LoadBinaryFile returns an empty tree together with the error when path
// cannot be opened.
func (c Codec) LoadBinaryFile(path string) (Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return New(), openError(path, err)
	}
	defer f.Close()
	return c.LoadBinary(f)
}

// LoadFromText inserts every integer read from r into t and reports how
// many were read. Integers are separated by ASCII whitespace. Reading stops
// quietly where no 32-bit integer can be read, so "12abc" yields 12 and
// then ends at "abc".
func LoadFromText(t Tree, r io.Reader) (int, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	count := 0
	for {
		key, ok, err := readTextKey(br)
		if err != nil {
			return count, err
		}
		if !ok {
			return count, nil
		}
		t.Insert(key)
		count++
	}
}

// readTextKey skips whitespace and reads an optionally signed decimal
// integer, leaving the byte after its last digit unread. ok is false at the
// end of input, when no digit follows, or when the value overflows a Key.
func readTextKey(r *bufio.Reader) (key Key, ok bool, err error) {
	c, err := r.ReadByte()
	for err == nil && isTextSpace(c) {
		c, err = r.ReadByte()
	}
	if err != nil {
		return 0, false, ignoreEOF(err)
	}

	neg := false
	if c == '+' || c == '-' {
		neg = c == '-'
		if c, err = r.ReadByte(); err != nil {
			return 0, false, ignoreEOF(err)
		}
	}

	const limit = 1 << 31
	var v int64
	digits := 0
	for ; err == nil && c >= '0' && c <= '9'; c, err = r.ReadByte() {
		digits++
		if v <= limit {
			v = v*10 + int64(c-'0')
		}
	}
	if err == nil {
		r.UnreadByte()
	} else if err != io.EOF {
		return 0, false, err
	}

	if digits == 0 {
		return 0, false, nil
	}
	if neg {
		v = -v
	}
	if v < -limit || v >= limit {
		return 0, false, nil
	}
	return Key(v), true, nil
}

func isTextSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func ignoreEOF(err error) error {
	if err == io.EOF {
		return nil
	}
	return err
}

func LoadTextFile(t Tree, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, openError(path, err)
	}
	defer f.Close()
	return LoadFromText(t, f)
}

// SaveToText writes the keys in ascending order, one per line.
func (t *tree) SaveToText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	t.Walk(Inorder, func(key Key) bool {
		bw.WriteString(strconv.FormatInt(int64(key), 10))
		bw.WriteByte('\n')
		return true
	})
	return bw.Flush()
}

func (t *tree) SaveTextFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return openError(path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return t.SaveToText(f)
}

func openError(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrOpen, path, err)
}

// IsOpenError reports whether err came from a file that could not be opened.
func IsOpenError(err error) bool {
	return errors.Is(err, ErrOpen)
}
