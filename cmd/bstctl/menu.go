package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/e11jah/bst"
	"github.com/e11jah/bst/internal/logger"
)

const menuText = `
--- BST MENU ---
1. Insert a key
2. Remove a key
3. Clear the tree
4. Find the path to a key
5. Show the tree graphically
6. Show (Preorder)
7. Show (Inorder)
8. Show (Postorder)
--- SAVE / LOAD ---
9. Save to a text file
10. Load from a text file
11. Save to a binary file
12. Load from a binary file
0. Exit
----------------
`

// session is one interactive run of the menu. It owns the working tree.
type session struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
	tree   bst.Tree
	codec  bst.Codec
}

func runMenu(in io.Reader, out, errOut io.Writer) error {
	s := &session{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		tree:   bst.New(),
		codec:  codec(),
	}

	for {
		fmt.Fprint(s.out, menuText)
		choice, err := s.readInt("Choose an option: ")
		if err != nil {
			return ignoreEOF(err)
		}

		done, err := s.dispatch(choice)
		if err != nil {
			return ignoreEOF(err)
		}
		if done {
			return nil
		}
	}
}

func (s *session) dispatch(choice int) (bool, error) {
	switch choice {
	case 1:
		key, err := s.readKey("Key to insert: ")
		if err != nil {
			return false, err
		}
		s.tree.Insert(key)
		printInfo(s.out, "Inserted %d\n", key)
	case 2:
		key, err := s.readKey("Key to remove: ")
		if err != nil {
			return false, err
		}
		s.tree.Remove(key)
		printInfo(s.out, "Removed %d\n", key)
	case 3:
		s.tree.Clear()
		printInfo(s.out, "The tree has been cleared.\n")
	case 4:
		key, err := s.readKey("Key to find: ")
		if err != nil {
			return false, err
		}
		path := s.tree.FindPath(key)
		if len(path) == 0 {
			fmt.Fprintf(s.out, "Key %d was not found.\n", key)
		} else {
			fmt.Fprintf(s.out, "Path to %d: %s\n", key, formatPath(path))
		}
	case 5:
		fmt.Fprintln(s.out, "Tree (rotated by 90 degrees):")
		return false, s.tree.DisplayGraphical(s.out)
	case 6:
		fmt.Fprint(s.out, "Preorder: ")
		return false, s.tree.DisplayPreorder(s.out)
	case 7:
		fmt.Fprint(s.out, "Inorder: ")
		return false, s.tree.DisplayInorder(s.out)
	case 8:
		fmt.Fprint(s.out, "Postorder: ")
		return false, s.tree.DisplayPostorder(s.out)
	case 9:
		path, err := s.readLine("Text file to write (e.g. tree.txt): ")
		if err != nil {
			return false, err
		}
		s.saveText(path)
	case 10:
		path, err := s.readLine("Text file to read (e.g. numbers.txt): ")
		if err != nil {
			return false, err
		}
		s.loadText(path)
	case 11:
		path, err := s.readLine("Binary file to write (e.g. tree.bin): ")
		if err != nil {
			return false, err
		}
		s.saveBinary(path)
	case 12:
		path, err := s.readLine("Binary file to read (e.g. tree.bin): ")
		if err != nil {
			return false, err
		}
		s.loadBinary(path)
	case 0:
		printInfo(s.out, "Exiting...\n")
		return true, nil
	default:
		fmt.Fprintln(s.out, "Unknown option. Try again.")
	}
	return false, nil
}

func (s *session) saveText(path string) {
	if err := s.tree.SaveTextFile(path); err != nil {
		logger.Error("save text", "path", path, "err", err)
		printError(s.errOut, "%v\n", err)
		return
	}
	logger.Info("save text", "path", path, "keys", s.tree.Size())
	printInfo(s.out, "Tree saved (text) to file: %s\n", path)
}

func (s *session) loadText(path string) {
	count, err := bst.LoadTextFile(s.tree, path)
	if err != nil {
		logger.Error("load text", "path", path, "err", err)
		printError(s.errOut, "%v\n", err)
		if bst.IsOpenError(err) {
			return
		}
	}
	logger.Info("load text", "path", path, "read", count, "size", s.tree.Size())
	printInfo(s.out, "Read and added %d numbers from file: %s\n", count, path)
}

func (s *session) saveBinary(path string) {
	if err := s.codec.SaveBinaryFile(s.tree, path); err != nil {
		logger.Error("save binary", "path", path, "err", err)
		printError(s.errOut, "%v\n", err)
		return
	}
	logger.Info("save binary", "path", path, "keys", s.tree.Size())
	printInfo(s.out, "Tree saved (binary) to file: %s\n", path)
}

// loadBinary replaces the working tree. A file that cannot be opened
// leaves an empty tree behind.
func (s *session) loadBinary(path string) {
	s.tree.Clear()
	loaded, err := s.codec.LoadBinaryFile(path)
	s.tree = loaded
	if err != nil {
		logger.Error("load binary", "path", path, "err", err)
		printError(s.errOut, "%v\n", err)
		return
	}
	logger.Info("load binary", "path", path, "size", s.tree.Size(), "height", s.tree.Height())
	printInfo(s.out, "Tree loaded (binary) from file: %s\n", path)
}

// readInt prompts until the user enters an integer. Anything after the
// first field on the line is ignored.
func (s *session) readInt(prompt string) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			if v, err := strconv.Atoi(fields[0]); err == nil {
				return v, nil
			}
		}
		fmt.Fprintln(s.out, "Invalid value. Please enter an integer.")
	}
}

func (s *session) readKey(prompt string) (bst.Key, error) {
	for {
		v, err := s.readInt(prompt)
		if err != nil {
			return 0, err
		}
		if int(bst.Key(v)) == v {
			return bst.Key(v), nil
		}
		fmt.Fprintln(s.out, "Invalid value. Please enter a 32-bit integer.")
	}
}

func (s *session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func formatPath(path []bst.Key) string {
	parts := make([]string, len(path))
	for i, k := range path {
		parts[i] = strconv.FormatInt(int64(k), 10)
	}
	return strings.Join(parts, " -> ")
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
