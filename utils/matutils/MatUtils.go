// Package matutils implements utility functions for working with
// mat.Matrix structs and their on-disk representations
package matutils

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"
)

// Format formats a matrix for printing
func Format(X mat.Matrix) string {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%v", fa)
}

// SaveFile creates the file filename and writes w to it. Any existing
// file is truncated.
func SaveFile(filename string, w io.WriterTo) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("saveFile: could not create file: %w", err)
	}

	buf := bufio.NewWriter(file)
	if _, err := w.WriteTo(buf); err != nil {
		file.Close()
		return fmt.Errorf("saveFile: could not write %v: %w", filename, err)
	}
	if err := buf.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("saveFile: could not flush %v: %w", filename, err)
	}

	return file.Close()
}

// LoadFile opens the file filename and calls read on its contents
func LoadFile(filename string, read func(io.Reader) error) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("loadFile: could not open file: %w", err)
	}
	defer file.Close()

	return read(bufio.NewReader(file))
}
