package uploader

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/solmint/mintgen/internal/supabase"
	"github.com/solmint/mintgen/pkg/generator"
)

// BackupWriter appends matched records to a run-scoped local text file,
// one `pub_key,private_key,suffix_type` line per record. It lives entirely
// on the coordinator side; search workers never touch it.
type BackupWriter struct {
	file  *os.File
	path  string
	count int
}

// NewBackupWriter opens a timestamp-scoped backup file in dir for the run.
func NewBackupWriter(dir string, typ generator.SuffixType) (*BackupWriter, error) {
	name := fmt.Sprintf("%s_addresses_%s.txt", typ, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open backup file %v: %w", path, err)
	}
	return &BackupWriter{file: file, path: path}, nil
}

// Append writes one record as a delimited line.
func (w *BackupWriter) Append(rec supabase.Record) error {
	_, err := fmt.Fprintf(w.file, "%s,%s,%s\n", rec.PubKey, rec.PrivateKey, rec.SuffixType)
	if err != nil {
		return err
	}
	w.count++
	return nil
}

// Path returns the backup file location.
func (w *BackupWriter) Path() string {
	return w.path
}

// Count returns how many records were written.
func (w *BackupWriter) Count() int {
	return w.count
}

// Close closes the underlying file.
func (w *BackupWriter) Close() error {
	return w.file.Close()
}
