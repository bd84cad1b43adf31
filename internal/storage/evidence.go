package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// EvidenceStore menerima payload biner (lampiran izin, foto absensi) dan
// mengembalikan reference yang disimpan di record. Mekanisme upload di luar
// engine; engine hanya memvalidasi mime/ukuran sebelum menyerahkan ke sini.
type EvidenceStore interface {
	Save(data []byte, mimeType string) (string, error)
}

var extByMime = map[string]string{
	"application/pdf": ".pdf",
	"image/png":       ".png",
	"image/jpg":       ".jpg",
	"image/jpeg":      ".jpeg",
}

// LocalEvidenceStore menyimpan file ke disk lokal di bawah baseDir,
// dengan nama acak supaya tidak bentrok dan tidak bisa ditebak.
type LocalEvidenceStore struct {
	baseDir string
}

func NewLocalEvidenceStore(baseDir string) (*LocalEvidenceStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	return &LocalEvidenceStore{baseDir: baseDir}, nil
}

func (s *LocalEvidenceStore) Save(data []byte, mimeType string) (string, error) {
	ext, ok := extByMime[mimeType]
	if !ok {
		return "", fmt.Errorf("tipe file %s tidak didukung", mimeType)
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.baseDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}

	// Reference relatif terhadap baseDir; dilayani via route static /uploads.
	return name, nil
}
